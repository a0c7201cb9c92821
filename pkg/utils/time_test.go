package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserTime_RFC3339(t *testing.T) {
	got, err := ParseUserTime("2025-07-17T21:20:48Z", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 17, 21, 20, 48, 0, time.UTC), got)
}

func TestParseUserTime_DateOnly(t *testing.T) {
	got, err := ParseUserTime("2025-07-17", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 17, 0, 0, 0, 0, time.UTC), got)
}

func TestParseUserTime_DateOnlyEndOfDay(t *testing.T) {
	got, err := ParseUserTime("2025-07-17", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 17, 23, 59, 59, 0, time.UTC), got)
}

func TestParseUserTime_Invalid(t *testing.T) {
	_, err := ParseUserTime("17/07/2025", false)
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2025, 7, 17, 21, 20, 48, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthBounds_December(t *testing.T) {
	start, end := MonthBounds(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}
