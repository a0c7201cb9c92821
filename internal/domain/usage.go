package domain

import "time"

// UsageSummary aggregates a tenant's AI call metrics over a period. Values
// come from the get_tenant_ai_usage_summary database function; a tenant with
// no recorded activity yields the zero value.
type UsageSummary struct {
	TotalCalls   int64 `json:"total_calls"`
	SuccessCalls int64 `json:"success_calls"`
	ErrorCalls   int64 `json:"error_calls"`
	TokensInput  int64 `json:"tokens_input"`
	TokensOutput int64 `json:"tokens_output"`
}

// UsagePeriod is a half-open [Start, End) reporting window.
type UsagePeriod struct {
	Start time.Time
	End   time.Time
}
