package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/domain"
)

// ErrUsagePermissionDenied is returned when the database rejects the
// aggregation call with SQLSTATE 42501 (insufficient_privilege); row-level
// security denies the caller access to the tenant's usage rows.
var ErrUsagePermissionDenied = errors.New("permission denied for usage summary")

type UsageRepository struct {
	readerDB *gorm.DB
}

func NewUsageRepository(readerDB *gorm.DB) *UsageRepository {
	return &UsageRepository{readerDB: readerDB}
}

type usageSummaryRow struct {
	TotalCalls   *int64 `gorm:"column:total_calls"`
	SuccessCalls *int64 `gorm:"column:success_calls"`
	ErrorCalls   *int64 `gorm:"column:error_calls"`
	TokensInput  *int64 `gorm:"column:tokens_input"`
	TokensOutput *int64 `gorm:"column:tokens_output"`
}

// Summarize delegates aggregation to the precomputed database function. A
// tenant with no activity returns NULL columns, which coerce to zero.
func (r *UsageRepository) Summarize(ctx context.Context, tenantID string, period domain.UsagePeriod) (*domain.UsageSummary, error) {
	var row usageSummaryRow
	err := r.readerDB.WithContext(ctx).
		Raw("SELECT * FROM get_tenant_ai_usage_summary(?, ?, ?)", tenantID, period.Start, period.End).
		Scan(&row).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "42501" {
			return nil, ErrUsagePermissionDenied
		}
		return nil, err
	}

	return &domain.UsageSummary{
		TotalCalls:   zeroIfNil(row.TotalCalls),
		SuccessCalls: zeroIfNil(row.SuccessCalls),
		ErrorCalls:   zeroIfNil(row.ErrorCalls),
		TokensInput:  zeroIfNil(row.TokensInput),
		TokensOutput: zeroIfNil(row.TokensOutput),
	}, nil
}

func zeroIfNil(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
