package service

import (
	"context"
	"errors"
	"time"

	"github.com/tenantops/tenant-admin-api/internal/api/dto"
	"github.com/tenantops/tenant-admin-api/internal/domain"
	"github.com/tenantops/tenant-admin-api/internal/repository"
	"github.com/tenantops/tenant-admin-api/internal/repository/postgres"
	"github.com/tenantops/tenant-admin-api/internal/utils"
	pkgutils "github.com/tenantops/tenant-admin-api/pkg/utils"
)

// UsageService reports a tenant's AI call usage over a period. Aggregation
// is delegated to a precomputed database function; this layer only resolves
// period defaults and maps errors.
type UsageService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewUsageService(repo repository.Repository) *UsageService {
	return &UsageService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *UsageService) GetUsage(ctx context.Context, tenantID, startStr, endStr string) (dto.GetUsageResponse, error) {
	if _, err := utils.GetUserIDFromContext(ctx); err != nil {
		return dto.GetUsageResponse{}, ErrUnauthenticated
	}
	if tenantID == "" {
		return dto.GetUsageResponse{}, NewValidationError("tenant_id is required")
	}

	// Default to the current calendar month when no period is given.
	var period domain.UsagePeriod
	period.Start, period.End = pkgutils.MonthBounds(s.now().UTC())
	if startStr != "" {
		parsed, err := pkgutils.ParseUserTime(startStr, false)
		if err != nil {
			return dto.GetUsageResponse{}, NewValidationError("invalid start: %v", err)
		}
		period.Start = parsed
	}
	if endStr != "" {
		parsed, err := pkgutils.ParseUserTime(endStr, true)
		if err != nil {
			return dto.GetUsageResponse{}, NewValidationError("invalid end: %v", err)
		}
		period.End = parsed
	}

	summary, err := s.repo.Usage().Summarize(ctx, tenantID, period)
	if err != nil {
		if errors.Is(err, postgres.ErrUsagePermissionDenied) {
			return dto.GetUsageResponse{}, ErrForbidden
		}
		return dto.GetUsageResponse{}, err
	}

	return dto.GetUsageResponse{
		TenantID: tenantID,
		Start:    period.Start,
		End:      period.End,
		Usage:    *summary,
	}, nil
}
