package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/domain"
	"github.com/tenantops/tenant-admin-api/internal/repository"
	"github.com/tenantops/tenant-admin-api/internal/utils"
)

// AuthzService decides whether the calling identity may act on a tenant.
// The check is read-only: a super admin passes outright, anyone else needs
// an active membership row for the tenant.
type AuthzService struct {
	repo repository.Repository
}

func NewAuthzService(repo repository.Repository) *AuthzService {
	return &AuthzService{repo: repo}
}

func (s *AuthzService) Authorize(ctx context.Context, tenantID string) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthenticated
	}

	if domain.HasRole(utils.GetRolesFromContext(ctx), domain.RoleSuperAdmin) {
		return nil
	}

	_, err = s.repo.Membership().GetActive(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		// A failed membership lookup denies access rather than failing open.
		return ErrForbidden
	}

	return nil
}
