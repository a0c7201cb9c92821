package dto

import (
	"github.com/tenantops/tenant-admin-api/internal/domain"
)

type CreateTenantRequest struct {
	Name     string `json:"name" binding:"required" example:"Acme Inc"`
	Slug     string `json:"slug" binding:"required" example:"acme"`
	Locale   string `json:"locale" example:"en"`
	Currency string `json:"currency" example:"EUR"`
}

// UpdateTenantRequest is a partial update. Pointer fields distinguish an
// omitted key from an explicit value; for Aliases that distinction is
// load-bearing: a missing key leaves aliases untouched, an empty array
// clears them all.
type UpdateTenantRequest struct {
	TenantID string    `json:"tenant_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name     *string   `json:"name,omitempty" example:"Acme Inc"`
	Locale   *string   `json:"locale,omitempty" example:"de"`
	Currency *string   `json:"currency,omitempty" example:"EUR"`
	Aliases  *[]string `json:"aliases,omitempty"`
}

func (r *UpdateTenantRequest) TenantUpdate() domain.TenantUpdate {
	return domain.TenantUpdate{
		Name:     r.Name,
		Locale:   r.Locale,
		Currency: r.Currency,
	}
}

type BackupTenantRequest struct {
	TenantID string `json:"tenantId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type RestoreTenantRequest struct {
	TenantID string                 `json:"tenantId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Data     *domain.BackupDocument `json:"data" binding:"required"`
}
