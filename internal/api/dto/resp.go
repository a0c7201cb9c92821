package dto

import (
	"time"

	"github.com/tenantops/tenant-admin-api/internal/domain"
)

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Acme Inc"`
	Slug      string    `json:"slug" example:"acme"`
	Locale    string    `json:"locale" example:"en"`
	Currency  string    `json:"currency,omitempty" example:"EUR"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// CreateTenantResponse carries the created tenant plus any non-fatal
// side-effect warnings (for example a failed owner membership insert).
type CreateTenantResponse struct {
	Tenant   TenantResponse `json:"tenant"`
	Warnings []string       `json:"warnings,omitempty"`
}

type ListTenantsResponse struct {
	Tenants []TenantResponse `json:"tenants"`
}

type GetTenantResponse struct {
	Tenant  *TenantResponse `json:"tenant"`
	Aliases []string        `json:"aliases"`
}

// UpdateTenantResponse reports the field update outcome together with the
// alias reconciliation result. Warnings carry reconciliation failures that
// did not fail the update itself.
type UpdateTenantResponse struct {
	OK              bool            `json:"ok"`
	Tenant          *TenantResponse `json:"tenant,omitempty"`
	Aliases         []string        `json:"aliases"`
	InsertedAliases []string        `json:"insertedAliases"`
	DeletedAliasIDs []string        `json:"deletedAliasIds"`
	Warnings        []string        `json:"warnings,omitempty"`
}

type BackupTenantResponse struct {
	Data *domain.BackupDocument `json:"data"`
}

type RestoreTenantResponse struct {
	Success bool `json:"success"`
}

// GetUsageResponse echoes the resolved period boundaries so clients can see
// the defaults that were applied.
type GetUsageResponse struct {
	TenantID string              `json:"tenant_id"`
	Start    time.Time           `json:"start"`
	End      time.Time           `json:"end"`
	Usage    domain.UsageSummary `json:"usage"`
}

// DocumentResponse represents a single tenant document
type DocumentResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID  string    `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"invoice-2025-07.pdf"`
	MimeType  string    `json:"mime_type,omitempty" example:"application/pdf"`
	SizeBytes int64     `json:"size_bytes" example:"48213"`
	Status    string    `json:"status" example:"UPLOADED"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

type DeleteDocumentResponse struct {
	Success bool `json:"success"`
}
