package repository

import (
	"context"

	"github.com/tenantops/tenant-admin-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name IdentifierRepository --output ../mocks
type IdentifierRepository interface {
	ListByTenant(ctx context.Context, tenantID string, identifierType domain.IdentifierType) ([]domain.TenantIdentifier, error)
	Insert(ctx context.Context, identifiers []domain.TenantIdentifier) ([]domain.TenantIdentifier, error)
	DeleteByIDs(ctx context.Context, ids []string) ([]string, error)
}

//go:generate mockery --name MembershipRepository --output ../mocks
type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) error
	GetActive(ctx context.Context, userID, tenantID string) (*domain.Membership, error)
}

//go:generate mockery --name DocumentRepository --output ../mocks
type DocumentRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Document, error)
	Delete(ctx context.Context, tenantID, id string) (int64, error)
}

//go:generate mockery --name BackupRepository --output ../mocks
type BackupRepository interface {
	FetchTableRows(ctx context.Context, table, tenantID string) ([]domain.Row, error)
	FetchTenantRow(ctx context.Context, tenantID string) (domain.Row, error)
	RestoreDocument(ctx context.Context, doc *domain.BackupDocument) error
}

//go:generate mockery --name SettingsRepository --output ../mocks
type SettingsRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.SystemSetting, error)
}

//go:generate mockery --name UsageRepository --output ../mocks
type UsageRepository interface {
	Summarize(ctx context.Context, tenantID string, period domain.UsagePeriod) (*domain.UsageSummary, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	Identifier() IdentifierRepository
	Membership() MembershipRepository
	Document() DocumentRepository
	Backup() BackupRepository
	Settings() SettingsRepository
	Usage() UsageRepository
}
