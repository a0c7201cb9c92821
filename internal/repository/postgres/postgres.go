package postgres

import (
	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/config"
	"github.com/tenantops/tenant-admin-api/internal/repository"
)

type postgresRepository struct {
	writerDB       *gorm.DB
	readerDB       *gorm.DB
	tenantRepo     repository.TenantRepository
	identifierRepo repository.IdentifierRepository
	membershipRepo repository.MembershipRepository
	documentRepo   repository.DocumentRepository
	backupRepo     repository.BackupRepository
	settingsRepo   repository.SettingsRepository
	usageRepo      repository.UsageRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		writerDB:       dbConnections.Writer,
		readerDB:       dbConnections.Reader,
		tenantRepo:     NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		identifierRepo: NewIdentifierRepository(dbConnections.Writer, dbConnections.Reader),
		membershipRepo: NewMembershipRepository(dbConnections.Writer, dbConnections.Reader),
		documentRepo:   NewDocumentRepository(dbConnections.Writer, dbConnections.Reader),
		backupRepo:     NewBackupRepository(dbConnections.Writer, dbConnections.Reader),
		settingsRepo:   NewSettingsRepository(dbConnections.Reader),
		usageRepo:      NewUsageRepository(dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Identifier() repository.IdentifierRepository {
	return r.identifierRepo
}

func (r *postgresRepository) Membership() repository.MembershipRepository {
	return r.membershipRepo
}

func (r *postgresRepository) Document() repository.DocumentRepository {
	return r.documentRepo
}

func (r *postgresRepository) Backup() repository.BackupRepository {
	return r.backupRepo
}

func (r *postgresRepository) Settings() repository.SettingsRepository {
	return r.settingsRepo
}

func (r *postgresRepository) Usage() repository.UsageRepository {
	return r.usageRepo
}
