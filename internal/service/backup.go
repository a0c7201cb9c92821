package service

import (
	"context"
	"fmt"

	"github.com/tenantops/tenant-admin-api/internal/domain"
	"github.com/tenantops/tenant-admin-api/internal/repository"
	"github.com/tenantops/tenant-admin-api/pkg/logger"
)

//go:generate mockery --name ArchiveQueue --output ../mocks
type ArchiveQueue interface {
	SendArchiveBackupMessage(ctx context.Context, tenantID string) error
}

// BackupService snapshots a tenant's rows across the fixed table set and
// writes snapshots back. The snapshot itself offers no point-in-time
// isolation across tables; restore, however, is transactional.
type BackupService struct {
	repo   repository.Repository
	authz  *AuthzService
	queue  ArchiveQueue
	logger *logger.Logger
}

func NewBackupService(repo repository.Repository, authz *AuthzService, logger *logger.Logger) *BackupService {
	return &BackupService{
		repo:   repo,
		authz:  authz,
		logger: logger,
	}
}

// SetArchiveQueue enables asynchronous S3 archival of backups. A nil queue
// leaves archival off.
func (s *BackupService) SetArchiveQueue(queue ArchiveQueue) {
	s.queue = queue
}

func (s *BackupService) Backup(ctx context.Context, tenantID string) (*domain.BackupDocument, error) {
	if tenantID == "" {
		return nil, NewValidationError("tenantId is required")
	}
	if err := s.authz.Authorize(ctx, tenantID); err != nil {
		return nil, err
	}

	doc := domain.NewBackupDocument()
	for _, table := range domain.BackupTables {
		rows, err := s.repo.Backup().FetchTableRows(ctx, table, tenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
		}
		if rows == nil {
			rows = []domain.Row{}
		}
		doc.Tables[table] = rows
	}

	tenantRow, err := s.repo.Backup().FetchTenantRow(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenant: %w", err)
	}
	doc.Tenant = tenantRow

	// Archival is best effort; the caller already holds the snapshot.
	if s.queue != nil {
		if err := s.queue.SendArchiveBackupMessage(ctx, tenantID); err != nil {
			s.logger.Warnf("failed to enqueue backup archive for tenant %s: %v", tenantID, err)
		}
	}

	return doc, nil
}

func (s *BackupService) Restore(ctx context.Context, tenantID string, doc *domain.BackupDocument) error {
	if tenantID == "" {
		return NewValidationError("tenantId is required")
	}
	if doc == nil {
		return NewValidationError("data is required")
	}
	if err := s.authz.Authorize(ctx, tenantID); err != nil {
		return err
	}

	if doc.Version > domain.BackupVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedBackupVersion, doc.Version)
	}

	if err := s.repo.Backup().RestoreDocument(ctx, doc); err != nil {
		return err
	}

	s.logger.Infof("restored %d rows for tenant %s", doc.RowCount(), tenantID)
	return nil
}
