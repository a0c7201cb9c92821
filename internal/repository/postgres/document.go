package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/domain"
)

type DocumentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewDocumentRepository(writerDB, readerDB *gorm.DB) *DocumentRepository {
	return &DocumentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *DocumentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Document, error) {
	var documents []domain.Document
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// Delete removes a document scoped to the tenant so a caller authorized for
// one tenant cannot delete another tenant's document by id.
func (r *DocumentRepository) Delete(ctx context.Context, tenantID, id string) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Delete(&domain.Document{}, "id = ? AND tenant_id = ?", id, tenantID)
	return result.RowsAffected, result.Error
}
