package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/domain"
)

type IdentifierRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewIdentifierRepository(writerDB, readerDB *gorm.DB) *IdentifierRepository {
	return &IdentifierRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *IdentifierRepository) ListByTenant(ctx context.Context, tenantID string, identifierType domain.IdentifierType) ([]domain.TenantIdentifier, error) {
	var identifiers []domain.TenantIdentifier
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND identifier_type = ?", tenantID, identifierType).
		Find(&identifiers).Error
	if err != nil {
		return nil, err
	}
	return identifiers, nil
}

func (r *IdentifierRepository) Insert(ctx context.Context, identifiers []domain.TenantIdentifier) ([]domain.TenantIdentifier, error) {
	if len(identifiers) == 0 {
		return nil, nil
	}
	for i := range identifiers {
		if identifiers[i].ID == "" {
			identifiers[i].ID = uuid.New().String()
		}
	}
	if err := r.writerDB.WithContext(ctx).Create(&identifiers).Error; err != nil {
		return nil, err
	}
	return identifiers, nil
}

func (r *IdentifierRepository) DeleteByIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	err := r.writerDB.WithContext(ctx).
		Delete(&domain.TenantIdentifier{}, "id IN ?", ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
