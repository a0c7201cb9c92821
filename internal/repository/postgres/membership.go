package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/domain"
)

type MembershipRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewMembershipRepository(writerDB, readerDB *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *MembershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	return r.writerDB.WithContext(ctx).Create(membership).Error
}

func (r *MembershipRepository) GetActive(ctx context.Context, userID, tenantID string) (*domain.Membership, error) {
	var membership domain.Membership
	err := r.readerDB.WithContext(ctx).
		Where("user_id = ? AND tenant_id = ? AND is_active = ?", userID, tenantID, true).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
