package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/domain"
)

type SettingsRepository struct {
	readerDB *gorm.DB
}

func NewSettingsRepository(readerDB *gorm.DB) *SettingsRepository {
	return &SettingsRepository{readerDB: readerDB}
}

func (r *SettingsRepository) GetByKey(ctx context.Context, key string) (*domain.SystemSetting, error) {
	var setting domain.SystemSetting
	err := r.readerDB.WithContext(ctx).
		First(&setting, "setting_key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
