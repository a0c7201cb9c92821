package domain

import (
	"encoding/json"
	"time"
)

type SystemSetting struct {
	SettingKey   string          `gorm:"primaryKey;type:text" json:"setting_key"`
	SettingValue json.RawMessage `gorm:"type:jsonb;not null" json:"setting_value"`
	UpdatedAt    time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
