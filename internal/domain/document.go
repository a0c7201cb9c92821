package domain

import (
	"time"
)

type Document struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	MimeType  string    `gorm:"type:text" json:"mime_type,omitempty"`
	SizeBytes int64     `gorm:"not null;default:0" json:"size_bytes"`
	Status    string    `gorm:"type:text;not null;default:'UPLOADED'" json:"status"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}
