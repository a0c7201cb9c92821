package domain

import (
	"time"
)

type Membership struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_tenant" json:"user_id"`
	TenantID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_tenant" json:"tenant_id"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Membership) TableName() string {
	return "memberships"
}
