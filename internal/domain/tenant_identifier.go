package domain

import (
	"time"
)

// IdentifierType enumerates the kinds of alternate identifiers a tenant can
// carry. Only name aliases are managed through the admin API today.
type IdentifierType string

const (
	IdentifierTypeNameAlias IdentifierType = "NAME_ALIAS"
)

type TenantIdentifier struct {
	ID              string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID        string         `gorm:"type:uuid;not null;index" json:"tenant_id"`
	IdentifierType  IdentifierType `gorm:"type:text;not null" json:"identifier_type"`
	IdentifierValue string         `gorm:"type:text;not null" json:"identifier_value"`
	CreatedAt       time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant          *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
}

func (TenantIdentifier) TableName() string {
	return "tenant_identifiers"
}
