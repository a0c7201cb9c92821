package domain

import (
	"time"
)

type Tenant struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Slug      string    `gorm:"type:text;not null;unique" json:"slug"`
	Locale    string    `gorm:"type:text;not null;default:'en'" json:"locale"`
	Currency  string    `gorm:"type:text" json:"currency,omitempty"`
	OwnerID   string    `gorm:"type:uuid" json:"owner_id,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// TenantUpdate carries a partial update of mutable tenant fields. A nil
// pointer leaves the field untouched. Slug is immutable after creation and
// has no slot here.
type TenantUpdate struct {
	Name     *string
	Locale   *string
	Currency *string
}

// Fields returns the column map for a partial UPDATE.
func (u TenantUpdate) Fields() map[string]any {
	fields := map[string]any{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Locale != nil {
		fields["locale"] = *u.Locale
	}
	if u.Currency != nil {
		fields["currency"] = *u.Currency
	}
	return fields
}
