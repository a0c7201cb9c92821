package dto

import (
	"github.com/tenantops/tenant-admin-api/internal/domain"
)

// FromTenant converts a Tenant domain model to its response representation
func FromTenant(tenant *domain.Tenant) *TenantResponse {
	if tenant == nil {
		return nil
	}
	return &TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Slug:      tenant.Slug,
		Locale:    tenant.Locale,
		Currency:  tenant.Currency,
		IsActive:  tenant.IsActive,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

// FromDocument converts a Document domain model to its response representation
func FromDocument(doc *domain.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:        doc.ID,
		TenantID:  doc.TenantID,
		Name:      doc.Name,
		MimeType:  doc.MimeType,
		SizeBytes: doc.SizeBytes,
		Status:    doc.Status,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func FromDocuments(docs []domain.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = *FromDocument(&doc)
	}
	return responses
}
