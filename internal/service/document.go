package service

import (
	"context"

	"github.com/tenantops/tenant-admin-api/internal/api/dto"
	"github.com/tenantops/tenant-admin-api/internal/repository"
)

type DocumentService struct {
	repo  repository.Repository
	authz *AuthzService
}

func NewDocumentService(repo repository.Repository, authz *AuthzService) *DocumentService {
	return &DocumentService{repo: repo, authz: authz}
}

func (s *DocumentService) List(ctx context.Context, tenantID string) (dto.ListDocumentsResponse, error) {
	if tenantID == "" {
		return dto.ListDocumentsResponse{}, NewValidationError("tenant_id is required")
	}
	if err := s.authz.Authorize(ctx, tenantID); err != nil {
		return dto.ListDocumentsResponse{}, err
	}

	documents, err := s.repo.Document().ListByTenant(ctx, tenantID)
	if err != nil {
		return dto.ListDocumentsResponse{}, err
	}

	return dto.ListDocumentsResponse{Documents: dto.FromDocuments(documents)}, nil
}

func (s *DocumentService) Delete(ctx context.Context, tenantID, documentID string) error {
	if tenantID == "" {
		return NewValidationError("tenant_id is required")
	}
	if documentID == "" {
		return NewValidationError("document id is required")
	}
	if err := s.authz.Authorize(ctx, tenantID); err != nil {
		return err
	}

	affected, err := s.repo.Document().Delete(ctx, tenantID, documentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
