package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tenantops/tenant-admin-api/internal/api/dto"
	"github.com/tenantops/tenant-admin-api/internal/domain"
)

//go:generate mockery --name BackupService --output ../mocks
type BackupService interface {
	Backup(ctx context.Context, tenantID string) (*domain.BackupDocument, error)
	Restore(ctx context.Context, tenantID string, doc *domain.BackupDocument) error
}

//go:generate mockery --name DocumentService --output ../mocks
type DocumentService interface {
	List(ctx context.Context, tenantID string) (dto.ListDocumentsResponse, error)
	Delete(ctx context.Context, tenantID, documentID string) error
}

type TenantAdminHandler struct {
	*BaseHandler
	backup    BackupService
	documents DocumentService
}

func NewTenantAdminHandler(backup BackupService, documents DocumentService) *TenantAdminHandler {
	return &TenantAdminHandler{backup: backup, documents: documents}
}

// BackupTenant godoc
// @Summary Snapshot a tenant's data
// @Description Serialize the tenant's rows across the fixed table set into a single JSON document
// @Tags tenant-admin
// @Accept json
// @Produce json
// @Param body body dto.BackupTenantRequest true "Backup request"
// @Success 200 {object} dto.BackupTenantResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenant-admin/backup [post]
func (h *TenantAdminHandler) BackupTenant(c *gin.Context) {
	var req dto.BackupTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	doc, err := h.backup.Backup(h.RequestCtx(c), req.TenantID)
	if err != nil {
		h.RespondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.BackupTenantResponse{Data: doc})
}

// RestoreTenant godoc
// @Summary Restore a tenant's data from a snapshot
// @Description Upsert every row of the snapshot back into its table, atomically
// @Tags tenant-admin
// @Accept json
// @Produce json
// @Param body body dto.RestoreTenantRequest true "Restore request"
// @Success 200 {object} dto.RestoreTenantResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenant-admin/restore [post]
func (h *TenantAdminHandler) RestoreTenant(c *gin.Context) {
	var req dto.RestoreTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	if err := h.backup.Restore(h.RequestCtx(c), req.TenantID, req.Data); err != nil {
		h.RespondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.RestoreTenantResponse{Success: true})
}

// ListDocuments godoc
// @Summary List a tenant's documents
// @Tags tenant-admin
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenant-admin/documents [get]
func (h *TenantAdminHandler) ListDocuments(c *gin.Context) {
	resp, err := h.documents.List(h.RequestCtx(c), c.Query("tenant_id"))
	if err != nil {
		h.RespondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteDocument godoc
// @Summary Delete a tenant's document
// @Tags tenant-admin
// @Produce json
// @Param id path string true "Document ID"
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {object} dto.DeleteDocumentResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenant-admin/documents/{id} [delete]
func (h *TenantAdminHandler) DeleteDocument(c *gin.Context) {
	if err := h.documents.Delete(h.RequestCtx(c), c.Query("tenant_id"), c.Param("id")); err != nil {
		h.RespondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteDocumentResponse{Success: true})
}
