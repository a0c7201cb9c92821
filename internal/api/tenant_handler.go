package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tenantops/tenant-admin-api/internal/api/dto"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (dto.CreateTenantResponse, error)
	Get(ctx context.Context, tenantID string) (dto.GetTenantResponse, error)
	List(ctx context.Context) (dto.ListTenantsResponse, error)
	Update(ctx context.Context, req dto.UpdateTenantRequest) (dto.UpdateTenantResponse, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant godoc
// @Summary Create a new tenant
// @Description Create a tenant and bind the caller as its company admin
// @Tags tenants
// @Accept json
// @Produce json
// @Param body body dto.CreateTenantRequest true "Tenant object"
// @Success 200 {object} dto.CreateTenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTenant godoc
// @Summary Get a tenant
// @Description Get a tenant and its name aliases
// @Tags tenants
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {object} dto.GetTenantResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "tenant_id is required"})
		return
	}

	resp, err := h.service.Get(h.RequestCtx(c), tenantID)
	if err != nil {
		h.RespondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTenants godoc
// @Summary List all tenants
// @Description List every tenant in the system (platform operators only)
// @Tags tenant-admin
// @Produce json
// @Success 200 {object} dto.ListTenantsResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router /tenant-admin/tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	resp, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTenant godoc
// @Summary Update a tenant
// @Description Partially update tenant fields and reconcile name aliases.
// @Description Omitting the aliases key leaves aliases untouched; an empty
// @Description array clears them all.
// @Tags tenants
// @Accept json
// @Produce json
// @Param body body dto.UpdateTenantRequest true "Partial tenant update"
// @Success 200 {object} dto.UpdateTenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /tenants [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Update(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, resp)
}
