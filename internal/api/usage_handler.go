package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tenantops/tenant-admin-api/internal/api/dto"
)

//go:generate mockery --name UsageService --output ../mocks
type UsageService interface {
	GetUsage(ctx context.Context, tenantID, start, end string) (dto.GetUsageResponse, error)
}

type UsageHandler struct {
	*BaseHandler
	service UsageService
}

func NewUsageHandler(service UsageService) *UsageHandler {
	return &UsageHandler{service: service}
}

// GetUsage godoc
// @Summary Get a tenant's AI usage summary
// @Description Aggregate AI call usage over a date range; defaults to the current calendar month
// @Tags dashboard
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Param start query string false "Period start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Period end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.GetUsageResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router /dashboard/usage [get]
func (h *UsageHandler) GetUsage(c *gin.Context) {
	resp, err := h.service.GetUsage(h.RequestCtx(c), c.Query("tenant_id"), c.Query("start"), c.Query("end"))
	if err != nil {
		h.RespondError(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, resp)
}
