package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tenantops/tenant-admin-api/internal/api/dto"
	"github.com/tenantops/tenant-admin-api/internal/service"
	"github.com/tenantops/tenant-admin-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// RespondError maps service errors to HTTP statuses. upstreamStatus is the
// status for errors outside the shared taxonomy; it differs per call site
// (400 for usage, 500 for backup/restore).
func (h *BaseHandler) RespondError(c *gin.Context, err error, upstreamStatus int) {
	status := upstreamStatus
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case service.IsValidationError(err), errors.Is(err, service.ErrUnsupportedBackupVersion):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrTenantNotFound), errors.Is(err, service.ErrDocumentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrStripeNotConfigured):
		status = http.StatusInternalServerError
	}

	c.JSON(status, dto.Error{Error: err.Error()})
}
