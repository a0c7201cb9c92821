package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:generate mockery --name BillingService --output ../mocks
type BillingService interface {
	RetrieveSubscription(ctx context.Context, subscriptionID string) (json.RawMessage, error)
	RetrieveInvoice(ctx context.Context, invoiceID string) (json.RawMessage, error)
}

type BillingHandler struct {
	*BaseHandler
	service BillingService
}

func NewBillingHandler(service BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// GetSubscription godoc
// @Summary Retrieve a billing subscription
// @Description Proxy a subscription lookup to the billing provider
// @Tags billing
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} object
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /billing/subscriptions/{id} [get]
func (h *BillingHandler) GetSubscription(c *gin.Context) {
	raw, err := h.service.RetrieveSubscription(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err, http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// GetInvoice godoc
// @Summary Retrieve a billing invoice
// @Description Proxy an invoice lookup to the billing provider
// @Tags billing
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} object
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /billing/invoices/{id} [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	raw, err := h.service.RetrieveInvoice(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err, http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
