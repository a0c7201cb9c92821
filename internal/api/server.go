package api

import (
	"github.com/gin-gonic/gin"

	"github.com/tenantops/tenant-admin-api/internal/domain"
	"github.com/tenantops/tenant-admin-api/internal/middleware"
	"github.com/tenantops/tenant-admin-api/internal/service"
)

type Server struct {
	tenant      *TenantHandler
	tenantAdmin *TenantAdminHandler
	usage       *UsageHandler
	billing     *BillingHandler
	auth        *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
	validation  *middleware.ValidationMiddleware
}

func NewServer(
	tenantService *service.TenantService,
	backupService *service.BackupService,
	documentService *service.DocumentService,
	usageService *service.UsageService,
	billingService *service.BillingService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
) *Server {
	return &Server{
		tenant:      NewTenantHandler(tenantService),
		tenantAdmin: NewTenantAdminHandler(backupService, documentService),
		usage:       NewUsageHandler(usageService),
		billing:     NewBillingHandler(billingService),
		auth:        auth,
		rateLimit:   rateLimit,
		validation:  validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.ValidateRequestSize(50 * 1024 * 1024)) // restore payloads can be large
	api.Use(s.validation.ValidateContentType("application/json"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	{
		tenants := api.Group("/tenants", s.auth.JWTAuth(), s.rateLimit.UserRateLimit())
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.GetTenant)
			tenants.PUT("", s.tenant.UpdateTenant)
		}

		tenantAdmin := api.Group("/tenant-admin", s.auth.JWTAuth(), s.rateLimit.UserRateLimit())
		{
			tenantAdmin.GET("/tenants", s.tenant.ListTenants)
			tenantAdmin.POST("/backup", s.tenantAdmin.BackupTenant)
			tenantAdmin.POST("/restore", s.tenantAdmin.RestoreTenant)
			tenantAdmin.GET("/documents", s.tenantAdmin.ListDocuments)
			tenantAdmin.DELETE("/documents/:id", s.tenantAdmin.DeleteDocument)
		}

		dashboard := api.Group("/dashboard", s.auth.JWTAuth(), s.rateLimit.UserRateLimit())
		{
			dashboard.GET("/usage", s.usage.GetUsage)
		}

		billing := api.Group("/billing", s.auth.JWTAuth(), s.rateLimit.UserRateLimit(), s.auth.RequireRole(string(domain.RoleSuperAdmin)))
		{
			billing.GET("/subscriptions/:id", s.billing.GetSubscription)
			billing.GET("/invoices/:id", s.billing.GetInvoice)
		}
	}
}
