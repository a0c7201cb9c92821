package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/api/dto"
	"github.com/tenantops/tenant-admin-api/internal/domain"
	"github.com/tenantops/tenant-admin-api/internal/repository"
	"github.com/tenantops/tenant-admin-api/internal/repository/postgres"
	"github.com/tenantops/tenant-admin-api/internal/utils"
	"github.com/tenantops/tenant-admin-api/pkg/logger"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

type TenantService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewTenantService(repo repository.Repository, logger *logger.Logger) *TenantService {
	return &TenantService{repo: repo, logger: logger}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.CreateTenantResponse, error) {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return dto.CreateTenantResponse{}, ErrUnauthenticated
	}

	name := strings.TrimSpace(req.Name)
	slug := strings.TrimSpace(req.Slug)
	locale := strings.TrimSpace(req.Locale)
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))

	if name == "" {
		return dto.CreateTenantResponse{}, NewValidationError("name is required")
	}
	if slug == "" {
		return dto.CreateTenantResponse{}, NewValidationError("slug is required")
	}
	if currency != "" && !currencyPattern.MatchString(currency) {
		return dto.CreateTenantResponse{}, NewValidationError("currency must be a 3-letter ISO code")
	}
	if locale == "" {
		locale = "en"
	}

	tenant := &domain.Tenant{
		Name:     name,
		Slug:     slug,
		Locale:   locale,
		Currency: currency,
		OwnerID:  userID,
		IsActive: true,
	}

	created, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		return dto.CreateTenantResponse{}, err
	}

	resp := dto.CreateTenantResponse{Tenant: *dto.FromTenant(created)}

	// Some deployments create the owner membership via a database trigger;
	// insert it here as well and treat a duplicate as already satisfied.
	// Any other failure is non-fatal but surfaced as a warning.
	membership := &domain.Membership{
		UserID:   userID,
		TenantID: created.ID,
		Role:     string(domain.RoleCompanyAdmin),
		IsActive: true,
	}
	if err := s.repo.Membership().Create(ctx, membership); err != nil && !postgres.IsDuplicateKeyError(err) {
		s.logger.Warnf("failed to create owner membership for tenant %s: %v", created.ID, err)
		resp.Warnings = append(resp.Warnings, "failed to create owner membership: "+err.Error())
	}

	return resp, nil
}

// Get returns the tenant and its alias values. A missing tenant is not an
// error: the response carries a nil tenant and the caller decides.
func (s *TenantService) Get(ctx context.Context, tenantID string) (dto.GetTenantResponse, error) {
	resp := dto.GetTenantResponse{Aliases: []string{}}

	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return resp, err
	}
	resp.Tenant = dto.FromTenant(tenant)

	aliases, err := s.repo.Identifier().ListByTenant(ctx, tenantID, domain.IdentifierTypeNameAlias)
	if err != nil {
		return resp, err
	}
	for _, alias := range aliases {
		if value := strings.TrimSpace(alias.IdentifierValue); value != "" {
			resp.Aliases = append(resp.Aliases, value)
		}
	}

	return resp, nil
}

// List returns every tenant in the system. Reserved for platform operators;
// regular members only ever see their own tenant through Get.
func (s *TenantService) List(ctx context.Context) (dto.ListTenantsResponse, error) {
	if _, err := utils.GetUserIDFromContext(ctx); err != nil {
		return dto.ListTenantsResponse{}, ErrUnauthenticated
	}
	if !domain.HasRole(utils.GetRolesFromContext(ctx), domain.RoleSuperAdmin) {
		return dto.ListTenantsResponse{}, ErrForbidden
	}

	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return dto.ListTenantsResponse{}, err
	}

	resp := dto.ListTenantsResponse{Tenants: make([]dto.TenantResponse, 0, len(tenants))}
	for i := range tenants {
		resp.Tenants = append(resp.Tenants, *dto.FromTenant(&tenants[i]))
	}
	return resp, nil
}

func (s *TenantService) Update(ctx context.Context, req dto.UpdateTenantRequest) (dto.UpdateTenantResponse, error) {
	if _, err := utils.GetUserIDFromContext(ctx); err != nil {
		return dto.UpdateTenantResponse{}, ErrUnauthenticated
	}

	if err := s.repo.Tenant().UpdateFields(ctx, req.TenantID, req.TenantUpdate().Fields()); err != nil {
		return dto.UpdateTenantResponse{}, err
	}

	resp := dto.UpdateTenantResponse{
		OK:              true,
		Aliases:         []string{},
		InsertedAliases: []string{},
		DeletedAliasIDs: []string{},
	}

	// Reconcile aliases only when the key was present at all. Failures are
	// deliberately non-fatal: the field update above already succeeded.
	if req.Aliases != nil {
		result := s.reconcileAliases(ctx, req.TenantID, *req.Aliases)
		resp.InsertedAliases = result.Inserted
		resp.DeletedAliasIDs = result.DeletedIDs
		resp.Warnings = result.Warnings
	}

	// Return the updated tenant and final alias list so clients can refresh
	// without a second read. Best effort.
	current, err := s.Get(ctx, req.TenantID)
	if err != nil {
		s.logger.Warnf("failed to reload tenant %s after update: %v", req.TenantID, err)
		resp.Warnings = append(resp.Warnings, "failed to load updated tenant: "+err.Error())
		return resp, nil
	}
	resp.Tenant = current.Tenant
	resp.Aliases = current.Aliases

	return resp, nil
}

type aliasReconcileResult struct {
	Inserted   []string
	DeletedIDs []string
	Warnings   []string
}

// reconcileAliases makes the stored NAME_ALIAS set equal the incoming list:
// missing values are inserted, values no longer present are deleted, and an
// empty normalized list clears every alias. Repeated incoming values collapse
// to one. The same list applied twice is a no-op.
func (s *TenantService) reconcileAliases(ctx context.Context, tenantID string, incoming []string) aliasReconcileResult {
	result := aliasReconcileResult{
		Inserted:   []string{},
		DeletedIDs: []string{},
	}

	normalized := make([]string, 0, len(incoming))
	for _, alias := range incoming {
		if value := strings.TrimSpace(alias); value != "" {
			normalized = append(normalized, value)
		}
	}

	existing, err := s.repo.Identifier().ListByTenant(ctx, tenantID, domain.IdentifierTypeNameAlias)
	if err != nil {
		s.logger.Warnf("failed to load aliases for tenant %s: %v", tenantID, err)
		result.Warnings = append(result.Warnings, "failed to load existing aliases: "+err.Error())
		return result
	}

	existingValues := make(map[string]bool, len(existing))
	for _, row := range existing {
		existingValues[strings.TrimSpace(row.IdentifierValue)] = true
	}

	incomingValues := make(map[string]bool, len(normalized))
	toInsert := make([]domain.TenantIdentifier, 0, len(normalized))
	for _, value := range normalized {
		if incomingValues[value] {
			continue
		}
		incomingValues[value] = true
		if !existingValues[value] {
			toInsert = append(toInsert, domain.TenantIdentifier{
				TenantID:        tenantID,
				IdentifierType:  domain.IdentifierTypeNameAlias,
				IdentifierValue: value,
			})
		}
	}

	if len(toInsert) > 0 {
		inserted, err := s.repo.Identifier().Insert(ctx, toInsert)
		if err != nil {
			s.logger.Warnf("failed inserting aliases for tenant %s: %v", tenantID, err)
			result.Warnings = append(result.Warnings, "failed inserting aliases: "+err.Error())
		} else {
			for _, row := range inserted {
				result.Inserted = append(result.Inserted, row.IdentifierValue)
			}
		}
	}

	toDelete := make([]string, 0, len(existing))
	for _, row := range existing {
		if !incomingValues[strings.TrimSpace(row.IdentifierValue)] {
			toDelete = append(toDelete, row.ID)
		}
	}

	if len(toDelete) > 0 {
		deleted, err := s.repo.Identifier().DeleteByIDs(ctx, toDelete)
		if err != nil {
			s.logger.Warnf("failed deleting aliases for tenant %s: %v", tenantID, err)
			result.Warnings = append(result.Warnings, "failed deleting aliases: "+err.Error())
		} else {
			result.DeletedIDs = deleted
		}
	}

	return result
}
