package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/api/dto"
	"github.com/tenantops/tenant-admin-api/internal/domain"
	"github.com/tenantops/tenant-admin-api/internal/mocks"
	"github.com/tenantops/tenant-admin-api/internal/utils"
	"github.com/tenantops/tenant-admin-api/pkg/logger"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockTenant     *mocks.TenantRepository
	mockIdentifier *mocks.IdentifierRepository
	mockMembership *mocks.MembershipRepository
	service        *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockIdentifier = new(mocks.IdentifierRepository)
	s.mockMembership = new(mocks.MembershipRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Identifier").Return(s.mockIdentifier)
	s.mockRepo.On("Membership").Return(s.mockMembership)

	s.service = NewTenantService(s.mockRepo, logger.NewNop())
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func authedCtx(userID string, roles ...string) context.Context {
	claims := jwt.MapClaims{"user_id": userID}
	if len(roles) > 0 {
		claims["roles"] = roles
	}
	return context.WithValue(context.Background(), utils.ClaimsKey, claims)
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := authedCtx("user1")
	req := dto.CreateTenantRequest{
		Name:     "Test Tenant",
		Slug:     "test-tenant",
		Currency: "eur",
	}

	expectedTenant := &domain.Tenant{
		ID:        "tenant1",
		Name:      req.Name,
		Slug:      req.Slug,
		Locale:    "en",
		Currency:  "EUR",
		OwnerID:   "user1",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).Return(expectedTenant, nil)
	s.mockMembership.On("Create", ctx, mock.AnythingOfType("*domain.Membership")).Return(nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal(expectedTenant.ID, resp.Tenant.ID)
	s.Equal("EUR", resp.Tenant.Currency)
	s.Equal("en", resp.Tenant.Locale)
	s.Empty(resp.Warnings)
	s.mockTenant.AssertExpectations(s.T())
	s.mockMembership.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreate_Unauthenticated() {
	// Act
	_, err := s.service.Create(context.Background(), dto.CreateTenantRequest{Name: "x", Slug: "x"})

	// Assert
	s.ErrorIs(err, ErrUnauthenticated)
	s.mockTenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestCreate_MissingName() {
	// Act
	_, err := s.service.Create(authedCtx("user1"), dto.CreateTenantRequest{Name: "   ", Slug: "x"})

	// Assert
	s.True(IsValidationError(err))
}

func (s *TenantServiceTestSuite) TestCreate_InvalidCurrency() {
	// Act
	_, err := s.service.Create(authedCtx("user1"), dto.CreateTenantRequest{
		Name:     "Test",
		Slug:     "test",
		Currency: "EURO",
	})

	// Assert
	s.True(IsValidationError(err))
}

func (s *TenantServiceTestSuite) TestCreate_DuplicateMembershipIgnored() {
	// Arrange
	ctx := authedCtx("user1")
	expectedTenant := &domain.Tenant{ID: "tenant1", Name: "Test", Slug: "test"}

	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).Return(expectedTenant, nil)
	s.mockMembership.On("Create", ctx, mock.AnythingOfType("*domain.Membership")).Return(gorm.ErrDuplicatedKey)

	// Act
	resp, err := s.service.Create(ctx, dto.CreateTenantRequest{Name: "Test", Slug: "test"})

	// Assert
	s.NoError(err)
	s.Empty(resp.Warnings)
}

func (s *TenantServiceTestSuite) TestCreate_MembershipFailureWarns() {
	// Arrange
	ctx := authedCtx("user1")
	expectedTenant := &domain.Tenant{ID: "tenant1", Name: "Test", Slug: "test"}

	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).Return(expectedTenant, nil)
	s.mockMembership.On("Create", ctx, mock.AnythingOfType("*domain.Membership")).Return(errors.New("connection refused"))

	// Act
	resp, err := s.service.Create(ctx, dto.CreateTenantRequest{Name: "Test", Slug: "test"})

	// Assert
	s.NoError(err)
	s.Len(resp.Warnings, 1)
	s.Contains(resp.Warnings[0], "membership")
}

func (s *TenantServiceTestSuite) TestGet_Success() {
	// Arrange
	ctx := authedCtx("user1")
	tenant := &domain.Tenant{ID: "tenant1", Name: "Test"}
	aliases := []domain.TenantIdentifier{
		{ID: "id1", TenantID: "tenant1", IdentifierType: domain.IdentifierTypeNameAlias, IdentifierValue: "Test GmbH"},
		{ID: "id2", TenantID: "tenant1", IdentifierType: domain.IdentifierTypeNameAlias, IdentifierValue: "  Test AG  "},
	}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(tenant, nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return(aliases, nil)

	// Act
	resp, err := s.service.Get(ctx, "tenant1")

	// Assert
	s.NoError(err)
	s.NotNil(resp.Tenant)
	s.Equal("tenant1", resp.Tenant.ID)
	s.Equal([]string{"Test GmbH", "Test AG"}, resp.Aliases)
}

func (s *TenantServiceTestSuite) TestGet_MissingTenantIsNotAnError() {
	// Arrange
	ctx := authedCtx("user1")

	s.mockTenant.On("GetByID", ctx, "nope").Return(nil, gorm.ErrRecordNotFound)
	s.mockIdentifier.On("ListByTenant", ctx, "nope", domain.IdentifierTypeNameAlias).Return([]domain.TenantIdentifier{}, nil)

	// Act
	resp, err := s.service.Get(ctx, "nope")

	// Assert
	s.NoError(err)
	s.Nil(resp.Tenant)
	s.Empty(resp.Aliases)
}

func (s *TenantServiceTestSuite) TestUpdate_OmittedAliasesLeftUntouched() {
	// Arrange
	ctx := authedCtx("user1")
	name := "Renamed"
	req := dto.UpdateTenantRequest{TenantID: "tenant1", Name: &name}

	s.mockTenant.On("UpdateFields", ctx, "tenant1", mock.Anything).Return(nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1", Name: name}, nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).
		Return([]domain.TenantIdentifier{{ID: "id1", IdentifierValue: "Old Alias"}}, nil)

	// Act
	resp, err := s.service.Update(ctx, req)

	// Assert
	s.NoError(err)
	s.True(resp.OK)
	s.Equal([]string{"Old Alias"}, resp.Aliases)
	s.Empty(resp.InsertedAliases)
	s.Empty(resp.DeletedAliasIDs)
	s.mockIdentifier.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
	s.mockIdentifier.AssertNotCalled(s.T(), "DeleteByIDs", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestUpdate_ReconcilesAliases() {
	// Arrange
	ctx := authedCtx("user1")
	aliases := []string{"Beta", "Gamma"}
	req := dto.UpdateTenantRequest{TenantID: "tenant1", Aliases: &aliases}

	existing := []domain.TenantIdentifier{
		{ID: "id1", IdentifierValue: "Alpha"},
		{ID: "id2", IdentifierValue: "Beta"},
	}
	final := []domain.TenantIdentifier{
		{ID: "id2", IdentifierValue: "Beta"},
		{ID: "id3", IdentifierValue: "Gamma"},
	}

	s.mockTenant.On("UpdateFields", ctx, "tenant1", mock.Anything).Return(nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return(existing, nil).Once()
	s.mockIdentifier.On("Insert", ctx, mock.MatchedBy(func(rows []domain.TenantIdentifier) bool {
		return len(rows) == 1 && rows[0].IdentifierValue == "Gamma"
	})).Return([]domain.TenantIdentifier{{ID: "id3", IdentifierValue: "Gamma"}}, nil)
	s.mockIdentifier.On("DeleteByIDs", ctx, []string{"id1"}).Return([]string{"id1"}, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return(final, nil).Once()

	// Act
	resp, err := s.service.Update(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal([]string{"Gamma"}, resp.InsertedAliases)
	s.Equal([]string{"id1"}, resp.DeletedAliasIDs)
	s.Equal([]string{"Beta", "Gamma"}, resp.Aliases)
	s.Empty(resp.Warnings)
	s.mockIdentifier.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestUpdate_EmptyAliasListClearsAll() {
	// Arrange
	ctx := authedCtx("user1")
	aliases := []string{}
	req := dto.UpdateTenantRequest{TenantID: "tenant1", Aliases: &aliases}

	existing := []domain.TenantIdentifier{
		{ID: "id1", IdentifierValue: "Alpha"},
		{ID: "id2", IdentifierValue: "Beta"},
	}

	s.mockTenant.On("UpdateFields", ctx, "tenant1", mock.Anything).Return(nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return(existing, nil).Once()
	s.mockIdentifier.On("DeleteByIDs", ctx, []string{"id1", "id2"}).Return([]string{"id1", "id2"}, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return([]domain.TenantIdentifier{}, nil).Once()

	// Act
	resp, err := s.service.Update(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal([]string{"id1", "id2"}, resp.DeletedAliasIDs)
	s.Empty(resp.Aliases)
	s.mockIdentifier.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestUpdate_SameAliasListIsNoop() {
	// Arrange
	ctx := authedCtx("user1")
	aliases := []string{"Alpha", "Beta"}
	req := dto.UpdateTenantRequest{TenantID: "tenant1", Aliases: &aliases}

	existing := []domain.TenantIdentifier{
		{ID: "id1", IdentifierValue: "Alpha"},
		{ID: "id2", IdentifierValue: "Beta"},
	}

	s.mockTenant.On("UpdateFields", ctx, "tenant1", mock.Anything).Return(nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return(existing, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)

	// Act
	resp, err := s.service.Update(ctx, req)

	// Assert
	s.NoError(err)
	s.Empty(resp.InsertedAliases)
	s.Empty(resp.DeletedAliasIDs)
	s.mockIdentifier.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
	s.mockIdentifier.AssertNotCalled(s.T(), "DeleteByIDs", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestUpdate_BlankAliasesDropped() {
	// Arrange
	ctx := authedCtx("user1")
	aliases := []string{"  ", "", "Alpha"}
	req := dto.UpdateTenantRequest{TenantID: "tenant1", Aliases: &aliases}

	s.mockTenant.On("UpdateFields", ctx, "tenant1", mock.Anything).Return(nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return([]domain.TenantIdentifier{}, nil).Once()
	s.mockIdentifier.On("Insert", ctx, mock.MatchedBy(func(rows []domain.TenantIdentifier) bool {
		return len(rows) == 1 && rows[0].IdentifierValue == "Alpha"
	})).Return([]domain.TenantIdentifier{{ID: "id1", IdentifierValue: "Alpha"}}, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).
		Return([]domain.TenantIdentifier{{ID: "id1", IdentifierValue: "Alpha"}}, nil).Once()

	// Act
	resp, err := s.service.Update(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal([]string{"Alpha"}, resp.InsertedAliases)
	s.mockIdentifier.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestUpdate_DuplicateAliasesCollapseToOne() {
	// Arrange
	ctx := authedCtx("user1")
	aliases := []string{"Gamma", "Gamma", "Beta"}
	req := dto.UpdateTenantRequest{TenantID: "tenant1", Aliases: &aliases}

	existing := []domain.TenantIdentifier{
		{ID: "id2", IdentifierValue: "Beta"},
	}
	final := []domain.TenantIdentifier{
		{ID: "id2", IdentifierValue: "Beta"},
		{ID: "id3", IdentifierValue: "Gamma"},
	}

	s.mockTenant.On("UpdateFields", ctx, "tenant1", mock.Anything).Return(nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return(existing, nil).Once()
	// The repeated value must produce a single insert row.
	s.mockIdentifier.On("Insert", ctx, mock.MatchedBy(func(rows []domain.TenantIdentifier) bool {
		return len(rows) == 1 && rows[0].IdentifierValue == "Gamma"
	})).Return([]domain.TenantIdentifier{{ID: "id3", IdentifierValue: "Gamma"}}, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return(final, nil).Once()

	// Act
	resp, err := s.service.Update(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal([]string{"Gamma"}, resp.InsertedAliases)
	s.Empty(resp.DeletedAliasIDs)
	s.mockIdentifier.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestUpdate_AliasInsertFailureIsNonFatal() {
	// Arrange
	ctx := authedCtx("user1")
	aliases := []string{"Alpha"}
	req := dto.UpdateTenantRequest{TenantID: "tenant1", Aliases: &aliases}

	s.mockTenant.On("UpdateFields", ctx, "tenant1", mock.Anything).Return(nil)
	s.mockIdentifier.On("ListByTenant", ctx, "tenant1", domain.IdentifierTypeNameAlias).Return([]domain.TenantIdentifier{}, nil)
	s.mockIdentifier.On("Insert", ctx, mock.Anything).Return(nil, errors.New("insert failed"))
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)

	// Act
	resp, err := s.service.Update(ctx, req)

	// Assert
	s.NoError(err)
	s.True(resp.OK)
	s.NotEmpty(resp.Warnings)
}

func (s *TenantServiceTestSuite) TestUpdate_FieldUpdateFailureIsFatal() {
	// Arrange
	ctx := authedCtx("user1")
	aliases := []string{"Alpha"}
	req := dto.UpdateTenantRequest{TenantID: "tenant1", Aliases: &aliases}

	s.mockTenant.On("UpdateFields", ctx, "tenant1", mock.Anything).Return(errors.New("update failed"))

	// Act
	_, err := s.service.Update(ctx, req)

	// Assert
	s.Error(err)
	s.mockIdentifier.AssertNotCalled(s.T(), "ListByTenant", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestList_SuperAdmin() {
	// Arrange
	ctx := authedCtx("admin1", string(domain.RoleSuperAdmin))
	tenants := []domain.Tenant{
		{ID: "tenant1", Name: "Acme", Slug: "acme"},
		{ID: "tenant2", Name: "Globex", Slug: "globex"},
	}

	s.mockTenant.On("List", ctx).Return(tenants, nil)

	// Act
	resp, err := s.service.List(ctx)

	// Assert
	s.NoError(err)
	s.Len(resp.Tenants, 2)
	s.Equal("tenant1", resp.Tenants[0].ID)
	s.Equal("globex", resp.Tenants[1].Slug)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestList_RegularMemberForbidden() {
	// Act
	_, err := s.service.List(authedCtx("user1", string(domain.RoleCompanyAdmin)))

	// Assert
	s.ErrorIs(err, ErrForbidden)
	s.mockTenant.AssertNotCalled(s.T(), "List", mock.Anything)
}

func (s *TenantServiceTestSuite) TestList_Unauthenticated() {
	// Act
	_, err := s.service.List(context.Background())

	// Assert
	s.ErrorIs(err, ErrUnauthenticated)
}

func (s *TenantServiceTestSuite) TestList_RepositoryError() {
	// Arrange
	ctx := authedCtx("admin1", string(domain.RoleSuperAdmin))
	dbErr := errors.New("connection refused")

	s.mockTenant.On("List", ctx).Return(nil, dbErr)

	// Act
	_, err := s.service.List(ctx)

	// Assert
	s.ErrorIs(err, dbErr)
}
