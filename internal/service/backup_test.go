package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/tenantops/tenant-admin-api/internal/domain"
	"github.com/tenantops/tenant-admin-api/internal/mocks"
	"github.com/tenantops/tenant-admin-api/pkg/logger"
)

type BackupServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockBackup     *mocks.BackupRepository
	mockMembership *mocks.MembershipRepository
	mockQueue      *mocks.ArchiveQueue
	service        *BackupService
}

func (s *BackupServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockBackup = new(mocks.BackupRepository)
	s.mockMembership = new(mocks.MembershipRepository)
	s.mockQueue = new(mocks.ArchiveQueue)

	s.mockRepo.On("Backup").Return(s.mockBackup)
	s.mockRepo.On("Membership").Return(s.mockMembership)

	s.service = NewBackupService(s.mockRepo, NewAuthzService(s.mockRepo), logger.NewNop())
}

func TestBackupService(t *testing.T) {
	suite.Run(t, new(BackupServiceTestSuite))
}

func (s *BackupServiceTestSuite) TestBackup_SuperAdmin() {
	// Arrange
	ctx := authedCtx("admin1", string(domain.RoleSuperAdmin))
	tenantID := "tenant1"

	s.mockBackup.On("FetchTableRows", ctx, mock.AnythingOfType("string"), tenantID).
		Return([]domain.Row{{"id": "row1", "tenant_id": tenantID}}, nil)
	s.mockBackup.On("FetchTenantRow", ctx, tenantID).
		Return(domain.Row{"id": tenantID, "name": "Test"}, nil)

	// Act
	doc, err := s.service.Backup(ctx, tenantID)

	// Assert
	s.NoError(err)
	s.Equal(domain.BackupVersion, doc.Version)
	s.Equal("Test", doc.Tenant["name"])
	s.Len(doc.Tables, len(domain.BackupTables))
	for _, table := range domain.BackupTables {
		s.Contains(doc.Tables, table)
	}
	// Membership is never consulted for a super admin.
	s.mockMembership.AssertNotCalled(s.T(), "GetActive", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BackupServiceTestSuite) TestBackup_MemberAllowed() {
	// Arrange
	ctx := authedCtx("user1")
	tenantID := "tenant1"

	s.mockMembership.On("GetActive", ctx, "user1", tenantID).
		Return(&domain.Membership{UserID: "user1", TenantID: tenantID, IsActive: true}, nil)
	s.mockBackup.On("FetchTableRows", ctx, mock.AnythingOfType("string"), tenantID).
		Return([]domain.Row{}, nil)
	s.mockBackup.On("FetchTenantRow", ctx, tenantID).
		Return(domain.Row{"id": tenantID}, nil)

	// Act
	doc, err := s.service.Backup(ctx, tenantID)

	// Assert
	s.NoError(err)
	s.NotNil(doc)
	s.mockMembership.AssertExpectations(s.T())
}

func (s *BackupServiceTestSuite) TestBackup_Unauthenticated() {
	// Act
	_, err := s.service.Backup(context.Background(), "tenant1")

	// Assert
	s.ErrorIs(err, ErrUnauthenticated)
}

func (s *BackupServiceTestSuite) TestBackup_NonMemberForbidden() {
	// Arrange
	ctx := authedCtx("user1")

	s.mockMembership.On("GetActive", ctx, "user1", "tenant1").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.Backup(ctx, "tenant1")

	// Assert
	s.ErrorIs(err, ErrForbidden)
	s.mockBackup.AssertNotCalled(s.T(), "FetchTableRows", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BackupServiceTestSuite) TestBackup_TableFetchErrorAborts() {
	// Arrange
	ctx := authedCtx("admin1", string(domain.RoleSuperAdmin))

	s.mockBackup.On("FetchTableRows", ctx, mock.AnythingOfType("string"), "tenant1").
		Return(nil, errors.New("relation does not exist"))

	// Act
	doc, err := s.service.Backup(ctx, "tenant1")

	// Assert
	s.Error(err)
	s.Nil(doc)
	s.Contains(err.Error(), "failed to fetch")
}

func (s *BackupServiceTestSuite) TestBackup_ArchiveEnqueueFailureIsNonFatal() {
	// Arrange
	ctx := authedCtx("admin1", string(domain.RoleSuperAdmin))
	tenantID := "tenant1"

	s.mockBackup.On("FetchTableRows", ctx, mock.AnythingOfType("string"), tenantID).Return([]domain.Row{}, nil)
	s.mockBackup.On("FetchTenantRow", ctx, tenantID).Return(domain.Row{"id": tenantID}, nil)
	s.mockQueue.On("SendArchiveBackupMessage", ctx, tenantID).Return(errors.New("queue unavailable"))

	s.service.SetArchiveQueue(s.mockQueue)

	// Act
	doc, err := s.service.Backup(ctx, tenantID)

	// Assert
	s.NoError(err)
	s.NotNil(doc)
	s.mockQueue.AssertExpectations(s.T())
}

func (s *BackupServiceTestSuite) TestRestore_Success() {
	// Arrange
	ctx := authedCtx("admin1", string(domain.RoleSuperAdmin))
	doc := domain.NewBackupDocument()
	doc.Tenant = domain.Row{"id": "tenant1"}
	doc.Tables["documents"] = []domain.Row{{"id": "doc1", "tenant_id": "tenant1"}}

	s.mockBackup.On("RestoreDocument", ctx, doc).Return(nil)

	// Act
	err := s.service.Restore(ctx, "tenant1", doc)

	// Assert
	s.NoError(err)
	s.mockBackup.AssertExpectations(s.T())
}

func (s *BackupServiceTestSuite) TestRestore_NewerVersionRejected() {
	// Arrange
	ctx := authedCtx("admin1", string(domain.RoleSuperAdmin))
	doc := domain.NewBackupDocument()
	doc.Version = domain.BackupVersion + 1

	// Act
	err := s.service.Restore(ctx, "tenant1", doc)

	// Assert
	s.ErrorIs(err, ErrUnsupportedBackupVersion)
	s.mockBackup.AssertNotCalled(s.T(), "RestoreDocument", mock.Anything, mock.Anything)
}

func (s *BackupServiceTestSuite) TestRestore_NilDocument() {
	// Act
	err := s.service.Restore(authedCtx("admin1", string(domain.RoleSuperAdmin)), "tenant1", nil)

	// Assert
	s.True(IsValidationError(err))
}

func (s *BackupServiceTestSuite) TestRestore_Forbidden() {
	// Arrange
	ctx := authedCtx("user1")

	s.mockMembership.On("GetActive", ctx, "user1", "tenant1").Return(nil, gorm.ErrRecordNotFound)

	// Act
	err := s.service.Restore(ctx, "tenant1", domain.NewBackupDocument())

	// Assert
	s.ErrorIs(err, ErrForbidden)
}
