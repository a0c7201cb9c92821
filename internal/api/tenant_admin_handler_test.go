package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tenantops/tenant-admin-api/internal/api/dto"
	"github.com/tenantops/tenant-admin-api/internal/domain"
	"github.com/tenantops/tenant-admin-api/internal/service"
)

type TenantAdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockBackup    *MockBackupService
	mockDocuments *MockDocumentService
	handler       *TenantAdminHandler
}

type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) Backup(ctx context.Context, tenantID string) (*domain.BackupDocument, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BackupDocument), args.Error(1)
}

func (m *MockBackupService) Restore(ctx context.Context, tenantID string, doc *domain.BackupDocument) error {
	args := m.Called(ctx, tenantID, doc)
	return args.Error(0)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, tenantID string) (dto.ListDocumentsResponse, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(dto.ListDocumentsResponse), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, tenantID, documentID string) error {
	args := m.Called(ctx, tenantID, documentID)
	return args.Error(0)
}

func (s *TenantAdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockBackup = new(MockBackupService)
	s.mockDocuments = new(MockDocumentService)
	s.handler = NewTenantAdminHandler(s.mockBackup, s.mockDocuments)

	// Setup routes
	s.router.POST("/tenant-admin/backup", s.handler.BackupTenant)
	s.router.POST("/tenant-admin/restore", s.handler.RestoreTenant)
	s.router.GET("/tenant-admin/documents", s.handler.ListDocuments)
	s.router.DELETE("/tenant-admin/documents/:id", s.handler.DeleteDocument)
}

func TestTenantAdminHandler(t *testing.T) {
	suite.Run(t, new(TenantAdminHandlerTestSuite))
}

func (s *TenantAdminHandlerTestSuite) TestBackupTenant_Success() {
	// Arrange
	doc := domain.NewBackupDocument()
	doc.Tenant = domain.Row{"id": "tenant1"}
	doc.Tables["documents"] = []domain.Row{{"id": "doc1"}}

	s.mockBackup.On("Backup", mock.Anything, "tenant1").Return(doc, nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/tenant-admin/backup", bytes.NewBufferString(`{"tenantId":"tenant1"}`))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)

	// The snapshot is flat inside "data": table keys next to the tenant row
	// and version tag.
	var response struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Contains(response.Data, "documents")
	s.Contains(response.Data, "tenant")
	s.Contains(response.Data, "backup_version")
	s.mockBackup.AssertExpectations(s.T())
}

func (s *TenantAdminHandlerTestSuite) TestBackupTenant_MissingTenantID() {
	// Arrange
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/tenant-admin/backup", bytes.NewBufferString(`{}`))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockBackup.AssertNotCalled(s.T(), "Backup", mock.Anything, mock.Anything)
}

func (s *TenantAdminHandlerTestSuite) TestBackupTenant_Forbidden() {
	// Arrange
	s.mockBackup.On("Backup", mock.Anything, "tenant1").Return(nil, service.ErrForbidden)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/tenant-admin/backup", bytes.NewBufferString(`{"tenantId":"tenant1"}`))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *TenantAdminHandlerTestSuite) TestRestoreTenant_Success() {
	// Arrange
	s.mockBackup.On("Restore", mock.Anything, "tenant1", mock.AnythingOfType("*domain.BackupDocument")).Return(nil)

	body := `{"tenantId":"tenant1","data":{"backup_version":1,"tenant":{"id":"tenant1"},"documents":[{"id":"doc1"}]}}`
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/tenant-admin/restore", bytes.NewBufferString(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)

	var response dto.RestoreTenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.Success)
	s.mockBackup.AssertExpectations(s.T())
}

func (s *TenantAdminHandlerTestSuite) TestRestoreTenant_UnsupportedVersion() {
	// Arrange
	s.mockBackup.On("Restore", mock.Anything, "tenant1", mock.AnythingOfType("*domain.BackupDocument")).
		Return(service.ErrUnsupportedBackupVersion)

	body := `{"tenantId":"tenant1","data":{"backup_version":99}}`
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/tenant-admin/restore", bytes.NewBufferString(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TenantAdminHandlerTestSuite) TestListDocuments_Success() {
	// Arrange
	expectedResponse := dto.ListDocumentsResponse{
		Documents: []dto.DocumentResponse{{ID: "doc1", TenantID: "tenant1", Name: "invoice.pdf"}},
	}

	s.mockDocuments.On("List", mock.Anything, "tenant1").Return(expectedResponse, nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/tenant-admin/documents?tenant_id=tenant1", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)

	var response dto.ListDocumentsResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response.Documents, 1)
	s.Equal("invoice.pdf", response.Documents[0].Name)
}

func (s *TenantAdminHandlerTestSuite) TestDeleteDocument_Success() {
	// Arrange
	s.mockDocuments.On("Delete", mock.Anything, "tenant1", "doc1").Return(nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodDelete, "/tenant-admin/documents/doc1?tenant_id=tenant1", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockDocuments.AssertExpectations(s.T())
}

func (s *TenantAdminHandlerTestSuite) TestDeleteDocument_NotFound() {
	// Arrange
	s.mockDocuments.On("Delete", mock.Anything, "tenant1", "missing").Return(service.ErrDocumentNotFound)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodDelete, "/tenant-admin/documents/missing?tenant_id=tenant1", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}
