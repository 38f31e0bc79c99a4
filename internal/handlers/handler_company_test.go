package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/billyhq/billing_backend/internal/core/domain"
	portssvc "github.com/billyhq/billing_backend/internal/core/ports/services"
	"github.com/billyhq/billing_backend/internal/dto"
	"github.com/billyhq/billing_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CompanyService ---

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Test Suite Setup ---

type CompanyHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCompanySvc *MockCompanyService
}

func (suite *CompanyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockCompanySvc = new(MockCompanyService)

	handler := handlers.NewCompanyHandler(suite.mockCompanySvc)
	suite.router = gin.New()
	suite.router.POST("/api/v1/companies", handler.CreateCompany)
}

func (suite *CompanyHandlerTestSuite) postCompany(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany_Success() {
	company := &domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        "Acme",
		APIKey:      uuid.NewString(),
		CallbackKey: uuid.NewString(),
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC()},
	}

	suite.mockCompanySvc.On("CreateCompany", mock.Anything, dto.CreateCompanyRequest{Name: "Acme"}).Return(company, nil).Once()

	rec := suite.postCompany(gin.H{"name": "Acme"})

	suite.Equal(http.StatusCreated, rec.Code)

	var resp dto.CompanyResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(company.CompanyID, resp.CompanyID)
	// Onboarding is the one place the keys are issued from.
	suite.Equal(company.APIKey, resp.APIKey)
	suite.Equal(company.CallbackKey, resp.CallbackKey)

	suite.mockCompanySvc.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany_MissingName() {
	rec := suite.postCompany(gin.H{})

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockCompanySvc.AssertNotCalled(suite.T(), "CreateCompany")
}

func TestCompanyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}
