package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ObligationService ---
type MockObligationService struct {
	mock.Mock
}

func (m *MockObligationService) CreateObligation(ctx context.Context, ownerID string, req dto.CreateObligationRequest, currentMonth domain.Month) (*domain.RecurringObligation, error) {
	args := m.Called(ctx, ownerID, req, currentMonth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringObligation), args.Error(1)
}

func (m *MockObligationService) UpdateObligation(ctx context.Context, obligationID, ownerID string, req dto.UpdateObligationRequest, currentMonth domain.Month) (*domain.RecurringObligation, error) {
	args := m.Called(ctx, obligationID, ownerID, req, currentMonth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringObligation), args.Error(1)
}

func (m *MockObligationService) CloseOrDeleteObligation(ctx context.Context, obligationID, ownerID string, currentMonth domain.Month) (domain.ClosureOutcome, error) {
	args := m.Called(ctx, obligationID, ownerID, currentMonth)
	return args.Get(0).(domain.ClosureOutcome), args.Error(1)
}

func (m *MockObligationService) GetObligation(ctx context.Context, obligationID, ownerID string) (*domain.RecurringObligation, error) {
	args := m.Called(ctx, obligationID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringObligation), args.Error(1)
}

func (m *MockObligationService) ListObligations(ctx context.Context, ownerID string, activeIn *string) ([]domain.RecurringObligation, error) {
	args := m.Called(ctx, ownerID, activeIn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringObligation), args.Error(1)
}

func (m *MockObligationService) GetObligationHistory(ctx context.Context, obligationID, ownerID string) ([]domain.RecurringObligation, error) {
	args := m.Called(ctx, obligationID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringObligation), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ObligationSvcFacade = (*MockObligationService)(nil)

// --- Mock GenerationService ---
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) GenerateForMonth(ctx context.Context, ownerID string, month string) (*domain.GenerationReport, error) {
	args := m.Called(ctx, ownerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationReport), args.Error(1)
}

func (m *MockGenerationService) ListGenerationOwners(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.MonthlyGenerationSvc = (*MockGenerationService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, month string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Shared suite plumbing ---

// handlerSuite owns a router behind the real auth middleware.
type handlerSuite struct {
	suite.Suite
	router    *gin.Engine
	v1        *gin.RouterGroup
	jwtSecret string
}

func (suite *handlerSuite) setupRouter() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))
	suite.v1 = suite.router.Group("/api/v1")
}

// generateTestToken creates a signed JWT whose subject is userID.
func (suite *handlerSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "tracker-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}
