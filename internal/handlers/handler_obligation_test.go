package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/handlers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ObligationHandlerTestSuite struct {
	handlerSuite
	mockService *MockObligationService
	userID      string
}

func TestObligationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ObligationHandlerTestSuite))
}

var handlerNow = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

func (suite *ObligationHandlerTestSuite) SetupTest() {
	suite.setupRouter()
	suite.mockService = new(MockObligationService)
	suite.userID = uuid.NewString()
	handlers.RegisterObligationRoutes(suite.v1, suite.mockService, func() time.Time { return handlerNow })
}

func (suite *ObligationHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ObligationHandlerTestSuite) sampleObligation() *domain.RecurringObligation {
	return &domain.RecurringObligation{
		ObligationID:    "obl-1",
		OwnerID:         suite.userID,
		LineageID:       "obl-1",
		Title:           "Rent",
		Amount:          150000,
		Kind:            domain.KindExpense,
		DayOfMonth:      5,
		DefaultStatus:   domain.StatusPending,
		ActiveFromMonth: domain.MustMonth(2025, 4),
	}
}

func (suite *ObligationHandlerTestSuite) TestCreateObligation_Success() {
	body := map[string]any{"title": "Rent", "amount": 150000, "kind": "expense", "dayOfMonth": 5}
	suite.mockService.On("CreateObligation", mock.Anything, suite.userID,
		mock.MatchedBy(func(req dto.CreateObligationRequest) bool {
			return req.Title == "Rent" && req.Amount == 150000 && req.DayOfMonth == 5
		}),
		domain.MustMonth(2025, 4),
	).Return(suite.sampleObligation(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/obligations", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ObligationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("obl-1", resp.ObligationID)
	suite.Equal("2025-04", resp.ActiveFromMonth)
	suite.True(resp.IsOpen)
	suite.Equal("1500", resp.DisplayAmount.String())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ObligationHandlerTestSuite) TestCreateObligation_BindingErrors() {
	cases := map[string]map[string]any{
		"missing title": {"amount": 100, "kind": "expense", "dayOfMonth": 5},
		"zero amount":   {"title": "x", "amount": 0, "kind": "expense", "dayOfMonth": 5},
		"day 32":        {"title": "x", "amount": 100, "kind": "expense", "dayOfMonth": 32},
		"bad kind":      {"title": "x", "amount": 100, "kind": "transfer", "dayOfMonth": 5},
		"bad month":     {"title": "x", "amount": 100, "kind": "expense", "dayOfMonth": 5, "activeFromMonth": "2025-13"},
	}
	for name, body := range cases {
		w := suite.do(http.MethodPost, "/api/v1/obligations", body)
		suite.Equal(http.StatusBadRequest, w.Code, name)
	}
	suite.mockService.AssertNotCalled(suite.T(), "CreateObligation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationHandlerTestSuite) TestCreateObligation_ValidationErrorFromService() {
	suite.mockService.On("CreateObligation", mock.Anything, suite.userID, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("allocations sum to 1 but total amount is 100")).Once()

	w := suite.do(http.MethodPost, "/api/v1/obligations", map[string]any{"title": "x", "amount": 100, "kind": "expense", "dayOfMonth": 5})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "allocations sum")
}

func (suite *ObligationHandlerTestSuite) TestListObligations_WithFilter() {
	suite.mockService.On("ListObligations", mock.Anything, suite.userID,
		mock.MatchedBy(func(activeIn *string) bool { return activeIn != nil && *activeIn == "2025-03" }),
	).Return([]domain.RecurringObligation{*suite.sampleObligation()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/obligations?activeIn=2025-03", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListObligationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Obligations, 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ObligationHandlerTestSuite) TestListObligations_BadFilter() {
	suite.mockService.On("ListObligations", mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.NewFormatError("month %q is not in YYYY-MM form", "March")).Maybe()

	w := suite.do(http.MethodGet, "/api/v1/obligations?activeIn=March", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ObligationHandlerTestSuite) TestGetObligation_NotFound() {
	suite.mockService.On("GetObligation", mock.Anything, "missing", suite.userID).
		Return(nil, apperrors.NewNotFoundError("obligation missing")).Once()

	w := suite.do(http.MethodGet, "/api/v1/obligations/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ObligationHandlerTestSuite) TestGetObligationHistory() {
	closed := suite.sampleObligation()
	end := domain.MustMonth(2025, 3)
	closed.ActiveToMonth = &end
	next := suite.sampleObligation()
	next.ObligationID = "obl-2"
	next.SupersedesID = &closed.ObligationID

	suite.mockService.On("GetObligationHistory", mock.Anything, "obl-2", suite.userID).
		Return([]domain.RecurringObligation{*closed, *next}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/obligations/obl-2/history", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListObligationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Obligations, 2)
	suite.False(resp.Obligations[0].IsOpen)
	suite.Require().NotNil(resp.Obligations[0].ActiveToMonth)
	suite.Equal("2025-03", *resp.Obligations[0].ActiveToMonth)
	suite.Require().NotNil(resp.Obligations[1].SupersedesID)
	suite.Equal("obl-1", *resp.Obligations[1].SupersedesID)
}

func (suite *ObligationHandlerTestSuite) TestUpdateObligation_PassesCurrentMonth() {
	updated := suite.sampleObligation()
	updated.ObligationID = "obl-2"
	updated.Amount = 160000

	suite.mockService.On("UpdateObligation", mock.Anything, "obl-1", suite.userID,
		mock.MatchedBy(func(req dto.UpdateObligationRequest) bool {
			return req.Amount != nil && *req.Amount == 160000 && req.Title == nil
		}),
		domain.MustMonth(2025, 4),
	).Return(updated, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/obligations/obl-1", map[string]any{"amount": 160000})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ObligationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("obl-2", resp.ObligationID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ObligationHandlerTestSuite) TestCloseObligation() {
	suite.mockService.On("CloseOrDeleteObligation", mock.Anything, "obl-1", suite.userID, domain.MustMonth(2025, 4)).
		Return(domain.ClosureClosed, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/obligations/obl-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CloseObligationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ClosureClosed, resp.Outcome)
	suite.Equal("obl-1", resp.ObligationID)
}

func (suite *ObligationHandlerTestSuite) TestCloseObligation_InternalError() {
	suite.mockService.On("CloseOrDeleteObligation", mock.Anything, "obl-1", suite.userID, mock.Anything).
		Return(domain.ClosureOutcome(""), assert.AnError).Once()

	w := suite.do(http.MethodDelete, "/api/v1/obligations/obl-1", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to close obligation")
	suite.NotContains(w.Body.String(), assert.AnError.Error())
}

func (suite *ObligationHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/obligations", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListObligations", mock.Anything, mock.Anything, mock.Anything)
}
