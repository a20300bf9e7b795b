package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/spendtrack/expense_tracker_app/internal/apperrors"
	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	portssvc "github.com/spendtrack/expense_tracker_app/internal/core/ports/services"
	"github.com/spendtrack/expense_tracker_app/internal/dto"
	"github.com/spendtrack/expense_tracker_app/internal/handlers"
	"github.com/spendtrack/expense_tracker_app/internal/middleware"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "et-test",
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

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleTransaction(ownerID string) *domain.Transaction {
	occurred, _ := time.Parse(dto.DateLayout, "2025-03-10")
	now := time.Now().UTC()
	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       ownerID,
		Kind:          domain.KindExpense,
		Amount:        decimal.NewFromInt(250),
		Description:   "Weekly groceries",
		Category:      "Groceries",
		OccurredOn:    occurred,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	ownerID := uuid.NewString()
	txns := []domain.Transaction{*sampleTransaction(ownerID), *sampleTransaction(ownerID)}

	suite.mockService.On("ListTransactions",
		mock.Anything,
		ownerID,
		mock.MatchedBy(func(f domain.TransactionFilter) bool { return f.IsEmpty() }),
	).Return(txns, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions", ownerID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 2)
	suite.Equal(txns[0].TransactionID, resp.Transactions[0].TransactionID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_FilterPassedThrough() {
	ownerID := uuid.NewString()

	suite.mockService.On("ListTransactions",
		mock.Anything,
		ownerID,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.Kind != nil && *f.Kind == domain.KindExpense &&
				f.Category != nil && *f.Category == "Groceries" &&
				f.DateFrom != nil && f.DateFrom.Format(dto.DateLayout) == "2025-01-01" &&
				f.DateTo != nil && f.DateTo.Format(dto.DateLayout) == "2025-12-31"
		}),
	).Return([]domain.Transaction{}, nil).Once()

	url := "/api/v1/transactions?type=expense&category=Groceries&startDate=2025-01-01&endDate=2025-12-31"
	w := suite.doRequest(http.MethodGet, url, ownerID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidKindRejected() {
	ownerID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?type=transfer", ownerID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	ownerID := uuid.NewString()
	created := sampleTransaction(ownerID)

	suite.mockService.On("CreateTransaction",
		mock.Anything,
		ownerID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Kind == domain.KindExpense && req.Description == "Weekly groceries"
		}),
	).Return(created, nil).Once()

	body := map[string]any{
		"type":        "expense",
		"amount":      "250",
		"description": "Weekly groceries",
		"category":    "Groceries",
		"date":        "2025-03-10",
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", ownerID, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.Equal(ownerID, resp.OwnerID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingKindRejected() {
	ownerID := uuid.NewString()

	body := map[string]any{
		"amount":      "100",
		"description": "No kind given",
		"category":    "Other Expense",
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", ownerID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrorFromService() {
	ownerID := uuid.NewString()

	suite.mockService.On("CreateTransaction", mock.Anything, ownerID, mock.Anything).
		Return(nil, apperrors.NewValidationError("amount", "must be greater than zero")).Once()

	body := map[string]any{
		"type":        "expense",
		"amount":      "-5",
		"description": "Negative amount",
		"category":    "Groceries",
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", ownerID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "amount")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	ownerID := uuid.NewString()
	txn := sampleTransaction(ownerID)

	suite.mockService.On("GetTransactionByID", mock.Anything, ownerID, txn.TransactionID).
		Return(txn, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+txn.TransactionID, ownerID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txn.TransactionID, resp.TransactionID)
	suite.Equal("2025-03-10", resp.OccurredOn)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	ownerID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockService.On("GetTransactionByID", mock.Anything, ownerID, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+transactionID, ownerID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_StoreFailureIsOpaque() {
	ownerID := uuid.NewString()
	transactionID := uuid.NewString()

	storeErr := fmt.Errorf("FindTransactionByID: %w: connection refused", apperrors.ErrStoreUnavailable)
	suite.mockService.On("GetTransactionByID", mock.Anything, ownerID, transactionID).
		Return(nil, storeErr).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+transactionID, ownerID, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	// driver detail must not leak to the client
	suite.NotContains(w.Body.String(), "connection refused")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_PartialBody() {
	ownerID := uuid.NewString()
	txn := sampleTransaction(ownerID)
	updatedDescription := "Corrected description"
	updated := *txn
	updated.Description = updatedDescription

	suite.mockService.On("UpdateTransaction",
		mock.Anything,
		ownerID,
		txn.TransactionID,
		mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
			return req.Description != nil && *req.Description == updatedDescription &&
				req.Kind == nil && req.Amount == nil && req.Category == nil && req.OccurredOn == nil
		}),
	).Return(&updated, nil).Once()

	body := map[string]any{"description": updatedDescription}
	w := suite.doRequest(http.MethodPut, "/api/v1/transactions/"+txn.TransactionID, ownerID, body)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(updatedDescription, resp.Description)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_OwnerFieldInBodyIgnored() {
	ownerID := uuid.NewString()
	txn := sampleTransaction(ownerID)

	// unknown JSON fields are dropped during binding; the service is still
	// called with the token's user ID
	suite.mockService.On("UpdateTransaction",
		mock.Anything,
		ownerID,
		txn.TransactionID,
		mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
			return req.Description != nil
		}),
	).Return(txn, nil).Once()

	body := map[string]any{
		"description": "Benign change",
		"ownerID":     "attacker-user-id",
		"owner":       "attacker-user-id",
	}
	w := suite.doRequest(http.MethodPut, "/api/v1/transactions/"+txn.TransactionID, ownerID, body)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(ownerID, resp.OwnerID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	ownerID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockService.On("UpdateTransaction", mock.Anything, ownerID, transactionID, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	body := map[string]any{"description": "anything"}
	w := suite.doRequest(http.MethodPut, "/api/v1/transactions/"+transactionID, ownerID, body)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	ownerID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockService.On("DeleteTransaction", mock.Anything, ownerID, transactionID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, ownerID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	ownerID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockService.On("DeleteTransaction", mock.Anything, ownerID, transactionID).
		Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, ownerID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListCategories() {
	ownerID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/categories?kind=expense", ownerID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CategoriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("expense", resp.Kind)
	suite.Contains(resp.Categories, "Groceries")
}

func (suite *TransactionHandlerTestSuite) TestListCategories_UnknownKind() {
	ownerID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/categories?kind=transfer", ownerID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
