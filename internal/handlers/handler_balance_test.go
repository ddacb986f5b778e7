package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/uc3m-money/account_management_app/internal/apperrors"
	"github.com/uc3m-money/account_management_app/internal/core/domain"
	portssvc "github.com/uc3m-money/account_management_app/internal/core/ports/services"
	"github.com/uc3m-money/account_management_app/internal/dto"
)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) CalculateBalance(ctx context.Context, iban string) (*domain.BalanceSnapshot, error) {
	args := m.Called(ctx, iban)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSnapshot), args.Error(1)
}

func (m *MockBalanceService) ListBalanceSnapshots(ctx context.Context, iban string) ([]domain.BalanceSnapshot, error) {
	args := m.Called(ctx, iban)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSnapshot), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Test Suite ---
type BalanceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBalanceService *MockBalanceService
}

func (suite *BalanceHandlerTestSuite) SetupTest() {
	suite.mockBalanceService = new(MockBalanceService)
	suite.router = newTestRouter(new(MockTransferService), new(MockDepositService), suite.mockBalanceService)
}

// --- Test Cases ---

func (suite *BalanceHandlerTestSuite) TestCalculateBalance_Success() {
	iban := "ES9121000418450200051332"
	snapshot := domain.NewBalanceSnapshot(iban, decimal.NewFromFloat(150.25),
		time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC))

	suite.mockBalanceService.On("CalculateBalance", mock.Anything, iban).Return(&snapshot, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/"+iban+"/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(iban, resp.IBAN)
	suite.Equal(150.25, resp.Balance)
	suite.Equal(snapshot.Time, resp.Time)

	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestCalculateBalance_InvalidIBAN() {
	suite.mockBalanceService.On("CalculateBalance", mock.Anything, "ES91").
		Return(nil, apperrors.ErrInvalidIBANFormat).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/ES91/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.ErrInvalidIBANFormat.Error(), errorBody(suite.T(), w.Body.Bytes()))
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestCalculateBalance_UnknownIBAN() {
	iban := "ES9121000418450200051332"
	notFound := fmt.Errorf("%w: %s", apperrors.ErrIBANNotFound, iban)
	suite.mockBalanceService.On("CalculateBalance", mock.Anything, iban).Return(nil, notFound).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/"+iban+"/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(notFound.Error(), errorBody(suite.T(), w.Body.Bytes()))
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestCalculateBalance_TransactionsLogMissing() {
	iban := "ES9121000418450200051332"
	suite.mockBalanceService.On("CalculateBalance", mock.Anything, iban).
		Return(nil, apperrors.ErrMissingInput).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/"+iban+"/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	// A missing transactions log is a deployment fault, not client error.
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Transactions log unavailable", errorBody(suite.T(), w.Body.Bytes()))
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestCalculateBalance_InternalError() {
	iban := "ES9121000418450200051332"
	suite.mockBalanceService.On("CalculateBalance", mock.Anything, iban).
		Return(nil, assert.AnError).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/"+iban+"/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to compute balance", errorBody(suite.T(), w.Body.Bytes()))
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestListBalances_Success() {
	iban := "ES9121000418450200051332"
	now := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
	snapshots := []domain.BalanceSnapshot{
		domain.NewBalanceSnapshot(iban, decimal.NewFromInt(100), now.Add(-1*time.Hour)),
		domain.NewBalanceSnapshot(iban, decimal.NewFromFloat(150.25), now),
	}
	suite.mockBalanceService.On("ListBalanceSnapshots", mock.Anything, iban).Return(snapshots, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/"+iban+"/balances", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListBalancesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Balances, 2)
	suite.Equal(100.0, resp.Balances[0].Balance)
	suite.Equal(150.25, resp.Balances[1].Balance)
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestListBalances_InvalidIBAN() {
	suite.mockBalanceService.On("ListBalanceSnapshots", mock.Anything, "ES91").
		Return(nil, apperrors.ErrInvalidIBANFormat).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/ES91/balances", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestListBalances_Error() {
	iban := "ES9121000418450200051332"
	suite.mockBalanceService.On("ListBalanceSnapshots", mock.Anything, iban).
		Return(nil, assert.AnError).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/"+iban+"/balances", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list balances", errorBody(suite.T(), w.Body.Bytes()))
	suite.mockBalanceService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestBalanceHandler(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}
