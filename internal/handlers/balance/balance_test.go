package balance

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
	balanceservice "github.com/atlanticleather/storefront/internal/service/balanceservice"
	"github.com/atlanticleather/storefront/pkg/auth"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withAdmin(r *http.Request, adminID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, adminID))
}

func TestBalanceHandler_GetBalance(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetBalance(gomock.Any(), 7).Return(&domain.Balance{
		CurrentBalance: 410,
		TotalEarned:    450,
		TotalWithdrawn: 40,
	}, nil)

	req := withAdmin(httptest.NewRequest(http.MethodGet, "/api/balance", nil), 7)
	rec := httptest.NewRecorder()

	handler.GetBalance(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.BalanceResponseDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 410.0, response.Current)
	assert.Equal(t, 450.0, response.Earned)
	assert.Equal(t, 40.0, response.Withdrawn)
}

func TestBalanceHandler_Withdraw(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Valid withdrawal",
			body: `{"amount": 40}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 7, 40.0).Return(&domain.Transaction{
					ID:            5,
					Type:          domain.TransactionWithdrawal,
					Amount:        -40,
					BalanceBefore: 450,
					BalanceAfter:  410,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"amount": 500}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 7, 500.0).
					Return(nil, balanceservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Zero amount fails validation",
			body:         `{"amount": 0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed JSON",
			body:         `{"amount": `,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := withAdmin(httptest.NewRequest(http.MethodPost, "/api/balance/withdraw", bytes.NewBufferString(tt.body)), 7)
			rec := httptest.NewRecorder()

			handler.Withdraw(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var response dto.TransactionResponseDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, -40.0, response.Amount)
				assert.Equal(t, 410.0, response.BalanceAfter)
			}
		})
	}
}

func TestBalanceHandler_ListTransactions(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListTransactions(gomock.Any(), 7, 0).Return([]domain.Transaction{
		{ID: 2, Type: domain.TransactionWithdrawal, Amount: -40},
		{ID: 1, Type: domain.TransactionSale, Amount: 350},
	}, nil)

	req := withAdmin(httptest.NewRequest(http.MethodGet, "/api/transactions", nil), 7)
	rec := httptest.NewRecorder()

	handler.ListTransactions(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response []dto.TransactionResponseDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	assert.Equal(t, domain.TransactionWithdrawal, response[0].Type)
}
