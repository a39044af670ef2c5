package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
	orderservice "github.com/atlanticleather/storefront/internal/service/orderservice"
	"github.com/atlanticleather/storefront/pkg/auth"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withOrderID(r *http.Request, id string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func withAdmin(r *http.Request, adminID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, adminID))
}

func TestOrderHandler_Create(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{
		"customer_name": "Jane Doe",
		"customer_email": "jane@example.com",
		"customer_phone": "+15550100",
		"items": [
			{"product_id": 10, "quantity": 3},
			{"product_id": 11, "quantity": 1}
		]
	}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Valid inquiry is accepted",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&domain.Order{
					OrderNumber: "ord-1",
					TotalAmount: 350,
					Status:      domain.OrderPending,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed JSON",
			body:         `{"customer_name": `,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Empty cart fails validation",
			body:         `{"customer_name": "Jane Doe", "customer_email": "jane@example.com", "customer_phone": "+15550100", "items": []}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown product",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, orderservice.ErrProductNotFound)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/public/orders", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusCreated {
				var response dto.CreateOrderResponseDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, "ord-1", response.OrderNumber)
				assert.Equal(t, 350.0, response.TotalAmount)
				assert.Equal(t, "pending", response.Status)
			}
		})
	}
}

func TestOrderHandler_List(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Defaults applied", func(t *testing.T) {
		service.EXPECT().ListOrders(gomock.Any(), "", defaultPageSize, 0).
			Return([]domain.Order{{ID: 1, OrderNumber: "ord-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response []dto.OrderResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Len(t, response, 1)
	})

	t.Run("Unknown status", func(t *testing.T) {
		service.EXPECT().ListOrders(gomock.Any(), "shipped", defaultPageSize, 0).
			Return(nil, orderservice.ErrUnknownStatus)

		req := httptest.NewRequest(http.MethodGet, "/api/orders?status=shipped", nil)
		rec := httptest.NewRecorder()

		handler.List(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_Confirm(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Pending order confirmed",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), 1).
					Return(&domain.Order{ID: 1, Status: domain.OrderConfirmed}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing order",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), 99).Return(nil, orderservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already sold",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), 1).Return(nil, orderservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Insufficient stock",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), 1).Return(nil, orderservice.ErrInsufficientStock)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Bad id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := withOrderID(httptest.NewRequest(http.MethodPost, "/api/orders/"+tt.id+"/confirm", nil), tt.id)
			rec := httptest.NewRecorder()

			handler.Confirm(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestOrderHandler_MarkSold(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Confirmed order sold by the acting admin", func(t *testing.T) {
		service.EXPECT().MarkSold(gomock.Any(), 1, 7).
			Return(&domain.Order{ID: 1, Status: domain.OrderSold}, &domain.Transaction{ID: 5}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/1/mark-sold", nil)
		req = withAdmin(withOrderID(req, "1"), 7)
		rec := httptest.NewRecorder()

		handler.MarkSold(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.OrderResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "sold", response.Status)
	})

	t.Run("Pending order cannot be sold", func(t *testing.T) {
		service.EXPECT().MarkSold(gomock.Any(), 1, 7).Return(nil, nil, orderservice.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/1/mark-sold", nil)
		req = withAdmin(withOrderID(req, "1"), 7)
		rec := httptest.NewRecorder()

		handler.MarkSold(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderHandler_Update(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Admin notes and payment status updated", func(t *testing.T) {
		service.EXPECT().UpdateAdminFields(gomock.Any(), 1, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, req *dto.UpdateOrderRequestDTO) (*domain.Order, error) {
				assert.Equal(t, "call before shipping", *req.AdminNotes)
				assert.Equal(t, "paid", *req.PaymentStatus)
				return &domain.Order{ID: 1, AdminNotes: *req.AdminNotes, PaymentStatus: *req.PaymentStatus}, nil
			})

		body := `{"admin_notes": "call before shipping", "payment_status": "paid"}`
		req := withOrderID(httptest.NewRequest(http.MethodPut, "/api/orders/1", bytes.NewBufferString(body)), "1")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown payment status fails validation", func(t *testing.T) {
		body := `{"payment_status": "overdue"}`
		req := withOrderID(httptest.NewRequest(http.MethodPut, "/api/orders/1", bytes.NewBufferString(body)), "1")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
