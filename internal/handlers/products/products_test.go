package products

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
	productservice "github.com/atlanticleather/storefront/internal/service/productservice"
)

func NewMock(t *testing.T) (*ProductHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestProductHandler_CreateProduct(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Valid product",
			body: `{"name": "Leather Boots", "price": 100, "stock_quantity": 4, "colors": ["brown"]}`,
			prepareMock: func() {
				service.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
					Return(&domain.Product{ID: 10, Name: "Leather Boots", Price: 100, IsActive: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Unknown category",
			body: `{"name": "Leather Boots", "price": 100, "category_id": 99}`,
			prepareMock: func() {
				service.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
					Return(nil, productservice.ErrCategoryNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Missing name fails validation",
			body:         `{"price": 100}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative price fails validation",
			body:         `{"name": "Leather Boots", "price": -1}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.CreateProduct(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestProductHandler_ListProducts(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Query parameters forwarded", func(t *testing.T) {
		service.EXPECT().ListProducts(gomock.Any(), &dto.ProductListQueryDTO{
			CategoryID: 3,
			Search:     "boots",
			ActiveOnly: true,
			Page:       2,
			PageSize:   20,
		}).Return([]domain.Product{{ID: 10, Name: "Leather Boots"}}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/api/public/products?category=3&search=boots&active=true&page=2&page_size=20", nil)
		rec := httptest.NewRecorder()

		handler.ListProducts(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response []dto.ProductResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Len(t, response, 1)
	})

	t.Run("Oversized page size fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/public/products?page_size=10000", nil)
		rec := httptest.NewRecorder()

		handler.ListProducts(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Product returned with collections", func(t *testing.T) {
		service.EXPECT().GetProduct(gomock.Any(), 10).Return(&domain.Product{
			ID:     10,
			Name:   "Leather Boots",
			Colors: []string{"brown", "black"},
		}, nil)

		req := withID(httptest.NewRequest(http.MethodGet, "/api/public/products/10", nil), "10")
		rec := httptest.NewRecorder()

		handler.GetProduct(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.ProductResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, []string{"brown", "black"}, response.Colors)
	})

	t.Run("Missing product", func(t *testing.T) {
		service.EXPECT().GetProduct(gomock.Any(), 99).Return(nil, productservice.ErrProductNotFound)

		req := withID(httptest.NewRequest(http.MethodGet, "/api/public/products/99", nil), "99")
		rec := httptest.NewRecorder()

		handler.GetProduct(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Bad id", func(t *testing.T) {
		req := withID(httptest.NewRequest(http.MethodGet, "/api/public/products/abc", nil), "abc")
		rec := httptest.NewRecorder()

		handler.GetProduct(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().DeleteProduct(gomock.Any(), 10).Return(nil)

	req := withID(httptest.NewRequest(http.MethodDelete, "/api/products/10", nil), "10")
	rec := httptest.NewRecorder()

	handler.DeleteProduct(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_Categories(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Create category", func(t *testing.T) {
		service.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
			Return(&domain.Category{ID: 3, Name: "Footwear", Slug: "footwear"}, nil)

		body := `{"name": "Footwear", "slug": "footwear"}`
		req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		handler.CreateCategory(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Missing slug fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBufferString(`{"name": "Footwear"}`))
		rec := httptest.NewRecorder()

		handler.CreateCategory(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Delete unknown category", func(t *testing.T) {
		service.EXPECT().DeleteCategory(gomock.Any(), 99).Return(productservice.ErrCategoryNotFound)

		req := withID(httptest.NewRequest(http.MethodDelete, "/api/categories/99", nil), "99")
		rec := httptest.NewRecorder()

		handler.DeleteCategory(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
