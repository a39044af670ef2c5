package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestMiddleware_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jwtService := NewMockJWTServiceInterface(ctrl)
	mw := NewMiddleware(jwtService, "public-key")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, 7, r.Context().Value(UserIDKey))
		assert.Equal(t, RoleAdmin, r.Context().Value(RoleKey))
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Valid access token",
			header: "Bearer good",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good").
					Return(&Claims{UserID: 7, Role: RoleAdmin, TokenType: AccessToken}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			header:       "",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Refresh token rejected on API calls",
			header: "Bearer refresh",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("refresh").
					Return(&Claims{UserID: 7, Role: RoleAdmin, TokenType: RefreshToken}, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestMiddleware_RequireAdmin(t *testing.T) {
	mw := NewMiddleware(nil, "public-key")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req = req.WithContext(context.WithValue(req.Context(), RoleKey, RoleAdmin))
		rec := httptest.NewRecorder()

		mw.RequireAdmin(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rec := httptest.NewRecorder()

		mw.RequireAdmin(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestMiddleware_RequireAPIKey(t *testing.T) {
	mw := NewMiddleware(nil, "public-key")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		key          string
		expectedCode int
	}{
		{"Correct key", "public-key", http.StatusOK},
		{"Wrong key", "guess", http.StatusUnauthorized},
		{"Missing key", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/public/orders", nil)
			if tt.key != "" {
				req.Header.Set("X-Api-Key", tt.key)
			}
			rec := httptest.NewRecorder()

			mw.RequireAPIKey(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
