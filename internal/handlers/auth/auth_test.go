package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
	authservice "github.com/atlanticleather/storefront/internal/service/authservice"
	pkgauth "github.com/atlanticleather/storefront/pkg/auth"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestAuthHandler_Register(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "New account",
			body: `{"login": "owner", "password": "secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "owner", "secret123").
					Return(&domain.User{ID: 1, Login: "owner"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Taken login",
			body: `{"login": "owner", "password": "secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "owner", "secret123").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Missing password",
			body:         `{"login": "owner"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed JSON",
			body:         `{"login": `,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Register(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Valid credentials return a token pair", func(t *testing.T) {
		service.EXPECT().Login(gomock.Any(), "owner", "secret123").
			Return(&authservice.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			bytes.NewBufferString(`{"login": "owner", "password": "secret123"}`))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.TokenPairResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "access", response.AccessToken)
		assert.Equal(t, "refresh", response.RefreshToken)
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		service.EXPECT().Login(gomock.Any(), "owner", "wrong1234").
			Return(nil, authservice.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			bytes.NewBufferString(`{"login": "owner", "password": "wrong1234"}`))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Valid refresh token", func(t *testing.T) {
		service.EXPECT().Refresh(gomock.Any(), "refresh").
			Return(&authservice.TokenPair{AccessToken: "access2", RefreshToken: "refresh2"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh",
			bytes.NewBufferString(`{"refresh_token": "refresh"}`))
		rec := httptest.NewRecorder()

		handler.Refresh(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rejected token", func(t *testing.T) {
		service.EXPECT().Refresh(gomock.Any(), "stale").
			Return(nil, errors.New("invalid token"))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh",
			bytes.NewBufferString(`{"refresh_token": "stale"}`))
		rec := httptest.NewRecorder()

		handler.Refresh(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	handler, service := NewMock(t)

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPut, "/api/admin/change-password", bytes.NewBufferString(body))
		return req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, 7))
	}

	t.Run("Password changed", func(t *testing.T) {
		service.EXPECT().ChangePassword(gomock.Any(), 7, "oldpass12", "newpass12").Return(nil)

		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, newRequest(`{"old_password": "oldpass12", "new_password": "newpass12"}`))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Wrong old password", func(t *testing.T) {
		service.EXPECT().ChangePassword(gomock.Any(), 7, "wrongpass", "newpass12").
			Return(authservice.ErrInvalidCredentials)

		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, newRequest(`{"old_password": "wrongpass", "new_password": "newpass12"}`))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
