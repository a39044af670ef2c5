package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atlanticleather/storefront/internal/domain"
	"github.com/atlanticleather/storefront/internal/dto"
	authservice "github.com/atlanticleather/storefront/internal/service/authservice"
	pkgauth "github.com/atlanticleather/storefront/pkg/auth"
	"github.com/atlanticleather/storefront/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, login, password string) (*domain.User, error)
	Login(ctx context.Context, login, password string) (*authservice.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*authservice.TokenPair, error)
	ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary	Register a new admin account
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		dto.RegisterRequestDTO	true	"Login and password"
//	@Success	201			{object}	utils.Response
//	@Failure	400			{object}	utils.Response	"Invalid payload"
//	@Failure	409			{object}	utils.Response	"Login already taken"
//	@Router		/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.authService.Register(r.Context(), req.Login, req.Password); err != nil {
		if errors.Is(err, authservice.ErrLoginTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "registered"})
}

// Login godoc
//
//	@Summary	Authenticate and receive a token pair
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		dto.LoginRequestDTO	true	"Login and password"
//	@Success	200			{object}	dto.TokenPairResponseDTO
//	@Failure	401			{object}	utils.Response	"Invalid credentials"
//	@Router		/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenPairResponseDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenPairResponseDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// ChangePassword godoc
//
//	@Summary	Change the acting admin's password
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		passwords	body	dto.ChangePasswordRequestDTO	true	"Old and new password"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	401	{object}	utils.Response	"Wrong old password"
//	@Router		/api/admin/change-password [put]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "password changed"})
}
