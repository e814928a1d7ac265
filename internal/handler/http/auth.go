package http

import (
	"net/http"

	"github.com/2bleO/CoolStff.com/internal/service"
	"github.com/2bleO/CoolStff.com/pkg/httputil"
	"github.com/2bleO/CoolStff.com/pkg/validator"
)

// AuthHandler serves registration, login, and token refresh.
type AuthHandler struct {
	users *service.UserService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=100"`
	Password    string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	result, err := h.users.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to register")
		return
	}
	httputil.WriteData(w, http.StatusCreated, result)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	result, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to log in")
		return
	}
	httputil.WriteData(w, http.StatusOK, result)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, r, err)
		return
	}

	result, err := h.users.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		httputil.WriteError(w, r, err, "failed to refresh token")
		return
	}
	httputil.WriteData(w, http.StatusOK, result)
}
