package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pepshop/pepshop-api/internal/api/shared"
	"github.com/pepshop/pepshop-api/internal/service"
	"github.com/pepshop/pepshop-api/internal/service/auth"
)

// AuthHandler handles the /auth endpoints.
type AuthHandler struct {
	service   *service.AuthService
	validator *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given service.
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Login handles POST /auth/login. Missing or malformed credentials are a
// 400; bad credentials are a 401 with the failure reason as free text.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, loginValidationMessage(err))
		return
	}

	token, claims, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrIncorrectPassword) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, err.Error())
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		User:    claims,
	})
}

// loginValidationMessage distinguishes absent credentials from a present
// but malformed email address.
func loginValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				return "email and password are required"
			}
		}
		return "invalid email format"
	}
	return "email and password are required"
}
