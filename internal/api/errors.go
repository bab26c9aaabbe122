package api

import (
	"errors"
	"net/http"

	"github.com/pepshop/pepshop-api/internal/api/shared"
	"github.com/pepshop/pepshop-api/internal/domain"
	"github.com/pepshop/pepshop-api/internal/service/auth"
	"github.com/pepshop/pepshop-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Anything unclassified becomes a 500 so internal error types never leak.
func MapErrorToStatusCode(err error) int {
	switch {
	// Credential and token failures.
	case errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, auth.ErrIncorrectPassword),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	// Client input errors.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Persistence conflicts: duplicates and blocked deletes.
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInUse):
		return http.StatusConflict

	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the sanitized message exposed to the caller.
// Validation and credential errors already carry human-readable text;
// everything else maps to a fixed phrase.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "an unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	switch {
	case errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, auth.ErrIncorrectPassword):
		return err.Error()

	case errors.Is(err, auth.ErrExpiredToken):
		return "token expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return "invalid token"

	case errors.Is(err, store.ErrProductNotFound):
		return "product not found"
	case errors.Is(err, store.ErrClientNotFound):
		return "client not found"
	case errors.Is(err, store.ErrPetNotFound):
		return "pet not found"
	case errors.Is(err, store.ErrAppointmentNotFound):
		return "appointment not found"
	case errors.Is(err, store.ErrOrderNotFound):
		return "order not found"
	case errors.Is(err, store.ErrNotFound):
		return "not found"

	case errors.Is(err, store.ErrEmailExists):
		return "email already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "value already exists"

	case errors.Is(err, store.ErrInvalidReference):
		return "referenced client does not exist"
	case errors.Is(err, store.ErrInUse):
		return "record has related data and cannot be deleted"

	case errors.Is(err, store.ErrUnavailable):
		return "database connection error, try again later"

	default:
		return "internal server error"
	}
}

// HandleServiceError classifies a service-layer error and writes the
// response. The full error is logged server-side; only the sanitized
// message is returned.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
