package middleware

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New(apperror.CodeUnauthorized, "Token expired", http.StatusUnauthorized)
	ErrInvalidClaims = apperror.New(apperror.CodeUnauthorized, "Invalid token claims", http.StatusUnauthorized)
	ErrAdminRequired = apperror.New(apperror.CodeForbidden, "Admin role required", http.StatusForbidden)

	ErrTooManyRequests    = apperror.New(apperror.CodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)
	ErrIdempotencyPending = apperror.New(
		apperror.CodeConflict,
		"A request with this Idempotency-Key is already being processed",
		http.StatusConflict,
	)
)

// ErrConfirmationRequired reports a missing ?name=value confirmation.
func ErrConfirmationRequired(name, value string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		"Confirmation required: add ?"+name+"="+value,
		http.StatusBadRequest,
	)
}
