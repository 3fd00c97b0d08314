package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Internal Server Error"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgAuthExchangeError   = "Failed to get access token."
	ErrMsgProfileFetchError   = "Failed to fetch user profile."
	ErrMsgInvalidTokenError   = "Unauthorized: Invalid token"
	ErrMsgMissingTokenError   = "Unauthorized: No token provided"
	ErrMsgNothingToUnlinkErr  = "No linked Roblox account to unlink."
	ErrMsgNoProductsError     = "No products found in the database"
	ErrMsgInvalidPlatformErr  = "Invalid platform"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses so internal detail never leaks to clients.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrUpstreamAuth):
		return http.StatusInternalServerError, ErrMsgAuthExchangeError
	case errors.Is(err, domain.ErrProfileUnavailable):
		return http.StatusInternalServerError, ErrMsgProfileFetchError
	case errors.Is(err, domain.ErrMissingCredential):
		return http.StatusUnauthorized, ErrMsgMissingTokenError
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized, ErrMsgInvalidTokenError
	case errors.Is(err, domain.ErrNothingToUnlink):
		return http.StatusBadRequest, ErrMsgNothingToUnlinkErr
	case errors.Is(err, domain.ErrProductsNotFound):
		return http.StatusNotFound, ErrMsgNoProductsError
	case errors.Is(err, domain.ErrInvalidPlatform):
		return http.StatusBadRequest, ErrMsgInvalidPlatformErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Service call failed", "op", opName, "error", err)
	status, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, status, userMsg)
}
