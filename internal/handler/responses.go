package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/editorbox/EditorBox_Go/internal/domain"
	"github.com/editorbox/EditorBox_Go/internal/logger"
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

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log.
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

// respondServiceError logs a failed service call and maps the error to a
// user-facing response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Service call failed", "operation", opName, "error", err)
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNoteNotFoundError    = "Note not found"
	ErrMsgEmptyBodyError       = "Note body cannot be empty"
	ErrMsgThemeNotFoundError   = "Theme not found"
	ErrMsgThemeNotOwnedError   = "You don't own that theme"
	ErrMsgNotPurchasableError  = "That theme cannot be bought with coins"
	ErrMsgSubscriptionRequired = "That theme requires an active subscription"
	ErrMsgNotEnoughCoinsError  = "Not enough coins"
	ErrMsgRewardAlreadyClaimed = "Daily reward already claimed today"
	ErrMsgInvalidAmountError   = "Amount must be positive"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses without leaking internals.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoteNotFound):
		return http.StatusNotFound, ErrMsgNoteNotFoundError
	case errors.Is(err, domain.ErrEmptyBody):
		return http.StatusBadRequest, ErrMsgEmptyBodyError
	case errors.Is(err, domain.ErrThemeNotFound):
		return http.StatusNotFound, ErrMsgThemeNotFoundError
	case errors.Is(err, domain.ErrThemeNotOwned):
		return http.StatusBadRequest, ErrMsgThemeNotOwnedError
	case errors.Is(err, domain.ErrThemeNotPurchasable):
		return http.StatusBadRequest, ErrMsgNotPurchasableError
	case errors.Is(err, domain.ErrSubscriptionRequired):
		return http.StatusForbidden, ErrMsgSubscriptionRequired
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrRewardAlreadyClaimed):
		return http.StatusConflict, ErrMsgRewardAlreadyClaimed
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
