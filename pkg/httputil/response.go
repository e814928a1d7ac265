package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/2bleO/CoolStff.com/pkg/errors"
	"github.com/2bleO/CoolStff.com/pkg/logger"
	"github.com/2bleO/CoolStff.com/pkg/validator"
	"github.com/google/uuid"
)

// Response is the standard envelope for successful responses.
type Response struct {
	Data any `json:"data,omitempty"`
}

// ErrorResponse is the standard envelope for error responses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable error information.
type ErrorDetail struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful response wrapped in the standard envelope.
func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Response{Data: data})
}

// WriteError maps an error to the standard error envelope. Application
// errors carry their own status and code; anything else becomes a 500
// with the fallback message and is logged.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	requestID := logger.CorrelationIDFromContext(r.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		detail := ErrorDetail{
			Code:      appErr.Code,
			Message:   appErr.Message,
			RequestID: requestID,
		}
		if appErr.Status >= http.StatusInternalServerError {
			logger.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
				slog.String("error", err.Error()),
				slog.Int("status", appErr.Status),
			)
		}
		WriteJSON(w, appErr.Status, ErrorResponse{Error: detail})
		return
	}

	logger.FromContext(r.Context()).ErrorContext(r.Context(), "unhandled error",
		slog.String("error", err.Error()),
	)
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
		Code:      "INTERNAL_ERROR",
		Message:   fallback,
		RequestID: requestID,
	}})
}

// WriteValidationError writes a 400 response with per-field messages.
func WriteValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
			Code:      "VALIDATION_FAILED",
			Message:   "request validation failed",
			Fields:    valErr.Fields(),
			RequestID: logger.CorrelationIDFromContext(r.Context()),
		}})
		return
	}
	WriteError(w, r, apperrors.InvalidInput(err.Error()), "invalid request")
}

// ParseUUID validates that the given string is a well-formed UUID and
// returns it, or an invalid-input error naming the parameter.
func ParseUUID(value, param string) (string, error) {
	if _, err := uuid.Parse(value); err != nil {
		return "", apperrors.InvalidInput("invalid " + param)
	}
	return value, nil
}
