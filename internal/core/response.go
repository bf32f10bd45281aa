// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the body shape of every API response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
}

func JSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(body)
}

func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func Created(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusCreated, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func WithToken(w http.ResponseWriter, message, token string, data any) {
	JSON(w, http.StatusOK, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
		Token:   token,
	})
}

func JSONError(w http.ResponseWriter, err error) {
	status, message := resolveError(err)
	JSON(w, status, Envelope{
		Status:  StatusError,
		Message: message,
	})
}

// HandleError is the single error sink for handlers. Unexpected errors are
// logged with their cause and answered with a generic 500.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := resolveError(err)
	if status >= http.StatusInternalServerError {
		SetSpanError(r.Context(), err)
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}

	JSON(w, status, Envelope{
		Status:  StatusError,
		Message: message,
	})
}

func resolveError(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.Message
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, FormatValidationError(verrs)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23" {
		return http.StatusBadRequest, pgErr.Message
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad request"
	case errors.Is(err, ErrDuplicateKey):
		return http.StatusBadRequest, "resource already exists"
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenRevoked):
		return http.StatusUnauthorized, "authentication failed"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "insufficient permissions"
	case errors.Is(err, ErrSendingEmail):
		return http.StatusBadRequest, "email could not be sent"
	}

	return http.StatusInternalServerError, "internal server error"
}
