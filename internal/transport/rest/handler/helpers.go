package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"chatfuture/internal/catalog"
	"chatfuture/internal/service"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 64 * 1024

// validate is shared by all request bodies
var validate = validator.New()

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// decodeBody reads a JSON body into v and runs its validate tags
func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// statusFor maps service errors onto HTTP status and a stable code
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		return http.StatusNotFound, "no_active_session"
	case errors.Is(err, service.ErrInvalidAnswer):
		return http.StatusBadRequest, "invalid_answer"
	case errors.Is(err, service.ErrInvalidProfile):
		return http.StatusBadRequest, "invalid_basic_info"
	case errors.Is(err, service.ErrScoringPrecondition):
		return http.StatusUnprocessableEntity, "no_answers"
	case errors.Is(err, service.ErrNoResult):
		return http.StatusNotFound, "no_result"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token"
	case errors.Is(err, catalog.ErrUnknownInstrument):
		return http.StatusNotFound, "unknown_instrument"
	case errors.Is(err, service.ErrPersistenceUnavailable):
		return http.StatusServiceUnavailable, "persistence_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	writeError(w, status, code, message)
}
