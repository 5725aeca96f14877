package namerapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/namer/pkg/binder"
	"github.com/dmitrymomot/namer/pkg/namer"
	"github.com/dmitrymomot/namer/pkg/validator"
)

// Error codes returned in the envelope.
const (
	CodeInvalidRequest    = "invalid_request"
	CodeNoMatch           = "no_match"
	CodeSourceUnavailable = "source_unavailable"
	CodeInternal          = "internal_error"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Fields holds per-parameter messages for failed validation.
	Fields map[string][]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// errorStatus classifies err into an HTTP status and envelope code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, binder.ErrInvalidQuery),
		validator.IsValidationError(err),
		errors.Is(err, namer.ErrInvalidGender):
		return http.StatusBadRequest, CodeInvalidRequest
	case errors.Is(err, namer.ErrNoMatch):
		return http.StatusNotFound, CodeNoMatch
	case errors.Is(err, namer.ErrSourceUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, CodeSourceUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// fieldErrors groups validation messages by parameter name.
func fieldErrors(err error) map[string][]string {
	ve := validator.ExtractValidationErrors(err)
	if len(ve) == 0 {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, f := range ve.Fields() {
		out[f] = ve.Get(f)
	}
	return out
}
