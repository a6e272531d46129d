// Package apierrors defines the wire shape of error responses.
//
// Every error response has the envelope {"status": <code>, "errors": [...]}.
// Create-path validation failures carry plain strings in the errors list;
// patch-path failures carry structured APIError objects.
package apierrors

import (
	"encoding/json"
	"net/http"
)

// Error type and location-type tags carried on structured errors.
const (
	TypeValidation = "ch:validation"
	TypeService    = "ch:service"

	LocationTypeJSONPath = "json-path"
)

// ErrJSONProcessing is the error code returned when a patch document cannot
// be deserialized into the patchable item shape (malformed JSON or unknown field).
const ErrJSONProcessing = "json-processing-error"

// APIError is a structured error detail for patch-path responses.
type APIError struct {
	Error        string            `json:"error"`
	ErrorValues  map[string]string `json:"error_values,omitempty"`
	Location     string            `json:"location,omitempty"`
	LocationType string            `json:"location_type,omitempty"`
	Message      string            `json:"message,omitempty"`
	Type         string            `json:"type"`
}

// ErrorResponse is the envelope for all error payloads.
type ErrorResponse struct {
	Status int   `json:"status"`
	Errors []any `json:"errors"`
}

// NewValidationError returns a structured validation error with the given
// error code, json-path location, and message.
func NewValidationError(code, location, message string) APIError {
	return APIError{
		Error:        code,
		Location:     location,
		LocationType: LocationTypeJSONPath,
		Message:      message,
		Type:         TypeValidation,
	}
}

// NewJSONProcessingError returns the fixed error reported when a patch body
// cannot be read. It is mapped to the object as a whole rather than a field.
func NewJSONProcessingError() APIError {
	return APIError{
		Error:        ErrJSONProcessing,
		Location:     "object",
		LocationType: LocationTypeJSONPath,
		Message:      "failed to read the request payload",
		Type:         TypeValidation,
	}
}

// Write writes an ErrorResponse with the given status and error details.
// Details may be plain strings or APIError values.
func Write(w http.ResponseWriter, status int, errs ...any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Status: status, Errors: errs})
}

// WriteStrings writes an ErrorResponse whose details are plain strings.
// This is the create-path error shape.
func WriteStrings(w http.ResponseWriter, status int, msgs ...string) {
	errs := make([]any, len(msgs))
	for i, m := range msgs {
		errs[i] = m
	}
	Write(w, status, errs...)
}

// WriteAPIErrors writes an ErrorResponse whose details are structured
// APIErrors. This is the patch-path error shape.
func WriteAPIErrors(w http.ResponseWriter, status int, apiErrs ...APIError) {
	errs := make([]any, len(apiErrs))
	for i, e := range apiErrs {
		errs[i] = e
	}
	Write(w, status, errs...)
}
