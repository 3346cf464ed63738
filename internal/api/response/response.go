// Package response owns the canonical JSON envelopes shared by every
// endpoint: {"data": ...} for success, {"data": [...], "meta": {...}} for
// lists, and {"error": {"code", "message", "details"?}} for failures.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Machine-readable error codes with their fixed status mapping.
const (
	CodeUnauthorized      = "UNAUTHORIZED"              // 401
	CodeForbidden         = "FORBIDDEN"                 // 403
	CodeNotFound          = "NOT_FOUND"                 // 404
	CodeValidationError   = "VALIDATION_ERROR"          // 400
	CodeConflict          = "CONFLICT"                  // 409
	CodeInvalidTransition = "INVALID_STATUS_TRANSITION" // 422
	CodeInternal          = "INTERNAL_ERROR"            // 500
)

// Meta describes one page of a list response.
type Meta struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// FieldError is a single failed constraint, addressed by the dotted json
// path of the offending field (e.g. "visit_records.0.content").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

type listEnvelope struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

type errorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// Data writes a single-resource success envelope.
func Data(c echo.Context, status int, data any) error {
	return c.JSON(status, dataEnvelope{Data: data})
}

// List writes a paginated list envelope.
func List(c echo.Context, data any, meta Meta) error {
	return c.JSON(http.StatusOK, listEnvelope{Data: data, Meta: meta})
}

// Error writes the canonical error envelope.
func Error(c echo.Context, status int, code, message string, details []FieldError) error {
	return c.JSON(status, errorEnvelope{Error: errorBody{Code: code, Message: message, Details: details}})
}

// ValidationError carries structured per-field failures from input
// validation to the central error handler.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Details[0].Field + " " + e.Details[0].Message
}
