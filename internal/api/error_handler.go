package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/salesdesk/daily-report-api/internal/api/metrics"
	"github.com/salesdesk/daily-report-api/internal/api/response"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their canonical code + HTTP status.
//   - Renders structured validation failures with field-level details.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg, details := resolveError(err, log, c)
		_ = response.Error(c, status, code, msg, details)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string, []response.FieldError) {
	// Structured validation failures carry per-field details.
	var ve *response.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, response.CodeValidationError, "validation failed", ve.Details
	}

	// Echo's own errors: bind failures, router 404/405, and the auth
	// middleware's echo.NewHTTPError results.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprintf("%v", he.Message)
		switch he.Code {
		case http.StatusUnauthorized:
			return he.Code, response.CodeUnauthorized, msg, nil
		case http.StatusForbidden:
			return he.Code, response.CodeForbidden, msg, nil
		case http.StatusNotFound:
			return he.Code, response.CodeNotFound, msg, nil
		case http.StatusBadRequest:
			// Malformed JSON is a validation failure against the
			// expected shape, not a separate transport error.
			return he.Code, response.CodeValidationError, msg, nil
		default:
			return he.Code, response.CodeInternal, msg, nil
		}
	}

	// Known domain errors have deterministic codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, response.CodeUnauthorized, "invalid credentials", nil
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, response.CodeForbidden, "insufficient permissions", nil
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, response.CodeNotFound, "user not found", nil
	case errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound, response.CodeNotFound, "report not found", nil
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, response.CodeNotFound, "customer not found", nil
	case errors.Is(err, domain.ErrEmailTaken):
		metrics.WriteConflictsTotal.WithLabelValues("user").Inc()
		return http.StatusConflict, response.CodeConflict, "email already in use", nil
	case errors.Is(err, domain.ErrDuplicateReport):
		metrics.WriteConflictsTotal.WithLabelValues("report").Inc()
		return http.StatusConflict, response.CodeConflict, "a report already exists for this date", nil
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, response.CodeInvalidTransition, err.Error(), nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, response.CodeInternal, "internal server error", nil
}
