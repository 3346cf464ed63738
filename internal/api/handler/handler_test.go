package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/salesdesk/daily-report-api/internal/api"
	"github.com/salesdesk/daily-report-api/internal/api/handler"
	"github.com/salesdesk/daily-report-api/internal/api/middleware"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// newTestEcho builds an Echo instance with the production validator and
// error handler so tests observe the real wire envelopes.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}

func withSession(user domain.SessionUser) func(echo.Context) {
	return func(c echo.Context) {
		c.Set("session", &middleware.Session{
			User:      user,
			TokenID:   "tok-test",
			ExpiresAt: time.Now().Add(time.Hour),
		})
	}
}

func withParam(name, value string) func(echo.Context) {
	return func(c echo.Context) {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}
}

// doRequest runs the handler through the production error handler and
// returns the recorded response.
func doRequest(t *testing.T, h echo.HandlerFunc, req *http.Request, opts ...func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for _, opt := range opts {
		opt(c)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	decodeJSON(t, rec, &env)
	return env
}

// hasDetail reports whether the error envelope carries a failure for the
// given field path.
func hasDetail(env errorEnvelope, field string) bool {
	for _, d := range env.Error.Details {
		if d.Field == field {
			return true
		}
	}
	return false
}
