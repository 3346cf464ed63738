package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

const testSecret = "test-secret"

type revokerStub struct {
	revoked map[string]bool
}

func (r *revokerStub) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if r.revoked == nil {
		r.revoked = map[string]bool{}
	}
	r.revoked[tokenID] = true
	return nil
}

func (r *revokerStub) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return r.revoked[tokenID], nil
}

func signTestToken(t *testing.T, secret string, overrides jwt.MapClaims) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "7",
		"name":  "山田 太郎",
		"email": "yamada@example.com",
		"role":  domain.RoleSales,
		"jti":   "tok-1",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	for k, v := range overrides {
		claims[k] = v
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func newAuthContext(header, cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMissingToken(t *testing.T) {
	c, _ := newAuthContext("", "")

	err := Auth(testSecret, &revokerStub{})(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	c, _ := newAuthContext("Bearer not-a-token", "")

	err := Auth(testSecret, &revokerStub{})(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthWrongSecret(t *testing.T) {
	token := signTestToken(t, "other-secret", nil)
	c, _ := newAuthContext("Bearer "+token, "")

	err := Auth(testSecret, &revokerStub{})(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	token := signTestToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
	c, _ := newAuthContext("Bearer "+token, "")

	err := Auth(testSecret, &revokerStub{})(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthValidBearer(t *testing.T) {
	token := signTestToken(t, testSecret, nil)
	c, _ := newAuthContext("Bearer "+token, "")

	called := false
	err := Auth(testSecret, &revokerStub{})(func(c echo.Context) error {
		called = true
		sess, ok := SessionFrom(c)
		if !ok {
			t.Fatal("session not stored in context")
		}
		if sess.User.ID != 7 {
			t.Fatalf("expected user id 7, got %d", sess.User.ID)
		}
		if sess.User.Role != domain.RoleSales {
			t.Fatalf("expected role sales, got %q", sess.User.Role)
		}
		if sess.TokenID != "tok-1" {
			t.Fatalf("expected token id tok-1, got %q", sess.TokenID)
		}
		if sess.ExpiresAt.IsZero() {
			t.Fatal("expected expiry to be set")
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("handler was not called")
	}
}

func TestAuthSessionCookie(t *testing.T) {
	token := signTestToken(t, testSecret, nil)
	c, _ := newAuthContext("", token)

	called := false
	err := Auth(testSecret, &revokerStub{})(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("handler was not called")
	}
}

func TestAuthRevokedToken(t *testing.T) {
	token := signTestToken(t, testSecret, nil)
	c, _ := newAuthContext("Bearer "+token, "")

	revoker := &revokerStub{revoked: map[string]bool{"tok-1": true}}
	err := Auth(testSecret, revoker)(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthRejectsInvalidRole(t *testing.T) {
	token := signTestToken(t, testSecret, jwt.MapClaims{"role": "admin"})
	c, _ := newAuthContext("Bearer "+token, "")

	err := Auth(testSecret, &revokerStub{})(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		required string
		wantCode int
	}{
		{"manager passes manager gate", domain.RoleManager, domain.RoleManager, 0},
		{"sales blocked by manager gate", domain.RoleSales, domain.RoleManager, http.StatusForbidden},
		{"manager blocked by sales gate", domain.RoleManager, domain.RoleSales, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthContext("", "")
			c.Set("session", &Session{User: domain.SessionUser{ID: 1, Role: tt.role}})

			err := RequireRole(tt.required)(func(c echo.Context) error { return nil })(c)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != tt.wantCode {
				t.Fatalf("expected %d, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestRequireRoleWithoutSession(t *testing.T) {
	c, _ := newAuthContext("", "")

	err := RequireRole(domain.RoleManager)(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
