package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/salesdesk/daily-report-api/internal/api/metrics"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

// sessionCookie is the cookie browsers carry; API clients send a bearer
// token instead. Both hold the same signed JWT.
const sessionCookie = "session"

const sessionContextKey = "session"

// Session is the per-request authentication state: the resolved identity
// plus the token metadata needed for logout.
type Session struct {
	User      domain.SessionUser
	TokenID   string
	ExpiresAt time.Time
}

// Auth resolves the session token, rejects the request when it is absent,
// invalid, expired, or revoked, and stores the Session in the request
// context. This is the only place authentication state enters a request.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := resolveSession(c, jwtSecret)
			if err != nil {
				metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return err
			}

			if revoker != nil && sess.TokenID != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), sess.TokenID)
				if err != nil {
					return err
				}
				if revoked {
					metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "session has been revoked")
				}
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// RequireRole allows the request through only when the authenticated
// session carries the given role. Must be mounted after Auth.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := SessionFrom(c)
			if !ok {
				metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if sess.User.Role != role {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}

// SessionFrom recovers the Session stored by Auth.
func SessionFrom(c echo.Context) (*Session, bool) {
	sess, ok := c.Get(sessionContextKey).(*Session)
	return sess, ok
}

// resolveSession extracts and verifies the session token from the
// Authorization header or the session cookie.
func resolveSession(c echo.Context, jwtSecret string) (*Session, error) {
	token := bearerToken(c)
	if token == "" {
		if cookie, err := c.Cookie(sessionCookie); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.Atoi(sub)
	if err != nil || userID <= 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	role, _ := claims["role"].(string)
	if !domain.ValidRole(role) {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	tokenID, _ := claims["jti"].(string)

	sess := &Session{
		User: domain.SessionUser{
			ID:    userID,
			Name:  name,
			Email: email,
			Role:  role,
		},
		TokenID: tokenID,
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sess.ExpiresAt = exp.Time
	}
	return sess, nil
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
