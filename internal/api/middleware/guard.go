package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/daily-report-api/internal/api/metrics"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

const (
	loginPath   = "/login"
	landingPath = "/reports"
)

// Guard is the edge routing policy for browser navigations, applied before
// any handler. It only ever decides pass-or-redirect; JSON API requests
// always pass through so the access gate can answer in the error envelope.
//
// Decision table, in priority order:
//  1. /auth/* routes pass unconditionally.
//  2. The login page redirects authenticated users to the landing page.
//  3. An unauthenticated navigation redirects to the login page.
//  4. A sales-role navigation into user management redirects to the
//     landing page.
//  5. Everything else passes.
func Guard(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var role string
			hasSession := false
			if sess, err := resolveSession(c, jwtSecret); err == nil {
				// A revoked token is no session here, same as in Auth:
				// after logout the browser must reach the login page
				// again instead of being bounced off it.
				alive := true
				if revoker != nil && sess.TokenID != "" {
					revoked, err := revoker.IsRevoked(c.Request().Context(), sess.TokenID)
					if err != nil || revoked {
						alive = false
					}
				}
				if alive {
					hasSession = true
					role = sess.User.Role
				}
			}

			target := GuardDecision(c.Request().URL.Path, isNavigation(c.Request()), hasSession, role)
			if target == "" {
				return next(c)
			}
			metrics.GuardRedirectsTotal.WithLabelValues(target).Inc()
			return c.Redirect(http.StatusFound, target)
		}
	}
}

// GuardDecision is the pure routing policy: it returns the redirect target,
// or "" to pass the request through. No side effects.
func GuardDecision(path string, navigation, hasSession bool, role string) string {
	if strings.HasPrefix(path, "/auth/") {
		return ""
	}

	if path == loginPath {
		if hasSession {
			return landingPath
		}
		return ""
	}

	// Only browser navigations are redirected; API requests fall through
	// to the access gate, which answers 401/403 in the error envelope.
	if !navigation {
		return ""
	}

	if !hasSession {
		return loginPath
	}

	if role == domain.RoleSales && strings.HasPrefix(path, "/master/users") {
		return landingPath
	}

	return ""
}

// isNavigation reports whether the request is a browser page load rather
// than an API call.
func isNavigation(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}
