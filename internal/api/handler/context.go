package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/daily-report-api/internal/api/middleware"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// currentSession recovers the session stored by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is
// a wiring bug and is rejected as unauthenticated.
func currentSession(c echo.Context) (*middleware.Session, error) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return sess, nil
}

func currentUser(c echo.Context) (domain.SessionUser, error) {
	sess, err := currentSession(c)
	if err != nil {
		return domain.SessionUser{}, err
	}
	return sess.User, nil
}

// pathID parses the :id path parameter. An unparseable or non-positive id
// is treated exactly like a missing record, so the caller gets the same
// 404 as for an id that never existed.
func pathID(c echo.Context, notFound error) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}
