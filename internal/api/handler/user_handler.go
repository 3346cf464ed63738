package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/daily-report-api/internal/api/response"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account management. Every route is
// mounted behind the manager role gate.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /master/users.
func (h *UserHandler) List(c echo.Context) error {
	page, err := parseListPage(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return response.List(c, toUserListResponse(result.Items), response.Meta{
		Total:   result.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
	})
}

// Create handles POST /master/users. A duplicate email yields 409.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		return err
	}

	return response.Data(c, http.StatusCreated, toUserResponse(user))
}

// Get handles GET /master/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Data(c, http.StatusOK, toUserResponse(user))
}

// Update handles PUT /master/users/:id. An email change is re-checked for
// uniqueness.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		return err
	}

	return response.Data(c, http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /master/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
