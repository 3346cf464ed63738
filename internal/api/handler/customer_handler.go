package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/daily-report-api/internal/api/response"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer master data. Reads
// require authentication; writes are mounted behind the manager role gate.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /master/customers with q/industry filters.
func (h *CustomerHandler) List(c echo.Context) error {
	in, err := parseCustomerListQuery(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return response.List(c, toCustomerListResponse(result.Items), response.Meta{
		Total:   result.Total,
		Page:    in.Page.Page,
		PerPage: in.Page.PerPage,
	})
}

// Create handles POST /master/customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Create(c.Request().Context(), toCustomerInput(req))
	if err != nil {
		return err
	}

	return response.Data(c, http.StatusCreated, toCustomerResponse(customer))
}

// Get handles GET /master/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrCustomerNotFound)
	if err != nil {
		return err
	}

	customer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Data(c, http.StatusOK, toCustomerResponse(customer))
}

// Update handles PUT /master/customers/:id.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrCustomerNotFound)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Update(c.Request().Context(), id, toCustomerInput(req))
	if err != nil {
		return err
	}

	return response.Data(c, http.StatusOK, toCustomerResponse(customer))
}

// Delete handles DELETE /master/customers/:id.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrCustomerNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
