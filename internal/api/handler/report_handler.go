package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/daily-report-api/internal/api/metrics"
	"github.com/salesdesk/daily-report-api/internal/api/response"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

// ReportHandler handles HTTP requests for daily report operations.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// List handles GET /reports.
//
// Sales callers always receive their own reports only; managers see all
// reports and may filter by owner with user_id.
func (h *ReportHandler) List(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	in, err := parseReportListQuery(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), caller, in)
	if err != nil {
		return err
	}

	return response.List(c, toReportListResponse(result.Items), response.Meta{
		Total:   result.Total,
		Page:    in.Page.Page,
		PerPage: in.Page.PerPage,
	})
}

// Create handles POST /reports. Sales only; at most one report per caller
// per date.
func (h *ReportHandler) Create(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.service.Create(c.Request().Context(), caller, toReportInput(req))
	if err != nil {
		return err
	}

	metrics.ReportsCreatedTotal.Inc()
	return response.Data(c, http.StatusCreated, toReportResponse(report))
}

// Get handles GET /reports/:id.
func (h *ReportHandler) Get(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domain.ErrReportNotFound)
	if err != nil {
		return err
	}

	report, err := h.service.Get(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.Data(c, http.StatusOK, toReportResponse(report))
}

// Update handles PUT /reports/:id. Owner only.
func (h *ReportHandler) Update(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domain.ErrReportNotFound)
	if err != nil {
		return err
	}

	var req updateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.service.Update(c.Request().Context(), caller, id, toReportInput(req))
	if err != nil {
		return err
	}

	return response.Data(c, http.StatusOK, toReportResponse(report))
}

// Delete handles DELETE /reports/:id. Owner only; visit records cascade.
func (h *ReportHandler) Delete(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, domain.ErrReportNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
