package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/daily-report-api/internal/api/response"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

// Pagination defaults. per_page above the cap is clamped, not rejected.
const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

const dateLayout = "2006-01-02"

// parsePage reads page/per_page with documented coercion only: defaults
// applied when absent, per_page clamped to the cap. Non-integer or
// non-positive values are validation failures, not silently corrected.
func parsePage(c echo.Context, details *[]response.FieldError) ports.Page {
	page := parsePositiveInt(c, "page", defaultPage, details)
	perPage := parsePositiveInt(c, "per_page", defaultPerPage, details)
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return ports.Page{Page: page, PerPage: perPage}
}

func parsePositiveInt(c echo.Context, name string, def int, details *[]response.FieldError) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		*details = append(*details, response.FieldError{Field: name, Message: "must be a positive integer"})
		return def
	}
	return n
}

func parseDateParam(c echo.Context, name string, details *[]response.FieldError) *time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		*details = append(*details, response.FieldError{Field: name, Message: "must be a date in YYYY-MM-DD format"})
		return nil
	}
	return &t
}

// parseReportListQuery validates the report list query and returns either
// the parsed input or a structured validation error.
func parseReportListQuery(c echo.Context) (ports.ListReportsInput, error) {
	var details []response.FieldError
	in := ports.ListReportsInput{
		DateFrom: parseDateParam(c, "date_from", &details),
		DateTo:   parseDateParam(c, "date_to", &details),
	}

	if status := c.QueryParam("status"); status != "" {
		if !domain.ValidReportStatus(status) {
			details = append(details, response.FieldError{Field: "status", Message: "must be one of: draft, submitted, reviewed"})
		} else {
			in.Status = status
		}
	}

	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			details = append(details, response.FieldError{Field: "user_id", Message: "must be a positive integer"})
		} else {
			in.UserID = id
		}
	}

	in.Page = parsePage(c, &details)

	if len(details) > 0 {
		return ports.ListReportsInput{}, &response.ValidationError{Details: details}
	}
	return in, nil
}

// parseCustomerListQuery validates the customer list query.
func parseCustomerListQuery(c echo.Context) (ports.ListCustomersInput, error) {
	var details []response.FieldError
	in := ports.ListCustomersInput{
		Query:    c.QueryParam("q"),
		Industry: c.QueryParam("industry"),
	}
	in.Page = parsePage(c, &details)

	if len(details) > 0 {
		return ports.ListCustomersInput{}, &response.ValidationError{Details: details}
	}
	return in, nil
}

// parseListPage validates a plain page/per_page query (user listing).
func parseListPage(c echo.Context) (ports.Page, error) {
	var details []response.FieldError
	page := parsePage(c, &details)
	if len(details) > 0 {
		return ports.Page{}, &response.ValidationError{Details: details}
	}
	return page, nil
}
