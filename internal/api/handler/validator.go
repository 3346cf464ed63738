package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/salesdesk/daily-report-api/internal/api/response"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req)
// and surfaces failures as structured {field, message} details.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in error details use the json tag, not the Go field name.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			details := make([]response.FieldError, 0, len(ve))
			for _, fe := range ve {
				details = append(details, response.FieldError{
					Field:   fieldPath(fe),
					Message: fieldMessage(fe),
				})
			}
			return &response.ValidationError{Details: details}
		}
		return err
	}
	return nil
}

// fieldPath converts a validator namespace like
// "createReportRequest.visit_records[0].content" into the dotted wire path
// "visit_records.0.content".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	ns = strings.ReplaceAll(ns, "]", "")
	return ns
}

// fieldMessage converts a single ValidationError into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		switch fe.Param() {
		case "2006-01-02":
			return "must be a date in YYYY-MM-DD format"
		case "15:04":
			return "must be a time in HH:MM format"
		}
		return "has an invalid format"
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
