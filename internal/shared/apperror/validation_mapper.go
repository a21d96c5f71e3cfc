package apperror

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// formatFieldName turns "employeeName" or "employee_name" into "Employee Name".
func formatFieldName(s string) string {
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError converts a binding error into a client error. When
// onInvalid is given, failed validation rules report it instead of a
// per-field message.
func MapValidationError(err error, onInvalid ...*AppError) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		if len(onInvalid) > 0 && onInvalid[0] != nil {
			base := onInvalid[0]
			return Wrap(err, base.Code, base.Message, base.HTTPStatus)
		}
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid request body",
		http.StatusBadRequest,
	)
}
