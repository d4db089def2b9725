// Package schema defines the form payloads accepted by the dashboard and
// validates them the way the entry forms do: field-level messages, numeric
// clamping instead of rejection, and cross-field vocabulary checks.
package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hwfottawa/hwfadmin/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// The reason vocabulary depends on the selected stock action.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(StockInput)
		if in.Action == "" || in.Reason == "" {
			return // covered by the per-field required checks
		}
		if !model.ValidStockReason(in.Action, in.Reason) {
			sl.ReportError(in.Reason, "reason", "Reason", "stockreason", in.Action)
		}
	}, StockInput{})

	return v
}

// FieldErrors maps form field names to validation messages, mirroring the
// inline messages shown under each form control.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Validate checks a payload against its schema tags. It returns nil when the
// payload is valid and a FieldErrors value otherwise.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validating payload: %w", err)
	}

	fe := make(FieldErrors, len(verrs))
	for _, e := range verrs {
		if _, dup := fe[e.Field()]; !dup {
			fe[e.Field()] = message(e)
		}
	}
	return fe
}

// message converts a single tag failure into a user-facing string.
func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at least %s", e.Param())
		}
		return fmt.Sprintf("Must be at least %s characters", e.Param())
	case "email":
		return "Please enter a valid email address"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Join(strings.Fields(e.Param()), ", "))
	case "datetime":
		return "Must be a valid date (YYYY-MM-DD)"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "stockreason":
		return fmt.Sprintf("Not a valid reason for the %q action", e.Param())
	default:
		return "Invalid value"
	}
}
