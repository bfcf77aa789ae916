package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ersonp/story-core/internal/domain/entities"
)

// ValidationError reports a request the caller must fix.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required field(s): " + strings.Join(e.Fields, ", ")
}

// newValidator returns a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError converts validator output to a ValidationError.
// Other errors are returned unchanged.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// fromMissingFields converts a domain MissingFieldsError to a ValidationError.
func fromMissingFields(err error, message string) error {
	var missing *entities.MissingFieldsError
	if !errors.As(err, &missing) {
		return err
	}
	return &ValidationError{
		Fields:  missing.Fields,
		Message: message + strings.Join(missing.Fields, ", "),
	}
}
