package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/keepnote/notes-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// It reports every violated field at once as a domain.ValidationError.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// Report fields by their json names so error entries match the input schema.
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
			fields := make([]domain.FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, domain.FieldError{
					Field:   baseFieldName(fe.Field()),
					Message: fieldMessage(fe),
				})
			}
			return &domain.ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// baseFieldName strips the index suffix validator adds for slice elements,
// e.g. "tags[2]" → "tags".
func baseFieldName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

// fieldMessage converts a single ValidationError into the client-facing
// message for that field.
func fieldMessage(fe validator.FieldError) string {
	switch baseFieldName(fe.Field()) {
	case "name":
		return "Name must be between 2 and 50 characters"
	case "email":
		return "Please provide a valid email address"
	case "password":
		return "Password must be at least 6 characters long"
	case "title":
		return "Title must be between 1 and 100 characters"
	case "content":
		return "Content must be between 1 and 10000 characters"
	case "tags":
		return "Each tag must be a string with maximum 20 characters"
	default:
		return fe.Field() + " failed validation (" + fe.Tag() + ")"
	}
}
