package apperrors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BindingError is one field failure from gin's request binding.
type BindingError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FromBindingError converts a gin binding failure (go-playground/validator
// under the hood) into client-facing field errors. Non-validator errors
// (e.g. malformed JSON) collapse into a single generic entry.
func FromBindingError(err error) []BindingError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []BindingError{{Field: "body", Message: err.Error()}}
	}

	out := make([]BindingError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, BindingError{Field: fe.Field(), Message: bindingMessage(fe)})
	}
	return out
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed '%s' validation", fe.Tag())
	}
}
