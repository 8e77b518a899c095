package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError marks a request that failed structural validation so the
// error middleware can map it to a 400 instead of a 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateRequest checks a request DTO against its validate tags.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return &ValidationError{Message: describeFieldError(first)}
		}
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("le champ %s est obligatoire", fe.Field())
	case "max":
		return fmt.Sprintf("le champ %s dépasse la longueur maximale de %s caractères", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("le champ %s est invalide (%s)", fe.Field(), fe.Tag())
	}
}
