package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validationDetails turns validator errors into one readable line per field.
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("field %s is a required field", fe.Field()))
		case "datetime":
			details = append(details, fmt.Sprintf("field %s must match layout %s", fe.Field(), fe.Param()))
		default:
			details = append(details, fmt.Sprintf("field %s is not valid", fe.Field()))
		}
	}
	return details
}
