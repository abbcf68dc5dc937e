package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"rso-assistant-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct validation on a bound request body. Failures
// come back as invalid-input errors so the error handler maps them to 400.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
		}
		return apperrors.InvalidInput("invalid fields: " + strings.Join(fields, ", "))
	}
	return apperrors.InvalidInput("invalid request")
}
