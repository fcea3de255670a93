package common

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAndDecode decodes the request body into payload and runs the
// struct validation tags. Returns an AppError ready to send on failure.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return InvalidArgument("Invalid request body", err)
	}

	if err := validate.Struct(payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return InvalidArgument(validationErrors.Error(), err)
	}

	return nil
}
