package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the shared validator and reports the first failing field
// as a 400 AppError.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return BadRequest(fmt.Sprintf("invalid field %s (%s)", first.Field(), first.Tag()))
	}
	return BadRequest("invalid request body")
}
