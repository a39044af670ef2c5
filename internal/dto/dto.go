package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the struct tags of a request DTO. Handlers call it before
// any state is touched.
func Validate(v any) error {
	return validate.Struct(v)
}
