package validation

import "github.com/go-playground/validator/v10"

// RequestValidator plugs go-playground/validator into echo's Validator hook
// so handlers can call c.Validate on bound request structs.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
