package dto

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs the struct-tag rules on a request body.
func Validate(s interface{}) error {
	return validate.Struct(s)
}
