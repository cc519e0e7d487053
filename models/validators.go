package models

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phoneRule accepts digits plus the punctuation people actually type into a
// phone field. Length bounds are enforced by the binding tags.
func phoneRule(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	digits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '+' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7
}

// RegisterValidators installs custom rules on gin's binding engine. Call once
// before any request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("phone", phoneRule)
}
