package utils

import (
	"regexp"

	"medsafe-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// Italian codice fiscale: 6 letters, 2 digits, letter, 2 digits, letter,
// 3 alphanumerics, letter.
var fiscalCodePattern = regexp.MustCompile(`^[A-Z]{6}[0-9]{2}[A-Z][0-9]{2}[A-Z][0-9A-Z]{3}[A-Z]$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("fiscal_code", func(fl validator.FieldLevel) bool {
		return fiscalCodePattern.MatchString(fl.Field().String())
	})
	return v
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
