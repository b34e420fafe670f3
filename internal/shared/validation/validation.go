package validation

import (
	"strings"

	"startrek/internal/shared/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct checks the `validate` tags of s and reports failures as a validation AppError
// naming every offending field.
func Struct(what string, s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.WrapInternal("failed to validate "+what, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, strings.ToLower(fe.Field())+" "+fe.Tag())
	}

	return errors.WrapValidation("invalid "+what+" ("+strings.Join(fields, ", ")+")", err)
}
