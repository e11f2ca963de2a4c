package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"photogate.io/entities"
)

var validate = validator.New()

func validatePhotoUnit(fl validator.FieldLevel) bool {
	unit := fl.Field().String()
	return unit == entities.UnitInch || unit == entities.UnitMM
}

func validateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var errMessages []error
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errMessages = append(errMessages, err)
		return &errMessages
	}
	for _, fieldErr := range validationErrors {
		errMessages = append(errMessages, fmt.Errorf("%s failed validation rule %q", fieldErr.Field(), fieldErr.Tag()))
	}
	return &errMessages
}

func validateField(value any, rules string) error {
	return validate.Var(value, rules)
}
