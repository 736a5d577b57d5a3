package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("patient_type", validatePatientType)
	validate.RegisterValidation("booking_flow", validateBookingFlow)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePatientType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "self" || value == "family"
}

func validateBookingFlow(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "doctor" || value == "clinic"
}
