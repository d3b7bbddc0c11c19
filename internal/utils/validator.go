package utils

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	Validate *validator.Validate

	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

func InitValidator() {
	if Validate != nil {
		return
	}
	Validate = validator.New(validator.WithRequiredStructEnabled())
	if err := Validate.RegisterValidation("username", validateUsername); err != nil {
		log.Fatalf("register username validation: %v", err)
	}
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}
