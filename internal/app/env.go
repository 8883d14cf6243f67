package app

import (
	"os"

	"employee-profile-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func getEnvironment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}

func newValidator() *validator.Validate {
	return validation.New()
}
