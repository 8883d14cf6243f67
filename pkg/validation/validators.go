package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the custom tags of this package registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("not_blank", NotBlank)
	_ = v.RegisterValidation("list_required", ListRequired)
}

// NotBlank fails on empty or whitespace-only strings
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ListRequired validates that a comma separated field holds at least one entry after parsing
func ListRequired(fl validator.FieldLevel) bool {
	return len(ParseList(fl.Field().String())) > 0
}
