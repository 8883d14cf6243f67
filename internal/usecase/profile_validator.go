package usecase

import (
	"errors"

	"employee-profile-backend/internal/domain"
	"employee-profile-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ProfileValidator checks a raw submission and collects every violated rule.
type ProfileValidator struct {
	validate *validator.Validate
	options  domain.FormOptions
}

func NewProfileValidator(validate *validator.Validate, options domain.FormOptions) *ProfileValidator {
	validation.RegisterValidators(validate)
	return &ProfileValidator{
		validate: validate,
		options:  options,
	}
}

// Validate returns nil when the submission may proceed. It never short-circuits.
func (v *ProfileValidator) Validate(input *domain.ProfileSubmission) []string {
	if input == nil {
		return []string{"Submission is empty."}
	}

	var messages []string
	if err := v.validate.Struct(input); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return []string{err.Error()}
		}
		messages = validation.FormatValidationErrors(err)
	}

	// Enum sets are configuration, so they cannot live in struct tags.
	// A blank value takes the default later and is not an error.
	for _, b := range enumBindings(v.options, input) {
		if *b.value != "" && !b.field.Contains(*b.value) {
			messages = append(messages, validation.EnumMessage(b.field.Label, b.field.Allowed))
		}
	}

	return messages
}
