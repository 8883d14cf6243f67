package usecase_test

import (
	"testing"

	"employee-profile-backend/config"
	"employee-profile-backend/internal/usecase"
	"employee-profile-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidator(t *testing.T) {
	v := usecase.NewProfileValidator(validation.New(), config.DefaultFormOptions())

	t.Run("Valid submission has no errors", func(t *testing.T) {
		assert.Empty(t, v.Validate(validSubmission()))
	})

	t.Run("Missing first name and blank skill list give exactly two errors", func(t *testing.T) {
		input := validSubmission()
		input.FirstName = ""
		input.RequiredSkills = " , ,"

		errs := v.Validate(input)
		require.Len(t, errs, 2)
		assert.Contains(t, errs[0], "First Name")
		assert.Contains(t, errs[1], "Required Skill")
	})

	t.Run("Whitespace only counts as missing", func(t *testing.T) {
		input := validSubmission()
		input.Contact = "   "
		errs := v.Validate(input)
		require.Len(t, errs, 1)
		assert.Equal(t, "Contact is required.", errs[0])
	})

	t.Run("Certifications may be empty", func(t *testing.T) {
		input := validSubmission()
		input.Certifications = ""
		assert.Empty(t, v.Validate(input))
	})

	t.Run("Negative numbers and bad dates are rejected", func(t *testing.T) {
		input := validSubmission()
		input.CurrentSalary = floatPtr(-1)
		input.SeekingRange = intPtr(-5)
		input.DateOfBirth = "01/02/1990"

		errs := v.Validate(input)
		assert.Len(t, errs, 3)
	})

	t.Run("Enum value outside the configured set is rejected, blank is not", func(t *testing.T) {
		input := validSubmission()
		input.SalaryType = "Weekly"
		input.Gender = ""

		errs := v.Validate(input)
		require.Len(t, errs, 1)
		assert.Equal(t, "Salary Type must be one of: Hourly, Monthly.", errs[0])
	})

	t.Run("Nil submission", func(t *testing.T) {
		assert.Equal(t, []string{"Submission is empty."}, v.Validate(nil))
	})
}
