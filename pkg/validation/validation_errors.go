package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing form labels
var FieldLabels = map[string]string{
	"FirstName":         "First Name",
	"LastName":          "Last Name",
	"IndustryName":      "Industry Name",
	"DesignationName":   "Designation Name",
	"Contact":           "Contact",
	"Location":          "Location",
	"RequiredSkills":    "Required Skill",
	"VerifiedSkills":    "Verified Skill",
	"Certifications":    "Certification",
	"CurrentSalary":     "Current Salary",
	"MinExpectedSalary": "Min Expected Salary",
	"MaxExpectedSalary": "Max Expected Salary",
	"SeekingRange":      "Seeking Range (km)",
	"DateOfBirth":       "Date of Birth",
	"SalaryType":        "Salary Type",
	"SalaryCurrency":    "Salary Currency",
	"SeekingJobType":    "Seeking Job Type",
	"Gender":            "Gender",
	"JoiningTimeframe":  "Joining Timeframe",
	"About":             "About",
	"Slogan":            "Slogan",
	"IsRadar":           "Enable Radar Mode",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := Label(e.Field())

	switch e.Tag() {
	case "required", "not_blank":
		return fmt.Sprintf("%s is required.", label)
	case "list_required":
		return fmt.Sprintf("At least one %s is required.", label)
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s.", label, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format.", label)
	case "oneof":
		return EnumMessage(label, strings.Split(e.Param(), " "))
	default:
		return fmt.Sprintf("%s is invalid (%s).", label, e.Tag())
	}
}

// EnumMessage renders the violation of an enumerated field
func EnumMessage(label string, allowed []string) string {
	return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(allowed, ", "))
}

// Label returns the user-facing label for a field
func Label(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
