package usecase

import "employee-profile-backend/internal/domain"

// enumBinding ties an enum-constrained submission field to its allowed values.
type enumBinding struct {
	field domain.EnumField
	value *string
}

func enumBindings(options domain.FormOptions, input *domain.ProfileSubmission) []enumBinding {
	return []enumBinding{
		{domain.EnumField{Label: "Salary Type", Allowed: options.SalaryTypes}, &input.SalaryType},
		{domain.EnumField{Label: "Salary Currency", Allowed: options.SalaryCurrencies}, &input.SalaryCurrency},
		{domain.EnumField{Label: "Seeking Job Type", Allowed: options.JobTypes}, &input.SeekingJobType},
		{domain.EnumField{Label: "Gender", Allowed: options.Genders}, &input.Gender},
		{domain.EnumField{Label: "Joining Timeframe", Allowed: options.JoiningTimeframes}, &input.JoiningTimeframe},
	}
}
