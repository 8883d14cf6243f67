package config

import (
	"fmt"
	"os"

	"employee-profile-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

// DefaultFormOptions returns the enum sets used when no options file is configured.
func DefaultFormOptions() domain.FormOptions {
	return domain.FormOptions{
		SalaryTypes:       []string{"Hourly", "Monthly"},
		SalaryCurrencies:  []string{"PKR", "USD", "EUR", "GBP", "AED"},
		JobTypes:          []string{"Full Time", "Part Time", "Contract", "Internship"},
		Genders:           []string{"Male", "Female", "Other"},
		JoiningTimeframes: []string{"Immediately", "Within 2 Weeks", "Within 1 Month", "More than 1 Month"},
	}
}

// LoadFormOptions reads a YAML file on top of the defaults. An empty path returns
// the defaults. Lists omitted from the file keep their default values; lists given
// explicitly but left empty are rejected.
func LoadFormOptions(path string) (domain.FormOptions, error) {
	opts := DefaultFormOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read form options file: %w", err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return opts, fmt.Errorf("failed to parse form options file: %w", err)
	}

	targets := map[string]*[]string{
		"salary_types":       &opts.SalaryTypes,
		"salary_currencies":  &opts.SalaryCurrencies,
		"job_types":          &opts.JobTypes,
		"genders":            &opts.Genders,
		"joining_timeframes": &opts.JoiningTimeframes,
	}

	for key, values := range raw {
		target, ok := targets[key]
		if !ok {
			return opts, fmt.Errorf("form options: unknown field %q", key)
		}
		if len(values) == 0 {
			return opts, fmt.Errorf("form options: %q must list at least one value", key)
		}
		*target = values
	}

	return opts, nil
}
