package domain

// FormOptions enumerates the allowed values of every enum-constrained field.
// The first value of each list is the default for a blank input.
type FormOptions struct {
	SalaryTypes       []string `json:"salaryTypes" yaml:"salary_types"`
	SalaryCurrencies  []string `json:"salaryCurrencies" yaml:"salary_currencies"`
	JobTypes          []string `json:"jobTypes" yaml:"job_types"`
	Genders           []string `json:"genders" yaml:"genders"`
	JoiningTimeframes []string `json:"joiningTimeframes" yaml:"joining_timeframes"`
}

// EnumField pairs a submission field label with its allowed values.
type EnumField struct {
	Label   string
	Allowed []string
}

// Contains reports whether value is one of the allowed values (exact match).
func (f EnumField) Contains(value string) bool {
	for _, v := range f.Allowed {
		if v == value {
			return true
		}
	}
	return false
}

// Default is the value a blank input takes.
func (f EnumField) Default() string {
	if len(f.Allowed) == 0 {
		return ""
	}
	return f.Allowed[0]
}
