package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileSubmission is the raw field set handed over by an input boundary
// (HTTP body, CLI file, spreadsheet row). Nothing in it is normalized yet.
type ProfileSubmission struct {
	FirstName       string `json:"firstName" validate:"not_blank"`
	LastName        string `json:"lastName" validate:"not_blank"`
	IndustryName    string `json:"industryName" validate:"not_blank"`
	DesignationName string `json:"designationName" validate:"not_blank"`
	Contact         string `json:"contact" validate:"not_blank"`
	Location        string `json:"location" validate:"not_blank"`

	// Comma separated lists
	RequiredSkills string `json:"requiredSkills" validate:"list_required"`
	VerifiedSkills string `json:"verifiedSkills" validate:"list_required"`
	Certifications string `json:"certifications"`

	CurrentSalary     *float64 `json:"currentSalary" validate:"omitempty,gte=0"`
	MinExpectedSalary *float64 `json:"minExpectedSalary" validate:"omitempty,gte=0"`
	MaxExpectedSalary *float64 `json:"maxExpectedSalary" validate:"omitempty,gte=0"`
	SeekingRange      *int     `json:"seekingRange" validate:"omitempty,gte=0"`

	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`

	SalaryType       string `json:"salaryType"`
	SalaryCurrency   string `json:"salaryCurrency"`
	SeekingJobType   string `json:"seekingJobType"`
	Gender           string `json:"gender"`
	JoiningTimeframe string `json:"joiningTimeframe"`

	About   string `json:"about"`
	Slogan  string `json:"slogan"`
	IsRadar bool   `json:"isRadar"`
}

// EmployeeProfile is the persisted document. Reference fields carry identifiers only.
type EmployeeProfile struct {
	ID                uuid.UUID   `json:"id"`
	FirstName         string      `json:"firstName"`
	LastName          string      `json:"lastName"`
	IndustryID        uuid.UUID   `json:"industryId"`
	DesignationID     uuid.UUID   `json:"designationId"`
	AddressID         uuid.UUID   `json:"addressId"`
	Contact           string      `json:"contact"`
	CurrentSalary     float64     `json:"currentSalary"`
	MinExpectedSalary float64     `json:"minExpectedSalary"`
	MaxExpectedSalary float64     `json:"maxExpectedSalary"`
	About             string      `json:"about"`
	SalaryType        string      `json:"salaryType"`
	DateOfBirth       *time.Time  `json:"dateOfBirth,omitempty"`
	SalaryCurrency    string      `json:"salaryCurrency"`
	SeekingJobType    string      `json:"seekingJobType"`
	SeekingRange      int         `json:"seekingRange"`
	IsRadar           bool        `json:"isRadar"`
	Gender            string      `json:"gender"`
	Slogan            string      `json:"slogan"`
	JoiningTimeframe  string      `json:"joiningTimeframe"`
	RequiredSkills    []uuid.UUID `json:"requiredSkills"`
	VerifiedSkills    []uuid.UUID `json:"verifiedSkills"`
	Certifications    []uuid.UUID `json:"certifications"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

type EmployeeRepository interface {
	// Insert always stores a new row. A zero ID is replaced by a fresh one.
	Insert(ctx context.Context, profile *EmployeeProfile) error
}
