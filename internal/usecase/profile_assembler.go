package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"employee-profile-backend/internal/domain"
	"employee-profile-backend/pkg/validation"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ResolvedReferences holds every identifier a submission points at, in input order.
type ResolvedReferences struct {
	IndustryID     uuid.UUID
	DesignationID  uuid.UUID
	AddressID      uuid.UUID
	RequiredSkills []uuid.UUID
	VerifiedSkills []uuid.UUID
	Certifications []uuid.UUID
}

// ProfileAssembler turns a validated submission into the stored document.
type ProfileAssembler struct {
	resolver domain.ReferenceResolver
	options  domain.FormOptions
	now      func() time.Time
}

func NewProfileAssembler(resolver domain.ReferenceResolver, options domain.FormOptions, now func() time.Time) *ProfileAssembler {
	if now == nil {
		now = time.Now
	}
	return &ProfileAssembler{
		resolver: resolver,
		options:  options,
		now:      now,
	}
}

// Assemble resolves references and builds the document in one step.
func (a *ProfileAssembler) Assemble(ctx context.Context, input *domain.ProfileSubmission) (*domain.EmployeeProfile, error) {
	refs, err := a.ResolveReferences(ctx, input)
	if err != nil {
		return nil, err
	}
	return a.Build(input, refs)
}

type resolveKey struct {
	kind domain.ReferenceKind
	name string
}

// ResolveReferences calls the resolver once per distinct (kind, name) of the
// submission. Lists keep their order and their duplicates.
func (a *ProfileAssembler) ResolveReferences(ctx context.Context, input *domain.ProfileSubmission) (*ResolvedReferences, error) {
	memo := make(map[resolveKey]uuid.UUID)
	resolve := func(kind domain.ReferenceKind, name string) (uuid.UUID, error) {
		key := resolveKey{kind: kind, name: name}
		if id, ok := memo[key]; ok {
			return id, nil
		}
		id, err := a.resolver.Resolve(ctx, kind, name)
		if err != nil {
			return uuid.Nil, err
		}
		memo[key] = id
		return id, nil
	}
	resolveList := func(kind domain.ReferenceKind, raw string) ([]uuid.UUID, error) {
		names := validation.ParseList(raw)
		ids := make([]uuid.UUID, 0, len(names))
		for _, name := range names {
			id, err := resolve(kind, name)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		return ids, nil
	}

	var (
		refs ResolvedReferences
		err  error
	)
	if refs.IndustryID, err = resolve(domain.KindIndustry, strings.TrimSpace(input.IndustryName)); err != nil {
		return nil, err
	}
	if refs.DesignationID, err = resolve(domain.KindDesignation, strings.TrimSpace(input.DesignationName)); err != nil {
		return nil, err
	}
	if refs.RequiredSkills, err = resolveList(domain.KindSkill, input.RequiredSkills); err != nil {
		return nil, err
	}
	if refs.VerifiedSkills, err = resolveList(domain.KindSkill, input.VerifiedSkills); err != nil {
		return nil, err
	}
	if refs.Certifications, err = resolveList(domain.KindCertification, input.Certifications); err != nil {
		return nil, err
	}
	// Location goes to its own field, never into IndustryID
	if refs.AddressID, err = resolve(domain.KindLocation, strings.TrimSpace(input.Location)); err != nil {
		return nil, err
	}

	return &refs, nil
}

// Build merges scalars with resolved identifiers. Blank numbers become 0, blank
// enum values take the first configured value, dates become midnight UTC.
func (a *ProfileAssembler) Build(input *domain.ProfileSubmission, refs *ResolvedReferences) (*domain.EmployeeProfile, error) {
	scalars := *input
	for _, b := range enumBindings(a.options, &scalars) {
		if *b.value == "" {
			*b.value = b.field.Default()
		}
	}

	var dob *time.Time
	if s := strings.TrimSpace(scalars.DateOfBirth); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid date of birth %q: %w", s, err)
		}
		d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		dob = &d
	}

	now := a.now().UTC()

	return &domain.EmployeeProfile{
		FirstName:         scalars.FirstName,
		LastName:          scalars.LastName,
		IndustryID:        refs.IndustryID,
		DesignationID:     refs.DesignationID,
		AddressID:         refs.AddressID,
		Contact:           scalars.Contact,
		CurrentSalary:     floatOrZero(scalars.CurrentSalary),
		MinExpectedSalary: floatOrZero(scalars.MinExpectedSalary),
		MaxExpectedSalary: floatOrZero(scalars.MaxExpectedSalary),
		About:             scalars.About,
		SalaryType:        scalars.SalaryType,
		DateOfBirth:       dob,
		SalaryCurrency:    scalars.SalaryCurrency,
		SeekingJobType:    scalars.SeekingJobType,
		SeekingRange:      intOrZero(scalars.SeekingRange),
		IsRadar:           scalars.IsRadar,
		Gender:            scalars.Gender,
		Slogan:            scalars.Slogan,
		JoiningTimeframe:  scalars.JoiningTimeframe,
		RequiredSkills:    refs.RequiredSkills,
		VerifiedSkills:    refs.VerifiedSkills,
		Certifications:    refs.Certifications,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
