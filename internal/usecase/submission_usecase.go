package usecase

import (
	"context"
	"fmt"
	"time"

	"employee-profile-backend/internal/domain"
	"employee-profile-backend/pkg/apperror"
	"employee-profile-backend/pkg/logger"
	"employee-profile-backend/pkg/metrics"
)

// failureReason is the only thing a caller learns about a storage failure.
const failureReason = "The profile could not be saved. Please submit it again."

type submissionUsecase struct {
	validator *ProfileValidator
	assembler *ProfileAssembler
	repo      domain.EmployeeRepository
	auditor   domain.SubmissionAuditor
	options   domain.FormOptions
}

func NewSubmissionUsecase(
	validator *ProfileValidator,
	assembler *ProfileAssembler,
	repo domain.EmployeeRepository,
	auditor domain.SubmissionAuditor,
	options domain.FormOptions,
) domain.SubmissionUsecase {
	return &submissionUsecase{
		validator: validator,
		assembler: assembler,
		repo:      repo,
		auditor:   auditor,
		options:   options,
	}
}

func (u *submissionUsecase) FormOptions() domain.FormOptions {
	return u.options
}

// submissionRun tracks the state of a single submission.
type submissionRun struct {
	ctx   context.Context
	state domain.SubmissionState
	start time.Time
}

// advance panics on a transition the state machine does not allow; Submit never asks for one.
func (r *submissionRun) advance(next domain.SubmissionState) {
	if !r.state.CanTransition(next) {
		panic(fmt.Sprintf("illegal submission transition %s -> %s", r.state, next))
	}
	logger.Log.Debug("Submission transition", "from", r.state, "to", next, "request_id", domain.RequestIDFrom(r.ctx))
	r.state = next

	if next.Terminal() {
		metrics.SubmissionsTotal.WithLabelValues(string(next)).Inc()
		metrics.SubmissionDuration.Observe(time.Since(r.start).Seconds())
	}
}

// Validate runs the validation rules alone, without resolving or persisting anything.
func (u *submissionUsecase) Validate(input *domain.ProfileSubmission) []string {
	return u.validator.Validate(input)
}

// Submit runs validate, resolve, assemble, persist. A rejected submission returns
// the validation list; a failed one returns an opaque Unavailable error. Reference
// entities created before a failed insert are kept and reused on resubmission.
func (u *submissionUsecase) Submit(ctx context.Context, input *domain.ProfileSubmission) (*domain.SubmissionResult, error) {
	run := &submissionRun{ctx: ctx, state: domain.StateIdle, start: time.Now()}

	run.advance(domain.StateValidating)
	if errs := u.validator.Validate(input); len(errs) > 0 {
		run.advance(domain.StateRejected)
		contact := ""
		if input != nil {
			contact = input.Contact
		}
		u.auditor.SubmissionRejected(ctx, errs, contact)
		return &domain.SubmissionResult{State: run.state, Errors: errs}, apperror.Validation(errs)
	}

	run.advance(domain.StateResolving)
	refs, err := u.assembler.ResolveReferences(ctx, input)
	if err != nil {
		return u.fail(ctx, run, err)
	}

	run.advance(domain.StateAssembling)
	profile, err := u.assembler.Build(input, refs)
	if err != nil {
		return u.fail(ctx, run, err)
	}

	run.advance(domain.StatePersisting)
	if err := u.insert(ctx, profile); err != nil {
		return u.fail(ctx, run, err)
	}

	run.advance(domain.StateCommitted)
	u.auditor.SubmissionCommitted(ctx, profile.ID, profile.Contact)
	logger.Log.Info("Profile submitted", "profile_id", profile.ID, "request_id", domain.RequestIDFrom(ctx))

	id := profile.ID
	return &domain.SubmissionResult{State: run.state, ProfileID: &id}, nil
}

// insert keeps a panicking driver from escaping the sink boundary.
func (u *submissionUsecase) insert(ctx context.Context, profile *domain.EmployeeProfile) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("employee insert panicked: %v", rec)
		}
	}()
	return u.repo.Insert(ctx, profile)
}

func (u *submissionUsecase) fail(ctx context.Context, run *submissionRun, cause error) (*domain.SubmissionResult, error) {
	stage := run.state
	run.advance(domain.StateFailed)

	logger.Log.Error("Profile submission failed", "stage", stage, "error", cause, "request_id", domain.RequestIDFrom(ctx))
	u.auditor.SubmissionFailed(ctx, stage, cause)

	return &domain.SubmissionResult{State: run.state, Reason: failureReason}, apperror.Unavailable(failureReason, cause)
}
