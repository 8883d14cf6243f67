package domain

import (
	"context"
	"io"

	"github.com/google/uuid"
)

type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateRejected   SubmissionState = "rejected"
	StateResolving  SubmissionState = "resolving"
	StateAssembling SubmissionState = "assembling"
	StatePersisting SubmissionState = "persisting"
	StateCommitted  SubmissionState = "committed"
	StateFailed     SubmissionState = "failed"
)

var submissionTransitions = map[SubmissionState][]SubmissionState{
	StateIdle:       {StateValidating},
	StateValidating: {StateRejected, StateResolving},
	StateResolving:  {StateAssembling, StateFailed},
	StateAssembling: {StatePersisting, StateFailed},
	StatePersisting: {StateCommitted, StateFailed},
}

// CanTransition reports whether a submission may move from s to next.
// Terminal states have no outgoing edges; a failed submission is redone from scratch.
func (s SubmissionState) CanTransition(next SubmissionState) bool {
	for _, allowed := range submissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s SubmissionState) Terminal() bool {
	return s == StateRejected || s == StateCommitted || s == StateFailed
}

// SubmissionResult is what the output boundary reports back to the caller.
type SubmissionResult struct {
	State     SubmissionState `json:"state"`
	Errors    []string        `json:"errors,omitempty"`
	ProfileID *uuid.UUID      `json:"profile_id,omitempty"`
	Reason    string          `json:"reason,omitempty"`
}

type SubmissionUsecase interface {
	Submit(ctx context.Context, input *ProfileSubmission) (*SubmissionResult, error)
	Validate(input *ProfileSubmission) []string
	FormOptions() FormOptions
}

// ImportRow is the outcome of one spreadsheet row.
type ImportRow struct {
	Row       int             `json:"row"`
	State     SubmissionState `json:"state"`
	Errors    []string        `json:"errors,omitempty"`
	ProfileID *uuid.UUID      `json:"profile_id,omitempty"`
}

type ImportReport struct {
	Total     int         `json:"total"`
	Committed int         `json:"committed"`
	Rejected  int         `json:"rejected"`
	Failed    int         `json:"failed"`
	Rows      []ImportRow `json:"rows"`
}

type ImportUsecase interface {
	Import(ctx context.Context, r io.Reader) (*ImportReport, error)
	Template() ([]byte, error)
}
