package domain

import (
	"context"

	"github.com/google/uuid"
)

// SubmissionAuditor records the lifecycle of submissions and reference creation.
type SubmissionAuditor interface {
	SubmissionCommitted(ctx context.Context, profileID uuid.UUID, contact string)
	SubmissionRejected(ctx context.Context, errors []string, contact string)
	SubmissionFailed(ctx context.Context, stage SubmissionState, cause error)
	ReferenceCreated(ctx context.Context, kind ReferenceKind, id uuid.UUID, name string)
}
