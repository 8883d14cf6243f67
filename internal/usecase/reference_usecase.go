package usecase

import (
	"context"

	"employee-profile-backend/internal/domain"
	"employee-profile-backend/pkg/apperror"
	"employee-profile-backend/pkg/logger"
	"employee-profile-backend/pkg/metrics"

	"github.com/google/uuid"
)

type referenceUsecase struct {
	repo    domain.ReferenceRepository
	cache   domain.ReferenceCache
	auditor domain.SubmissionAuditor
}

func NewReferenceUsecase(repo domain.ReferenceRepository, cache domain.ReferenceCache, auditor domain.SubmissionAuditor) domain.ReferenceUsecase {
	return &referenceUsecase{
		repo:    repo,
		cache:   cache,
		auditor: auditor,
	}
}

// Resolve matches name exactly: no trimming or case folding happens here.
func (u *referenceUsecase) Resolve(ctx context.Context, kind domain.ReferenceKind, name string) (uuid.UUID, error) {
	if !kind.Valid() {
		return uuid.Nil, apperror.BadRequest("Unknown reference kind: " + string(kind))
	}
	if name == "" {
		return uuid.Nil, apperror.BadRequest("Reference name is required")
	}

	entity, created, err := u.repo.GetOrCreate(ctx, kind, name)
	if err != nil {
		return uuid.Nil, apperror.Unavailable("Reference storage is unavailable", err)
	}

	if created {
		// New value: the cached list for this kind is stale now
		u.cache.Invalidate(ctx, kind)
		metrics.ReferencesCreatedTotal.WithLabelValues(string(kind)).Inc()
		u.auditor.ReferenceCreated(ctx, kind, entity.ID, entity.Name)
		logger.Log.Debug("Reference created", "kind", kind, "id", entity.ID)
	}

	return entity.ID, nil
}

// ListNames returns the available values of kind, sorted by name.
func (u *referenceUsecase) ListNames(ctx context.Context, kind domain.ReferenceKind) ([]string, error) {
	if !kind.Valid() {
		return nil, apperror.BadRequest("Unknown reference kind: " + string(kind))
	}

	if names, ok := u.cache.Get(ctx, kind); ok {
		metrics.ReferenceCacheLookups.WithLabelValues(string(kind), "hit").Inc()
		return names, nil
	}
	metrics.ReferenceCacheLookups.WithLabelValues(string(kind), "miss").Inc()

	// Taken before the read: an Invalidate during the read makes the store a no-op
	gen := u.cache.Generation(ctx, kind)
	names, err := u.repo.ListNames(ctx, kind)
	if err != nil {
		return nil, apperror.Unavailable("Reference storage is unavailable", err)
	}
	if !u.cache.SetIfCurrent(ctx, kind, names, gen) {
		logger.Log.Debug("Reference list changed during read, not cached", "kind", kind)
	}
	return names, nil
}
