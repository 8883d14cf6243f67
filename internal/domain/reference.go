package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReferenceKind names one normalized lookup collection. The value doubles as the table name.
type ReferenceKind string

const (
	KindIndustry      ReferenceKind = "industries"
	KindDesignation   ReferenceKind = "designations"
	KindSkill         ReferenceKind = "skills"
	KindCertification ReferenceKind = "certifications"
	KindLocation      ReferenceKind = "locations"
)

// ReferenceKinds lists every kind in a stable order.
var ReferenceKinds = []ReferenceKind{
	KindIndustry,
	KindDesignation,
	KindSkill,
	KindCertification,
	KindLocation,
}

func (k ReferenceKind) Valid() bool {
	for _, known := range ReferenceKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k ReferenceKind) String() string {
	return string(k)
}

// ReferenceEntity is a deduplicated lookup record. Name is unique within its kind.
type ReferenceEntity struct {
	ID        uuid.UUID     `json:"id"`
	Kind      ReferenceKind `json:"kind"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"created_at"`
}

type ReferenceRepository interface {
	// GetOrCreate returns the entity named name, inserting it when absent.
	// created reports whether this call inserted the row. Must be atomic
	// against concurrent callers using the same name.
	GetOrCreate(ctx context.Context, kind ReferenceKind, name string) (entity *ReferenceEntity, created bool, err error)
	GetByName(ctx context.Context, kind ReferenceKind, name string) (*ReferenceEntity, error)
	ListNames(ctx context.Context, kind ReferenceKind) ([]string, error)
}

// CacheGeneration identifies one state of a kind's cached list. Every Invalidate
// moves both counters forward. Shared is -1 when the shared tier could not be read.
type CacheGeneration struct {
	Local  uint64
	Shared int64
}

// ReferenceCache holds the "available values" list per kind. Any write that adds a
// new reference value must Invalidate the matching kind.
//
// A list read from storage is stored with SetIfCurrent using the generation taken
// before the read, so a list that raced with an Invalidate is dropped.
type ReferenceCache interface {
	Get(ctx context.Context, kind ReferenceKind) ([]string, bool)
	Generation(ctx context.Context, kind ReferenceKind) CacheGeneration
	SetIfCurrent(ctx context.Context, kind ReferenceKind, names []string, gen CacheGeneration) bool
	Invalidate(ctx context.Context, kind ReferenceKind)
}

// ReferenceResolver maps a reference value to its identifier, creating the entity on first use.
type ReferenceResolver interface {
	Resolve(ctx context.Context, kind ReferenceKind, name string) (uuid.UUID, error)
}

type ReferenceUsecase interface {
	ReferenceResolver
	ListNames(ctx context.Context, kind ReferenceKind) ([]string, error)
}
