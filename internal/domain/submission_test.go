package domain_test

import (
	"testing"

	"employee-profile-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionTransitions(t *testing.T) {
	allowed := []struct{ from, to domain.SubmissionState }{
		{domain.StateIdle, domain.StateValidating},
		{domain.StateValidating, domain.StateRejected},
		{domain.StateValidating, domain.StateResolving},
		{domain.StateResolving, domain.StateAssembling},
		{domain.StateResolving, domain.StateFailed},
		{domain.StateAssembling, domain.StatePersisting},
		{domain.StatePersisting, domain.StateCommitted},
		{domain.StatePersisting, domain.StateFailed},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to domain.SubmissionState }{
		{domain.StateIdle, domain.StatePersisting},
		{domain.StateValidating, domain.StateCommitted},
		{domain.StateRejected, domain.StateResolving},
		{domain.StateFailed, domain.StateResolving},
		{domain.StateCommitted, domain.StatePersisting},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.True(t, domain.StateCommitted.Terminal())
	assert.True(t, domain.StateRejected.Terminal())
	assert.True(t, domain.StateFailed.Terminal())
	assert.False(t, domain.StatePersisting.Terminal())
}

func TestReferenceKindValid(t *testing.T) {
	for _, k := range domain.ReferenceKinds {
		assert.True(t, k.Valid())
	}
	assert.False(t, domain.ReferenceKind("companies").Valid())
}

func TestEnumField(t *testing.T) {
	f := domain.EnumField{Label: "Gender", Allowed: []string{"Male", "Female"}}
	assert.True(t, f.Contains("Female"))
	assert.False(t, f.Contains("female"))
	assert.Equal(t, "Male", f.Default())
	assert.Equal(t, "", domain.EnumField{}.Default())
}
