package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal counts finished submissions by terminal state.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "employee_profiles",
		Name:      "submissions_total",
		Help:      "Finished profile submissions by terminal state.",
	}, []string{"state"})

	// ReferencesCreatedTotal counts reference entities inserted by get-or-create.
	ReferencesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "employee_profiles",
		Name:      "references_created_total",
		Help:      "Reference entities created on first use.",
	}, []string{"kind"})

	// ReferenceCacheLookups counts cache lookups of available values by result (hit|miss).
	ReferenceCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "employee_profiles",
		Name:      "reference_cache_lookups_total",
		Help:      "Lookups of cached reference value lists.",
	}, []string{"kind", "result"})

	// SubmissionDuration observes the wall time of a submission.
	SubmissionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "employee_profiles",
		Name:      "submission_duration_seconds",
		Help:      "Time from validation to terminal state.",
		Buckets:   prometheus.DefBuckets,
	})
)
