package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation run metrics
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fieldvet_validation_duration_seconds",
			Help:    "Time taken to validate a single record",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldvet_validations_total",
			Help: "Total number of validation runs",
		},
		[]string{"status"}, // pass or fail
	)

	violationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldvet_violations_total",
			Help: "Total number of rule violations reported",
		},
		[]string{"rule"}, // size, range, pattern, enum, or a custom kind
	)

	// Metadata cache metrics
	metadataCompilesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldvet_metadata_compiles_total",
			Help: "Total number of type metadata compilations",
		},
	)
)
