// Package metrics exposes process-wide Prometheus instruments for the
// ingest pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntitiesAdmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playlake_entities_admitted_total",
		Help: "Total number of entities accepted into the pipeline, labelled by kind.",
	}, []string{"kind"})

	EntitiesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playlake_entities_rejected_total",
		Help: "Total number of entities rejected by validation, labelled by kind.",
	}, []string{"kind"})

	ValidationViolations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playlake_validation_violations_total",
		Help: "Total number of individual validation violations, labelled by kind.",
	}, []string{"kind"})

	EncodedBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playlake_encoded_bytes_total",
		Help: "Total Avro-encoded payload bytes produced, labelled by kind.",
	}, []string{"kind"})

	AdmitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "playlake_admit_duration_ms",
		Help:    "Validate-serialize-encode latency per entity in milliseconds.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
	})

	SinkWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playlake_sink_write_failures_total",
		Help: "Total sink write failures, labelled by kind.",
	}, []string{"kind"})
)
