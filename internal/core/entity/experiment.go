package entity

import (
	"time"

	"github.com/playlake-lab/playlake/internal/core/enum"
)

// ExperimentExposure records one user's assignment into an experiment variant.
// Partitioned by exposure_id.
type ExperimentExposure struct {
	ExposureID   string
	ExperimentID string
	UserID       string

	Variant enum.ExperimentVariant

	FirstExposedAt time.Time
	LastExposedAt  *time.Time
	ExposureCount  int64
}

// NewExperimentExposure normalizes e into a fully-populated record.
func NewExperimentExposure(e ExperimentExposure) *ExperimentExposure {
	e.ExposureID = orNewID(e.ExposureID)
	e.FirstExposedAt = orDefaultTime(e.FirstExposedAt)
	if e.LastExposedAt != nil {
		utc := e.LastExposedAt.UTC()
		e.LastExposedAt = &utc
	}
	if e.Variant == "" {
		e.Variant = enum.VariantControl
	}
	if e.ExposureCount == 0 {
		e.ExposureCount = 1
	}
	return &e
}

func (e *ExperimentExposure) Kind() Kind            { return KindExperimentExposure }
func (e *ExperimentExposure) EntityID() string      { return e.ExposureID }
func (e *ExperimentExposure) OccurredAt() time.Time { return e.FirstExposedAt }

// ExperimentMetric is one computed statistic for an experiment variant.
// Partitioned by metric_id.
type ExperimentMetric struct {
	MetricID     string
	ExperimentID string

	Variant    enum.ExperimentVariant
	MetricName string
	MetricValue float64
	SampleSize  int64

	// Significance stats, present only when computed.
	PValue             *float64
	ConfidenceLow      *float64
	ConfidenceHigh     *float64
	LiftPercent        *float64

	ComputedAt time.Time
}

// NewExperimentMetric normalizes m into a fully-populated record.
func NewExperimentMetric(m ExperimentMetric) *ExperimentMetric {
	m.MetricID = orNewID(m.MetricID)
	m.ComputedAt = orDefaultTime(m.ComputedAt)
	if m.Variant == "" {
		m.Variant = enum.VariantControl
	}
	return &m
}

func (m *ExperimentMetric) Kind() Kind            { return KindExperimentMetric }
func (m *ExperimentMetric) EntityID() string      { return m.MetricID }
func (m *ExperimentMetric) OccurredAt() time.Time { return m.ComputedAt }
