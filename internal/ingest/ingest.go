// Package ingest is the producer-side boundary around the pure core: it
// admits entities through validation, renders their canonical wire form,
// derives their partition key, and hands the result to a Sink.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/playlake-lab/playlake/internal/core/entity"
	"github.com/playlake-lab/playlake/internal/core/partition"
	"github.com/playlake-lab/playlake/internal/core/serialize"
	"github.com/playlake-lab/playlake/internal/core/validate"
	"github.com/playlake-lab/playlake/internal/metrics"
)

// Record is one admitted entity in all three downstream shapes: the flat
// canonical mapping, the derived partition key, and the Avro binary payload.
type Record struct {
	Flat    serialize.Record
	Key     partition.Key
	Encoded []byte
}

// Kind reports the entity kind the record was produced from.
func (r Record) Kind() entity.Kind { return r.Flat.Kind }

// Sink receives admitted records. Implementations decide durability; the
// pipeline itself never retries.
type Sink interface {
	Accept(ctx context.Context, rec Record) error
}

// Service runs the admit pipeline against a single sink.
type Service struct {
	sink Sink
}

func NewService(sink Sink) *Service {
	if sink == nil {
		panic("ingest: sink must not be nil")
	}
	return &Service{sink: sink}
}

// Admit validates e and, when admissible, serializes, encodes, derives the
// partition key, and forwards the record to the sink. A rejection is returned
// as the *validate.Failure itself so callers can inspect the violations.
func (s *Service) Admit(ctx context.Context, e entity.Entity) (Record, error) {
	start := time.Now()
	kind := string(e.Kind())

	if err := validate.Admissible(e); err != nil {
		metrics.EntitiesRejected.WithLabelValues(kind).Inc()
		if f, ok := err.(*validate.Failure); ok {
			metrics.ValidationViolations.WithLabelValues(kind).Add(float64(len(f.Violations)))
		}
		return Record{}, err
	}

	flat, err := serialize.Serialize(e)
	if err != nil {
		return Record{}, fmt.Errorf("admit %s: %w", kind, err)
	}
	encoded, err := serialize.Encode(flat)
	if err != nil {
		return Record{}, fmt.Errorf("admit %s: %w", kind, err)
	}
	key, err := partition.Derive(e)
	if err != nil {
		return Record{}, fmt.Errorf("admit %s: %w", kind, err)
	}

	rec := Record{Flat: flat, Key: key, Encoded: encoded}
	if err := s.sink.Accept(ctx, rec); err != nil {
		metrics.SinkWriteFailures.WithLabelValues(kind).Inc()
		return Record{}, fmt.Errorf("admit %s: sink: %w", kind, err)
	}

	metrics.EntitiesAdmitted.WithLabelValues(kind).Inc()
	metrics.EncodedBytes.WithLabelValues(kind).Add(float64(len(encoded)))
	metrics.AdmitDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)
	return rec, nil
}
