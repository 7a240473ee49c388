package ingest

import (
	"context"
	"sync"

	"github.com/playlake-lab/playlake/internal/core/entity"
)

// MemorySink is an in-memory Sink implementation.
// Useful for testing and development.
type MemorySink struct {
	mu      sync.RWMutex
	records map[entity.Kind][]Record
}

func NewMemorySink() *MemorySink {
	return &MemorySink{records: make(map[entity.Kind][]Record)}
}

func (s *MemorySink) Accept(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Kind()] = append(s.records[rec.Kind()], rec)
	return nil
}

// Records returns a copy of the accepted records for one kind, in arrival
// order.
func (s *MemorySink) Records(kind entity.Kind) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records[kind]))
	copy(out, s.records[kind])
	return out
}

// Len reports the total number of accepted records across all kinds.
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, recs := range s.records {
		n += len(recs)
	}
	return n
}
