package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileSink writes each record's Avro binary payload to the local filesystem
// under basePath/<kind>/<hive partition path>/. It is a reference sink for
// the demo pipeline, not a storage engine: one file per record, no rotation.
type FileSink struct {
	basePath string

	mu            sync.Mutex
	fileSequence  int
	lastTimestamp string
}

func NewFileSink(basePath string) (*FileSink, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create base path: %w", err)
	}
	return &FileSink{basePath: basePath}, nil
}

func (s *FileSink) Accept(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Join(s.basePath, string(rec.Kind()), filepath.FromSlash(rec.Key.Path()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create partition directory: %w", err)
	}

	full := filepath.Join(dir, s.nextFilename())
	if err := os.WriteFile(full, rec.Encoded, 0o644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// nextFilename generates a timestamped filename, events_YYYYMMDD_HHMMSS_NNN.avro,
// with a sequence counter disambiguating files created in the same second.
func (s *FileSink) nextFilename() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamp := time.Now().UTC().Format("20060102_150405")
	if timestamp == s.lastTimestamp {
		s.fileSequence++
	} else {
		s.fileSequence = 1
		s.lastTimestamp = timestamp
	}
	return fmt.Sprintf("events_%s_%03d.avro", timestamp, s.fileSequence)
}
