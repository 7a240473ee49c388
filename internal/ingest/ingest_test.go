package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/playlake-lab/playlake/internal/core/entity"
	"github.com/playlake-lab/playlake/internal/core/serialize"
	"github.com/playlake-lab/playlake/internal/core/validate"
)

func validPlayback() *entity.PlaybackEvent {
	return entity.NewPlaybackEvent(entity.PlaybackEvent{
		UserID:          "u1",
		ContentID:       "c1",
		ContentTitle:    "The Long Voyage",
		Timestamp:       time.Date(2024, 3, 1, 23, 45, 0, 0, time.UTC),
		PositionSeconds: 300,
		DurationSeconds: 7200,
		CountryCode:     "US",
	})
}

func TestAdmitAcceptsValidEntity(t *testing.T) {
	sink := NewMemorySink()
	svc := NewService(sink)

	e := validPlayback()
	rec, err := svc.Admit(context.Background(), e)
	require.NoError(t, err)

	require.Equal(t, entity.KindPlaybackEvent, rec.Kind())
	require.Equal(t, "event_date=2024-03-01/event_hour=23/user_id=u1", rec.Key.Path())
	require.NotEmpty(t, rec.Encoded)

	decoded, err := serialize.Decode(rec.Kind(), rec.Encoded)
	require.NoError(t, err)
	require.Equal(t, rec.Flat, decoded)

	stored := sink.Records(entity.KindPlaybackEvent)
	require.Len(t, stored, 1)
	require.Equal(t, rec, stored[0])
}

func TestAdmitRejectsInvalidEntityBeforeSink(t *testing.T) {
	sink := NewMemorySink()
	svc := NewService(sink)

	e := validPlayback()
	e.PositionSeconds = 7300

	_, err := svc.Admit(context.Background(), e)
	require.Error(t, err)

	var failure *validate.Failure
	require.ErrorAs(t, err, &failure)
	require.Equal(t, entity.KindPlaybackEvent, failure.Kind)
	require.Contains(t, failure.Messages(), "position_seconds cannot exceed duration_seconds")

	require.Zero(t, sink.Len(), "rejected entities must never reach the sink")
}

type failingSink struct{ err error }

func (s failingSink) Accept(ctx context.Context, rec Record) error { return s.err }

func TestAdmitPropagatesSinkFailure(t *testing.T) {
	sinkErr := errors.New("disk full")
	svc := NewService(failingSink{err: sinkErr})

	_, err := svc.Admit(context.Background(), validPlayback())
	require.Error(t, err)
	require.ErrorIs(t, err, sinkErr)
}

func TestNewServicePanicsOnNilSink(t *testing.T) {
	require.Panics(t, func() { NewService(nil) })
}

func TestFileSinkWritesUnderPartitionPath(t *testing.T) {
	base := t.TempDir()
	sink, err := NewFileSink(base)
	require.NoError(t, err)

	svc := NewService(sink)
	rec, err := svc.Admit(context.Background(), validPlayback())
	require.NoError(t, err)

	dir := filepath.Join(base, "playback_event", "event_date=2024-03-01", "event_hour=23", "user_id=u1")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Regexp(t, `^events_\d{8}_\d{6}_\d{3}\.avro$`, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.Equal(t, rec.Encoded, data)
}

func TestFileSinkSequencesFilesWithinOneSecond(t *testing.T) {
	base := t.TempDir()
	sink, err := NewFileSink(base)
	require.NoError(t, err)

	svc := NewService(sink)
	for i := 0; i < 3; i++ {
		_, err := svc.Admit(context.Background(), validPlayback())
		require.NoError(t, err)
	}

	var files []string
	err = filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, path)
		}
		return err
	})
	require.NoError(t, err)
	require.Len(t, files, 3, "every record gets its own file even at identical timestamps")
}

func TestFileSinkHonorsCancelledContext(t *testing.T) {
	base := t.TempDir()
	sink, err := NewFileSink(base)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(sink)
	_, err = svc.Admit(ctx, validPlayback())
	require.ErrorIs(t, err, context.Canceled)
}
