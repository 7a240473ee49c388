package entity

import (
	"time"

	"github.com/playlake-lab/playlake/internal/core/enum"
)

// ViewingSession is aggregated engagement over one watch session. It is
// derived from PlaybackEvents by a downstream aggregation job; this layer only
// defines its shape and acceptance rule. Partitioned by session_id.
type ViewingSession struct {
	SessionID string
	UserID    string
	ContentID string
	DeviceID  string
	DeviceType enum.DeviceType

	StartedAt time.Time
	EndedAt   *time.Time

	TotalWatchTimeSeconds int64
	CompletionPercentage  float64

	PauseCount      int64
	SeekCount       int64
	RewindCount     int64
	BufferingEvents int64

	AverageBitrateKbps *int64
	PeakQuality        enum.VideoQuality

	Completed    bool
	Abandoned    bool
	BingeSession bool
}

// NewViewingSession normalizes s into a fully-populated record.
func NewViewingSession(s ViewingSession) *ViewingSession {
	s.SessionID = orNewID(s.SessionID)
	s.StartedAt = orDefaultTime(s.StartedAt)
	if s.EndedAt != nil {
		utc := s.EndedAt.UTC()
		s.EndedAt = &utc
	}
	if s.DeviceType == "" {
		s.DeviceType = DefaultDeviceType
	}
	if s.PeakQuality == "" {
		s.PeakQuality = DefaultVideoQuality
	}
	return &s
}

func (s *ViewingSession) Kind() Kind            { return KindViewingSession }
func (s *ViewingSession) EntityID() string      { return s.SessionID }
func (s *ViewingSession) OccurredAt() time.Time { return s.StartedAt }
