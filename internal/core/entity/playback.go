package entity

import (
	"time"

	"github.com/playlake-lab/playlake/internal/core/enum"
)

// PlaybackEvent is one playback telemetry signal (start, pause, seek, ...).
// Partitioned by (event_date, event_hour, user_id).
type PlaybackEvent struct {
	EventID   string
	EventType enum.EventType
	Timestamp time.Time
	EventDate string // YYYY-MM-DD, snapshotted from Timestamp
	EventHour int    // 0-23, snapshotted from Timestamp

	UserID    string
	SessionID string
	DeviceID  string

	ContentID    string
	ContentTitle string
	ContentType  enum.ContentType

	PositionSeconds int64
	DurationSeconds int64

	VideoQuality             enum.VideoQuality
	BitrateKbps              *int64
	BufferingCount           int64
	BufferingDurationSeconds *float64
	DroppedFrames            int64

	PlaybackRate  float64
	VolumeLevel   int64
	IsFullscreen  bool
	HasSubtitles  bool
	AudioLanguage string

	DeviceType  enum.DeviceType
	AppVersion  string
	NetworkType string

	CountryCode string
	Region      string
	City        string
}

// NewPlaybackEvent normalizes e into a fully-populated, not-yet-validated
// record: generated EventID and SessionID when absent, defaults for contextual
// fields, and calendar partition fields snapshotted from the event's own
// timestamp. EventDate/EventHour supplied by the caller are always overwritten.
func NewPlaybackEvent(e PlaybackEvent) *PlaybackEvent {
	e.EventID = orNewID(e.EventID)
	e.SessionID = orNewID(e.SessionID)
	e.Timestamp = orDefaultTime(e.Timestamp)
	e.EventDate, e.EventHour = snapshotCalendar(e.Timestamp)

	if e.EventType == "" {
		e.EventType = enum.EventPlayStart
	}
	if e.ContentType == "" {
		e.ContentType = DefaultContentType
	}
	if e.VideoQuality == "" {
		e.VideoQuality = DefaultVideoQuality
	}
	if e.DeviceType == "" {
		e.DeviceType = DefaultDeviceType
	}
	if e.NetworkType == "" {
		e.NetworkType = DefaultNetworkType
	}
	if e.PlaybackRate == 0 {
		e.PlaybackRate = DefaultPlaybackRate
	}
	return &e
}

func (e *PlaybackEvent) Kind() Kind            { return KindPlaybackEvent }
func (e *PlaybackEvent) EntityID() string      { return e.EventID }
func (e *PlaybackEvent) OccurredAt() time.Time { return e.Timestamp }
