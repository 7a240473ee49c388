package entity

import "time"

// QoSTelemetry is one high-frequency quality-of-service sample, taken on a
// fixed interval during playback. Partitioned by telemetry_id.
type QoSTelemetry struct {
	TelemetryID string
	SessionID   string
	Timestamp   time.Time

	BitrateKbps        int64
	BandwidthKbps      *int64
	BufferLevelSeconds float64

	DroppedFrames int64
	TotalFrames   int64

	CDNProvider string
	CDNPop      string
	NetworkType string
	RoundTripTimeMillis *int64

	SampleIntervalSeconds int64
}

// NewQoSTelemetry normalizes q into a fully-populated record.
func NewQoSTelemetry(q QoSTelemetry) *QoSTelemetry {
	q.TelemetryID = orNewID(q.TelemetryID)
	q.Timestamp = orDefaultTime(q.Timestamp)
	if q.NetworkType == "" {
		q.NetworkType = DefaultNetworkType
	}
	if q.SampleIntervalSeconds == 0 {
		q.SampleIntervalSeconds = DefaultQoSSampleIntervalSeconds
	}
	return &q
}

func (q *QoSTelemetry) Kind() Kind            { return KindQoSTelemetry }
func (q *QoSTelemetry) EntityID() string      { return q.TelemetryID }
func (q *QoSTelemetry) OccurredAt() time.Time { return q.Timestamp }
