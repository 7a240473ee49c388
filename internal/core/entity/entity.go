// Package entity defines the fixed-shape records of the telemetry and
// business-data pipeline. Entities are constructed once, validated exactly once
// (see the validate package), and thereafter treated as immutable facts.
//
// Constructors never validate: partially-formed records must be inspectable
// before rejection. Generated identifiers are filled in when the caller leaves
// them empty; calendar partition fields (event_date, event_hour) are snapshotted
// from the entity's own UTC timestamp at construction so that replays and
// backfills are deterministic.
package entity

import "time"

// Kind discriminates entity types. The value doubles as the record name used
// by the canonical serializer.
type Kind string

const (
	KindPlaybackEvent     Kind = "playback_event"
	KindInteractionEvent  Kind = "user_interaction_event"
	KindViewingSession    Kind = "viewing_session"
	KindContentMetadata   Kind = "content_metadata"
	KindTVSeriesMetadata  Kind = "tv_series_metadata"
	KindQoSTelemetry      Kind = "qos_telemetry"
	KindUserRating        Kind = "user_rating"
	KindUserList          Kind = "user_list"
	KindContentSimilarity Kind = "content_similarity"
	KindUserSubscription  Kind = "user_subscription"
	KindPaymentTransaction Kind = "payment_transaction"
	KindExperimentExposure Kind = "experiment_exposure"
	KindExperimentMetric  Kind = "experiment_metric"
	KindErrorEvent        Kind = "error_event"
	KindWatchPartySession Kind = "watch_party_session"
)

// Kinds returns every entity kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindPlaybackEvent, KindInteractionEvent, KindViewingSession,
		KindContentMetadata, KindTVSeriesMetadata, KindQoSTelemetry,
		KindUserRating, KindUserList, KindContentSimilarity,
		KindUserSubscription, KindPaymentTransaction, KindExperimentExposure,
		KindExperimentMetric, KindErrorEvent, KindWatchPartySession,
	}
}

// Entity is implemented by every record in the pipeline.
type Entity interface {
	// Kind identifies the concrete record type.
	Kind() Kind

	// EntityID is the record's primary identity. For composite-identity
	// records (content similarity) it is the joined identity tuple.
	EntityID() string

	// OccurredAt is the record's authoritative UTC instant: the moment the
	// fact it describes happened, never the moment it was serialized.
	OccurredAt() time.Time
}

// snapshotCalendar derives the calendar partition fields from an entity's own
// timestamp. Replaying the same entity always yields the same coordinates.
func snapshotCalendar(ts time.Time) (date string, hour int) {
	utc := ts.UTC()
	return utc.Format("2006-01-02"), utc.Hour()
}

// orDefaultTime returns ts unchanged unless it is the zero value, in which
// case the current UTC instant is used.
func orDefaultTime(ts time.Time) time.Time {
	if ts.IsZero() {
		return time.Now().UTC()
	}
	return ts.UTC()
}
