// Package partition computes the storage partition coordinates for an entity.
// Derivation is a pure function of the entity's own fields: calendar
// coordinates from its snapshotted timestamp, identity coordinates from its
// own ID fields. It never reads wall-clock time and never performs external
// lookups, so replaying historical data routes every record to the partition
// it would have occupied at original ingestion time.
package partition

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/playlake-lab/playlake/internal/core/entity"
)

// Component is one named coordinate of a partition key.
type Component struct {
	Name  string
	Value string
}

// Key is the ordered tuple of partition coordinates for one record.
type Key struct {
	Components []Component
}

// Path renders the key as a hive-style partition path:
// "event_date=2024-03-01/event_hour=23/user_id=u1".
func (k Key) Path() string {
	parts := make([]string, len(k.Components))
	for i, c := range k.Components {
		parts[i] = c.Name + "=" + c.Value
	}
	return strings.Join(parts, "/")
}

// Value returns the value of a named component and whether it exists.
func (k Key) Value(name string) (string, bool) {
	for _, c := range k.Components {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Schema returns the ordered component names for an entity kind. Event-shaped
// kinds partition by calendar coordinates; stateful kinds by identity.
func Schema(kind entity.Kind) []string {
	switch kind {
	case entity.KindPlaybackEvent:
		return []string{"event_date", "event_hour", "user_id"}
	case entity.KindInteractionEvent:
		return []string{"event_date", "event_hour"}
	case entity.KindViewingSession:
		return []string{"session_id"}
	case entity.KindContentMetadata:
		return []string{"content_id"}
	case entity.KindTVSeriesMetadata:
		return []string{"series_id"}
	case entity.KindQoSTelemetry:
		return []string{"telemetry_id"}
	case entity.KindUserRating:
		return []string{"rating_id"}
	case entity.KindUserList:
		return []string{"list_id"}
	case entity.KindContentSimilarity:
		return []string{"content_id_a", "content_id_b", "model_version"}
	case entity.KindUserSubscription:
		return []string{"subscription_id"}
	case entity.KindPaymentTransaction:
		return []string{"transaction_id"}
	case entity.KindExperimentExposure:
		return []string{"exposure_id"}
	case entity.KindExperimentMetric:
		return []string{"metric_id"}
	case entity.KindErrorEvent:
		return []string{"error_id"}
	case entity.KindWatchPartySession:
		return []string{"party_id"}
	}
	return nil
}

// Derive computes the partition key for an entity.
func Derive(e entity.Entity) (Key, error) {
	switch v := e.(type) {
	case *entity.PlaybackEvent:
		return Key{Components: []Component{
			{Name: "event_date", Value: v.EventDate},
			{Name: "event_hour", Value: fmt.Sprintf("%02d", v.EventHour)},
			{Name: "user_id", Value: v.UserID},
		}}, nil
	case *entity.InteractionEvent:
		return Key{Components: []Component{
			{Name: "event_date", Value: v.EventDate},
			{Name: "event_hour", Value: fmt.Sprintf("%02d", v.EventHour)},
		}}, nil
	case *entity.ViewingSession:
		return identityKey("session_id", v.SessionID), nil
	case *entity.ContentMetadata:
		return identityKey("content_id", v.ContentID), nil
	case *entity.TVSeriesMetadata:
		return identityKey("series_id", v.SeriesID), nil
	case *entity.QoSTelemetry:
		return identityKey("telemetry_id", v.TelemetryID), nil
	case *entity.UserRating:
		return identityKey("rating_id", v.RatingID), nil
	case *entity.UserList:
		return identityKey("list_id", v.ListID), nil
	case *entity.ContentSimilarity:
		return Key{Components: []Component{
			{Name: "content_id_a", Value: v.ContentIDA},
			{Name: "content_id_b", Value: v.ContentIDB},
			{Name: "model_version", Value: v.ModelVersion},
		}}, nil
	case *entity.UserSubscription:
		return identityKey("subscription_id", v.SubscriptionID), nil
	case *entity.PaymentTransaction:
		return identityKey("transaction_id", v.TransactionID), nil
	case *entity.ExperimentExposure:
		return identityKey("exposure_id", v.ExposureID), nil
	case *entity.ExperimentMetric:
		return identityKey("metric_id", v.MetricID), nil
	case *entity.ErrorEvent:
		return identityKey("error_id", v.ErrorID), nil
	case *entity.WatchPartySession:
		return identityKey("party_id", v.PartyID), nil
	}
	return Key{}, fmt.Errorf("partition: unsupported entity kind %q", e.Kind())
}

func identityKey(name, value string) Key {
	return Key{Components: []Component{{Name: name, Value: value}}}
}

// Shard maps a key onto one of n numeric buckets for sinks that route by
// shard rather than path. Stable: the same key always maps to the same shard.
func Shard(k Key, n int) int {
	if n <= 0 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(k.Path()))
	return int(h.Sum32()) % n
}
