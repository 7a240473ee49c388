package serialize

import (
	"fmt"
	"time"

	"github.com/playlake-lab/playlake/internal/core/entity"
	"github.com/playlake-lab/playlake/internal/core/enum"
)

// Rehydrate reconstructs a typed entity from a decoded flat record. The
// guarantee is scoped: identity, the authoritative timestamp, and every
// partition-input field are restored exactly, so partition derivation on the
// rehydrated entity matches the original. Remaining fields are restored on a
// best-effort basis through the entity constructors.
func Rehydrate(r Record) (entity.Entity, error) {
	g := &getter{rec: r}
	var e entity.Entity

	switch r.Kind {
	case entity.KindPlaybackEvent:
		e = entity.NewPlaybackEvent(entity.PlaybackEvent{
			EventID:         g.str("event_id"),
			EventType:       enum.EventType(g.str("event_type")),
			Timestamp:       g.time("event_timestamp"),
			UserID:          g.str("user_id"),
			SessionID:       g.str("session_id"),
			ContentID:       g.str("content_id"),
			PositionSeconds: g.i64("position_seconds"),
			DurationSeconds: g.i64("duration_seconds"),
		})
	case entity.KindInteractionEvent:
		e = entity.NewInteractionEvent(entity.InteractionEvent{
			EventID:   g.str("event_id"),
			EventType: enum.EventType(g.str("event_type")),
			Timestamp: g.time("event_timestamp"),
			UserID:    g.str("user_id"),
			SessionID: g.str("session_id"),
		})
	case entity.KindViewingSession:
		e = entity.NewViewingSession(entity.ViewingSession{
			SessionID: g.str("session_id"),
			UserID:    g.str("user_id"),
			ContentID: g.str("content_id"),
			StartedAt: g.time("started_at"),
		})
	case entity.KindContentMetadata:
		e = entity.NewContentMetadata(entity.ContentMetadata{
			ContentID:   g.str("content_id"),
			Title:       g.str("title"),
			ContentType: enum.ContentType(g.str("content_type")),
			AddedAt:     g.time("added_at"),
		})
	case entity.KindTVSeriesMetadata:
		e = entity.NewTVSeriesMetadata(entity.TVSeriesMetadata{
			SeriesID:      g.str("series_id"),
			Title:         g.str("title"),
			BaseContentID: g.str("base_content_id"),
			UpdatedAt:     g.time("updated_at"),
		})
	case entity.KindQoSTelemetry:
		e = entity.NewQoSTelemetry(entity.QoSTelemetry{
			TelemetryID: g.str("telemetry_id"),
			SessionID:   g.str("session_id"),
			Timestamp:   g.time("timestamp"),
		})
	case entity.KindUserRating:
		e = entity.NewUserRating(entity.UserRating{
			RatingID:  g.str("rating_id"),
			UserID:    g.str("user_id"),
			ContentID: g.str("content_id"),
			RatedAt:   g.time("rated_at"),
		})
	case entity.KindUserList:
		e = entity.NewUserList(entity.UserList{
			ListID:    g.str("list_id"),
			UserID:    g.str("user_id"),
			ListName:  g.str("list_name"),
			CreatedAt: g.time("created_at"),
			UpdatedAt: g.time("updated_at"),
		})
	case entity.KindContentSimilarity:
		e = entity.NewContentSimilarity(entity.ContentSimilarity{
			ContentIDA:   g.str("content_id_a"),
			ContentIDB:   g.str("content_id_b"),
			ModelVersion: g.str("model_version"),
			ComputedAt:   g.time("computed_at"),
		})
	case entity.KindUserSubscription:
		e = entity.NewUserSubscription(entity.UserSubscription{
			SubscriptionID: g.str("subscription_id"),
			UserID:         g.str("user_id"),
			StartedAt:      g.time("started_at"),
		})
	case entity.KindPaymentTransaction:
		e = entity.NewPaymentTransaction(entity.PaymentTransaction{
			TransactionID:  g.str("transaction_id"),
			SubscriptionID: g.str("subscription_id"),
			UserID:         g.str("user_id"),
			CreatedAt:      g.time("created_at"),
		})
	case entity.KindExperimentExposure:
		e = entity.NewExperimentExposure(entity.ExperimentExposure{
			ExposureID:     g.str("exposure_id"),
			ExperimentID:   g.str("experiment_id"),
			UserID:         g.str("user_id"),
			FirstExposedAt: g.time("first_exposed_at"),
		})
	case entity.KindExperimentMetric:
		e = entity.NewExperimentMetric(entity.ExperimentMetric{
			MetricID:     g.str("metric_id"),
			ExperimentID: g.str("experiment_id"),
			MetricName:   g.str("metric_name"),
			ComputedAt:   g.time("computed_at"),
		})
	case entity.KindErrorEvent:
		e = entity.NewErrorEvent(entity.ErrorEvent{
			ErrorID:   g.str("error_id"),
			Timestamp: g.time("timestamp"),
		})
	case entity.KindWatchPartySession:
		e = entity.NewWatchPartySession(entity.WatchPartySession{
			PartyID:    g.str("party_id"),
			HostUserID: g.str("host_user_id"),
			ContentID:  g.str("content_id"),
			CreatedAt:  g.time("created_at"),
		})
	default:
		return nil, &DecodeError{Kind: r.Kind, Reason: "unknown entity kind"}
	}

	if g.err != nil {
		return nil, g.err
	}
	return e, nil
}

// getter reads typed values out of a record, latching the first error so the
// per-kind reconstruction above stays linear.
type getter struct {
	rec Record
	err error
}

func (g *getter) str(name string) string {
	if g.err != nil {
		return ""
	}
	v, ok := g.rec.Get(name)
	if !ok {
		g.err = &DecodeError{Kind: g.rec.Kind, Field: name, Reason: "required field is missing"}
		return ""
	}
	s, ok := v.(string)
	if !ok {
		g.err = &DecodeError{Kind: g.rec.Kind, Field: name, Reason: fmt.Sprintf("expected string, got %T", v)}
		return ""
	}
	return s
}

func (g *getter) i64(name string) int64 {
	if g.err != nil {
		return 0
	}
	v, ok := g.rec.Get(name)
	if !ok {
		g.err = &DecodeError{Kind: g.rec.Kind, Field: name, Reason: "required field is missing"}
		return 0
	}
	n, ok := v.(int64)
	if !ok {
		g.err = &DecodeError{Kind: g.rec.Kind, Field: name, Reason: fmt.Sprintf("expected long, got %T", v)}
		return 0
	}
	return n
}

func (g *getter) time(name string) time.Time {
	s := g.str(name)
	if g.err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		g.err = &DecodeError{Kind: g.rec.Kind, Field: name, Reason: "invalid timestamp", Err: err}
		return time.Time{}
	}
	return t.UTC()
}
