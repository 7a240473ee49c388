package serialize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/playlake-lab/playlake/internal/core/entity"
	"github.com/playlake-lab/playlake/internal/core/enum"
	"github.com/playlake-lab/playlake/internal/core/partition"
)

func samplePlayback() *entity.PlaybackEvent {
	bitrate := int64(5800)
	return entity.NewPlaybackEvent(entity.PlaybackEvent{
		EventID:         "ev-1",
		EventType:       enum.EventSeek,
		Timestamp:       time.Date(2024, 3, 1, 23, 45, 0, 0, time.UTC),
		UserID:          "u1",
		SessionID:       "sess-1",
		ContentID:       "c1",
		ContentTitle:    "The Long Voyage",
		PositionSeconds: 300,
		DurationSeconds: 7200,
		BitrateKbps:     &bitrate,
		CountryCode:     "US",
	})
}

func TestSerializeUsesDeclaredFieldOrder(t *testing.T) {
	rec, err := Serialize(samplePlayback())
	require.NoError(t, err)
	require.Equal(t, entity.KindPlaybackEvent, rec.Kind)

	names := make([]string, len(rec.Fields))
	for i, f := range rec.Fields {
		names[i] = f.Name
	}
	// The head of the canonical order; the table, not construction order or
	// alphabetical order, decides.
	require.Equal(t, []string{
		"event_id", "event_type", "event_timestamp", "event_date", "event_hour",
		"user_id", "session_id", "device_id", "content_id", "content_title",
	}, names[:10])

	pos, _ := rec.Get("position_seconds")
	dur, _ := rec.Get("duration_seconds")
	require.EqualValues(t, 300, pos)
	require.EqualValues(t, 7200, dur)

	et, _ := rec.Get("event_type")
	require.Equal(t, "seek", et, "enumerants serialize to wire values")

	date, _ := rec.Get("event_date")
	hour, _ := rec.Get("event_hour")
	require.Equal(t, "2024-03-01", date)
	require.EqualValues(t, 23, hour)
}

func TestSerializeKeepsAbsentOptionalsNil(t *testing.T) {
	e := samplePlayback()
	e.BitrateKbps = nil

	rec, err := Serialize(e)
	require.NoError(t, err)

	v, ok := rec.Get("bitrate_kbps")
	require.True(t, ok)
	require.Nil(t, v, "absent measurement must serialize as null, not zero")

	v, _ = rec.Get("buffering_duration_seconds")
	require.Nil(t, v)
}

func TestEncodeIsDeterministic(t *testing.T) {
	rec, err := Serialize(samplePlayback())
	require.NoError(t, err)

	first, err := Encode(rec)
	require.NoError(t, err)
	second, err := Encode(rec)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// An equal entity built independently must encode identically.
	other, err := Serialize(samplePlayback())
	require.NoError(t, err)
	third, err := Encode(other)
	require.NoError(t, err)
	require.Equal(t, first, third)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 4, 12, 30, 15, 0, time.UTC)
	ends := now.AddDate(0, 0, 14)
	review := "Gripping from the first scene."
	pval := 0.04

	entities := []entity.Entity{
		samplePlayback(),
		entity.NewInteractionEvent(entity.InteractionEvent{UserID: "u1", EventType: enum.EventSearch, Timestamp: now}),
		entity.NewViewingSession(entity.ViewingSession{UserID: "u1", ContentID: "c1", StartedAt: now, CompletionPercentage: 87.5}),
		entity.NewContentMetadata(entity.ContentMetadata{
			ContentID: "c1", Title: "The Long Voyage", MaturityRating: enum.RatingPG13,
			Genres: []string{"drama", "adventure"}, ReleaseYear: 2019, DurationSeconds: 7200, AddedAt: now,
		}),
		entity.NewTVSeriesMetadata(entity.TVSeriesMetadata{Title: "Harbor Lights", BaseContentID: "c9", SeasonCount: 3, EpisodeCount: 24, UpdatedAt: now}),
		entity.NewQoSTelemetry(entity.QoSTelemetry{SessionID: "sess-1", Timestamp: now, BitrateKbps: 4500, TotalFrames: 1800}),
		entity.NewUserRating(entity.UserRating{UserID: "u1", ContentID: "c1", RatingValue: 4.5, ReviewText: &review, RatedAt: now}),
		entity.NewUserList(entity.UserList{UserID: "u1", ListName: "favorites", ContentIDs: []string{"c1", "c2"}, CreatedAt: now, UpdatedAt: now}),
		entity.NewContentSimilarity(entity.ContentSimilarity{ContentIDA: "c1", ContentIDB: "c2", SimilarityScore: 0.82, ComputedAt: now}),
		entity.NewUserSubscription(entity.UserSubscription{
			UserID: "u1", StartedAt: now, Tier: enum.TierPremium,
			PriceAmount: decimal.RequireFromString("15.99"), TrialEndsAt: &ends,
		}),
		entity.NewPaymentTransaction(entity.PaymentTransaction{SubscriptionID: "sub-1", UserID: "u1", Amount: decimal.RequireFromString("15.99"), Status: enum.PaymentSucceeded, CreatedAt: now}),
		entity.NewExperimentExposure(entity.ExperimentExposure{ExperimentID: "exp-1", UserID: "u1", Variant: enum.VariantTreatmentB, FirstExposedAt: now}),
		entity.NewExperimentMetric(entity.ExperimentMetric{ExperimentID: "exp-1", MetricName: "watch_time", MetricValue: 1234.5, SampleSize: 10000, PValue: &pval, ComputedAt: now}),
		entity.NewErrorEvent(entity.ErrorEvent{ErrorType: "playback_error", ErrorCode: "E1042", ErrorMessage: "manifest fetch failed", Timestamp: now}),
		entity.NewWatchPartySession(entity.WatchPartySession{HostUserID: "u1", ContentID: "c1", ParticipantUserIDs: []string{"u2", "u3"}, CreatedAt: now}),
	}

	for _, e := range entities {
		t.Run(string(e.Kind()), func(t *testing.T) {
			rec, err := Serialize(e)
			require.NoError(t, err)

			data, err := Encode(rec)
			require.NoError(t, err)

			decoded, err := Decode(e.Kind(), data)
			require.NoError(t, err)
			require.Equal(t, rec, decoded, "decode(encode(serialize(e))) must equal serialize(e)")
		})
	}
}

func TestDecodeRejectsUnknownEnumerant(t *testing.T) {
	rec, err := Serialize(samplePlayback())
	require.NoError(t, err)

	// Sneak an off-vocabulary wire value past Encode, which does not police
	// enumerants; Decode must.
	for i, f := range rec.Fields {
		if f.Name == "video_quality" {
			rec.Fields[i].Value = "presumably_16K"
		}
	}
	data, err := Encode(rec)
	require.NoError(t, err)

	_, err = Decode(entity.KindPlaybackEvent, data)
	require.Error(t, err)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "video_quality", decodeErr.Field)
	var unknown *enum.UnknownValueError
	require.ErrorAs(t, err, &unknown)
}

func TestDecodeRejectsTruncatedPayload(t *testing.T) {
	rec, err := Serialize(samplePlayback())
	require.NoError(t, err)
	data, err := Encode(rec)
	require.NoError(t, err)

	_, err = Decode(entity.KindPlaybackEvent, data[:len(data)/2])
	require.Error(t, err)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestMoneyFieldsUseCanonicalDecimalStrings(t *testing.T) {
	s := entity.NewUserSubscription(entity.UserSubscription{
		UserID:      "u1",
		PriceAmount: decimal.RequireFromString("15.99"),
	})
	rec, err := Serialize(s)
	require.NoError(t, err)

	price, _ := rec.Get("price_amount")
	require.Equal(t, "15.99", price)
}

func TestRehydrateRestoresPartitionInputs(t *testing.T) {
	entities := []entity.Entity{
		samplePlayback(),
		entity.NewInteractionEvent(entity.InteractionEvent{UserID: "u1", Timestamp: time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC)}),
		entity.NewContentSimilarity(entity.ContentSimilarity{ContentIDA: "c1", ContentIDB: "c2", ComputedAt: time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC)}),
		entity.NewUserSubscription(entity.UserSubscription{UserID: "u1", StartedAt: time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC)}),
	}

	for _, e := range entities {
		t.Run(string(e.Kind()), func(t *testing.T) {
			rec, err := Serialize(e)
			require.NoError(t, err)
			data, err := Encode(rec)
			require.NoError(t, err)
			decoded, err := Decode(e.Kind(), data)
			require.NoError(t, err)

			restored, err := Rehydrate(decoded)
			require.NoError(t, err)
			require.Equal(t, e.Kind(), restored.Kind())
			require.Equal(t, e.EntityID(), restored.EntityID())
			require.Equal(t, e.OccurredAt(), restored.OccurredAt())

			wantKey, err := partition.Derive(e)
			require.NoError(t, err)
			gotKey, err := partition.Derive(restored)
			require.NoError(t, err)
			require.Equal(t, wantKey, gotKey)
		})
	}
}
