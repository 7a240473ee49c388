package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/playlake-lab/playlake/internal/core/enum"
)

func TestNewPlaybackEventSnapshotsCalendarFromOwnTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 23, 45, 0, 0, time.UTC)
	e := NewPlaybackEvent(PlaybackEvent{
		UserID:          "u1",
		ContentID:       "c1",
		Timestamp:       ts,
		DurationSeconds: 7200,
		// Caller-supplied partition fields must be overwritten.
		EventDate: "1999-01-01",
		EventHour: 4,
	})

	require.Equal(t, "2024-03-01", e.EventDate)
	require.Equal(t, 23, e.EventHour)
	require.Equal(t, ts, e.Timestamp)
}

func TestNewPlaybackEventNormalizesNonUTCTimestamps(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 04:30+05:00 is 23:30 UTC the previous day.
	e := NewPlaybackEvent(PlaybackEvent{
		Timestamp: time.Date(2024, 3, 2, 4, 30, 0, 0, loc),
	})

	require.Equal(t, "2024-03-01", e.EventDate)
	require.Equal(t, 23, e.EventHour)
	require.Equal(t, time.UTC, e.Timestamp.Location())
}

func TestNewPlaybackEventDefaults(t *testing.T) {
	e := NewPlaybackEvent(PlaybackEvent{UserID: "u1", ContentID: "c1"})

	require.NotEmpty(t, e.EventID)
	require.NotEmpty(t, e.SessionID)
	require.Equal(t, enum.EventPlayStart, e.EventType)
	require.Equal(t, DefaultVideoQuality, e.VideoQuality)
	require.Equal(t, DefaultNetworkType, e.NetworkType)
	require.Equal(t, DefaultPlaybackRate, e.PlaybackRate)
	require.Nil(t, e.BitrateKbps, "absent measurement must stay absent, not zero")
}

func TestGeneratedIDsAreUniqueAndCallerIDsKept(t *testing.T) {
	a := NewPlaybackEvent(PlaybackEvent{})
	b := NewPlaybackEvent(PlaybackEvent{})
	require.NotEqual(t, a.EventID, b.EventID)

	c := NewPlaybackEvent(PlaybackEvent{EventID: "fixed-id"})
	require.Equal(t, "fixed-id", c.EventID)
}

func TestNewUserListDeduplicatesAndCounts(t *testing.T) {
	l := NewUserList(UserList{
		UserID:     "u1",
		ListName:   "favorites",
		ContentIDs: []string{"a", "a", "b", "c", "b"},
	})

	require.Equal(t, []string{"a", "b", "c"}, l.ContentIDs)
	require.EqualValues(t, 3, l.ItemCount)
	require.Equal(t, DefaultListType, l.ListType)
}

func TestNewWatchPartySessionExcludesHostFromParticipants(t *testing.T) {
	s := NewWatchPartySession(WatchPartySession{
		HostUserID:         "host",
		ParticipantUserIDs: []string{"host", "p1", "p2", "p1"},
	})

	require.Equal(t, []string{"p1", "p2"}, s.ParticipantUserIDs)
	require.EqualValues(t, DefaultMaxParticipants, s.MaxParticipants)
}

func TestNewUserSubscriptionDefaults(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s := NewUserSubscription(UserSubscription{
		UserID:      "u1",
		StartedAt:   start,
		PriceAmount: decimal.RequireFromString("15.99"),
	})

	require.NotEmpty(t, s.SubscriptionID)
	require.Equal(t, DefaultCurrency, s.Currency)
	require.Equal(t, DefaultBillingInterval, s.BillingInterval)
	require.Equal(t, start, s.CurrentPeriodStart)
	require.Equal(t, start.AddDate(0, 1, 0), s.CurrentPeriodEnd)
	require.EqualValues(t, 1, s.MaxConcurrentStreams)
}

func TestContentSimilarityCompositeIdentity(t *testing.T) {
	s := NewContentSimilarity(ContentSimilarity{
		ContentIDA:      "ca",
		ContentIDB:      "cb",
		ModelVersion:    "v3",
		SimilarityScore: 0.82,
	})

	require.Equal(t, "ca:cb:v3", s.EntityID())
}

func TestEveryKindIsCoveredByAConstructor(t *testing.T) {
	now := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	entities := []Entity{
		NewPlaybackEvent(PlaybackEvent{Timestamp: now}),
		NewInteractionEvent(InteractionEvent{Timestamp: now}),
		NewViewingSession(ViewingSession{StartedAt: now}),
		NewContentMetadata(ContentMetadata{ContentID: "c1", AddedAt: now}),
		NewTVSeriesMetadata(TVSeriesMetadata{UpdatedAt: now}),
		NewQoSTelemetry(QoSTelemetry{Timestamp: now}),
		NewUserRating(UserRating{RatedAt: now}),
		NewUserList(UserList{CreatedAt: now, UpdatedAt: now}),
		NewContentSimilarity(ContentSimilarity{ContentIDA: "a", ContentIDB: "b", ComputedAt: now}),
		NewUserSubscription(UserSubscription{StartedAt: now}),
		NewPaymentTransaction(PaymentTransaction{CreatedAt: now}),
		NewExperimentExposure(ExperimentExposure{FirstExposedAt: now}),
		NewExperimentMetric(ExperimentMetric{ComputedAt: now}),
		NewErrorEvent(ErrorEvent{Timestamp: now}),
		NewWatchPartySession(WatchPartySession{CreatedAt: now}),
	}

	seen := make(map[Kind]bool)
	for _, e := range entities {
		require.NotEmpty(t, e.EntityID(), "kind %s", e.Kind())
		require.Equal(t, now, e.OccurredAt(), "kind %s", e.Kind())
		seen[e.Kind()] = true
	}
	for _, k := range Kinds() {
		require.True(t, seen[k], "missing constructor coverage for %s", k)
	}
}
