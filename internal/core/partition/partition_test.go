package partition

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/playlake-lab/playlake/internal/core/entity"
)

func TestDerivePlaybackEventUsesSnapshottedCalendar(t *testing.T) {
	e := entity.NewPlaybackEvent(entity.PlaybackEvent{
		UserID:          "u1",
		ContentID:       "c1",
		Timestamp:       time.Date(2024, 3, 1, 23, 45, 0, 0, time.UTC),
		DurationSeconds: 7200,
	})

	key, err := Derive(e)
	require.NoError(t, err)

	date, _ := key.Value("event_date")
	hour, _ := key.Value("event_hour")
	user, _ := key.Value("user_id")
	require.Equal(t, "2024-03-01", date)
	require.Equal(t, "23", hour)
	require.Equal(t, "u1", user)
	require.Equal(t, "event_date=2024-03-01/event_hour=23/user_id=u1", key.Path())

	// Re-deriving later must not consult the wall clock.
	again, err := Derive(e)
	require.NoError(t, err)
	require.Equal(t, key, again)
}

func TestDeriveHourIsZeroPadded(t *testing.T) {
	e := entity.NewInteractionEvent(entity.InteractionEvent{
		UserID:    "u1",
		Timestamp: time.Date(2024, 3, 2, 5, 0, 0, 0, time.UTC),
	})

	key, err := Derive(e)
	require.NoError(t, err)
	require.Equal(t, "event_date=2024-03-02/event_hour=05", key.Path())
}

func TestDeriveMatchesSchemaForEveryKind(t *testing.T) {
	now := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	entities := []entity.Entity{
		entity.NewPlaybackEvent(entity.PlaybackEvent{UserID: "u1", Timestamp: now}),
		entity.NewInteractionEvent(entity.InteractionEvent{Timestamp: now}),
		entity.NewViewingSession(entity.ViewingSession{StartedAt: now}),
		entity.NewContentMetadata(entity.ContentMetadata{ContentID: "c1", AddedAt: now}),
		entity.NewTVSeriesMetadata(entity.TVSeriesMetadata{UpdatedAt: now}),
		entity.NewQoSTelemetry(entity.QoSTelemetry{Timestamp: now}),
		entity.NewUserRating(entity.UserRating{RatedAt: now}),
		entity.NewUserList(entity.UserList{CreatedAt: now, UpdatedAt: now}),
		entity.NewContentSimilarity(entity.ContentSimilarity{ContentIDA: "a", ContentIDB: "b", ComputedAt: now}),
		entity.NewUserSubscription(entity.UserSubscription{StartedAt: now}),
		entity.NewPaymentTransaction(entity.PaymentTransaction{CreatedAt: now}),
		entity.NewExperimentExposure(entity.ExperimentExposure{FirstExposedAt: now}),
		entity.NewExperimentMetric(entity.ExperimentMetric{ComputedAt: now}),
		entity.NewErrorEvent(entity.ErrorEvent{Timestamp: now}),
		entity.NewWatchPartySession(entity.WatchPartySession{CreatedAt: now}),
	}

	for _, e := range entities {
		key, err := Derive(e)
		require.NoError(t, err, "kind %s", e.Kind())

		names := make([]string, len(key.Components))
		for i, c := range key.Components {
			names[i] = c.Name
			require.NotEmpty(t, c.Value, "kind %s component %s", e.Kind(), c.Name)
		}
		require.Equal(t, Schema(e.Kind()), names, "kind %s", e.Kind())
	}
}

func TestShardDeterminism(t *testing.T) {
	key := Key{Components: []Component{{Name: "user_id", Value: "u-42"}}}
	want := Shard(key, 256)
	for i := 0; i < 100; i++ {
		require.Equal(t, want, Shard(key, 256))
	}
	require.GreaterOrEqual(t, want, 0)
	require.Less(t, want, 256)
}

func TestShardDistribution(t *testing.T) {
	// 1000 keys over 256 buckets should hit well over 100 distinct shards.
	seen := make(map[int]struct{})
	for i := 0; i < 1000; i++ {
		k := identityKey("user_id", "user-"+strconv.Itoa(i))
		seen[Shard(k, 256)] = struct{}{}
	}
	require.GreaterOrEqual(t, len(seen), 100)
}
