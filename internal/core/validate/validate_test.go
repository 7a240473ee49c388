package validate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/playlake-lab/playlake/internal/core/entity"
	"github.com/playlake-lab/playlake/internal/core/enum"
)

func validPlayback() *entity.PlaybackEvent {
	return entity.NewPlaybackEvent(entity.PlaybackEvent{
		UserID:          "u1",
		ContentID:       "c1",
		Timestamp:       time.Date(2024, 3, 1, 23, 45, 0, 0, time.UTC),
		PositionSeconds: 300,
		DurationSeconds: 7200,
	})
}

func TestPlaybackEventPositionBeyondDuration(t *testing.T) {
	e := validPlayback()
	e.PositionSeconds = 7300

	violations := Check(e)
	require.Len(t, violations, 1)
	require.Equal(t, "position_seconds cannot exceed duration_seconds", violations[0].Message)
	require.Equal(t, "position_seconds", violations[0].Field)

	// Correcting the position admits the record.
	e.PositionSeconds = 300
	require.Empty(t, Check(e))
	require.NoError(t, Admissible(e))
}

func TestPlaybackEventPositionEqualToDurationIsAllowed(t *testing.T) {
	e := validPlayback()
	e.PositionSeconds = e.DurationSeconds
	require.Empty(t, Check(e))
}

func TestPlaybackEventReportsEveryViolation(t *testing.T) {
	e := validPlayback()
	e.UserID = ""
	e.ContentID = ""
	e.DurationSeconds = 0
	e.PositionSeconds = -1
	e.VolumeLevel = 250
	e.PlaybackRate = 10

	violations := Check(e)
	fields := make([]string, len(violations))
	for i, v := range violations {
		fields[i] = v.Field
	}
	require.Equal(t, []string{
		"user_id",
		"content_id",
		"duration_seconds",
		"position_seconds",
		"volume_level",
		"playback_rate",
	}, fields)
}

func TestCheckIsDeterministic(t *testing.T) {
	e := validPlayback()
	e.UserID = ""
	e.PlaybackRate = 99

	first := Check(e)
	second := Check(e)
	require.Equal(t, first, second)
	require.NotEmpty(t, first)
}

func TestCalendarSnapshotMismatchIsReported(t *testing.T) {
	e := validPlayback()
	e.EventDate = "2023-12-31"
	e.EventHour = 4

	violations := Check(e)
	require.Len(t, violations, 2)
	require.Equal(t, "event_date", violations[0].Field)
	require.Equal(t, "event_hour", violations[1].Field)
}

func TestSubscriptionReportsAllViolationsNotJustTheFirst(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s := entity.NewUserSubscription(entity.UserSubscription{
		UserID:             "u1",
		StartedAt:          start,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   start.AddDate(0, -1, 0),
		PriceAmount:        decimal.RequireFromString("-5.00"),
	})

	violations := Check(s)
	require.Len(t, violations, 2)
	require.Equal(t, "price_amount must not be negative", violations[0].Message)
	require.Equal(t, "current_period_end must not precede current_period_start", violations[1].Message)
}

func TestSubscriptionRulesRunEvenWithoutUserID(t *testing.T) {
	// The user_id check must not gate the rest of the rule set.
	s := entity.NewUserSubscription(entity.UserSubscription{
		PriceAmount: decimal.RequireFromString("-1.00"),
	})
	s.MaxConcurrentStreams = 0

	violations := Check(s)
	fields := make(map[string]bool)
	for _, v := range violations {
		fields[v.Field] = true
	}
	require.True(t, fields["user_id"])
	require.True(t, fields["price_amount"])
	require.True(t, fields["max_concurrent_streams"])
}

func TestUserListCountMismatch(t *testing.T) {
	l := entity.NewUserList(entity.UserList{
		UserID:     "u1",
		ListName:   "favorites",
		ContentIDs: []string{"a", "b"},
	})
	require.Empty(t, Check(l))

	// Hand-built record bypassing the constructor: duplicates counted twice.
	bad := &entity.UserList{
		ListID:     "l1",
		UserID:     "u1",
		ListName:   "favorites",
		ContentIDs: []string{"a", "a", "b"},
		ItemCount:  3,
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	violations := Check(bad)
	require.Len(t, violations, 1)
	require.Equal(t, "item_count does not match the number of unique content_ids", violations[0].Message)
}

func TestWatchPartyRules(t *testing.T) {
	s := entity.NewWatchPartySession(entity.WatchPartySession{
		HostUserID:         "host",
		ParticipantUserIDs: []string{"p1", "p2"},
	})
	require.Empty(t, Check(s))

	s.ParticipantUserIDs = []string{"host", "p1", "p1"}
	violations := Check(s)
	msgs := (&Failure{Kind: s.Kind(), Violations: violations}).Messages()
	require.Contains(t, msgs, "participant_user_ids must not contain the host")
	require.Contains(t, msgs, "participant_user_ids must not contain duplicates")

	s.ParticipantUserIDs = []string{"p1", "p2", "p3"}
	s.MaxParticipants = 2
	violations = Check(s)
	require.Len(t, violations, 1)
	require.Equal(t, "participant count exceeds max_participants", violations[0].Message)
}

func TestPaymentFailureInfoRequiredWhenFailed(t *testing.T) {
	p := entity.NewPaymentTransaction(entity.PaymentTransaction{
		SubscriptionID: "s1",
		UserID:         "u1",
		Amount:         decimal.RequireFromString("9.99"),
		Status:         enum.PaymentFailed,
	})
	violations := Check(p)
	require.Len(t, violations, 1)
	require.Equal(t, "failure_code", violations[0].Field)

	code := "card_declined"
	p.FailureCode = &code
	require.Empty(t, Check(p))
}

func TestFailureErrorJoinsAllMessages(t *testing.T) {
	e := validPlayback()
	e.UserID = ""
	e.ContentID = ""

	err := Admissible(e)
	require.Error(t, err)
	var failure *Failure
	require.ErrorAs(t, err, &failure)
	require.Equal(t, entity.KindPlaybackEvent, failure.Kind)
	require.Equal(t, []string{
		"user_id must not be empty",
		"content_id must not be empty",
	}, failure.Messages())
	require.Contains(t, failure.Error(), "user_id must not be empty; content_id must not be empty")
	require.Equal(t, []string{"user_id", "content_id"}, failure.Details()["fields"])
}

func TestQoSDroppedFramesCannotExceedTotal(t *testing.T) {
	q := entity.NewQoSTelemetry(entity.QoSTelemetry{
		SessionID:     "s1",
		BitrateKbps:   4500,
		TotalFrames:   100,
		DroppedFrames: 250,
	})
	violations := Check(q)
	require.Len(t, violations, 1)
	require.Equal(t, "dropped_frames cannot exceed total_frames", violations[0].Message)
}

func TestExperimentMetricSignificanceBounds(t *testing.T) {
	p := 1.5
	lo := 0.4
	m := entity.NewExperimentMetric(entity.ExperimentMetric{
		ExperimentID: "exp1",
		MetricName:   "watch_time",
		PValue:       &p,
		ConfidenceLow: &lo,
	})
	violations := Check(m)
	fields := make([]string, len(violations))
	for i, v := range violations {
		fields[i] = v.Field
	}
	require.Equal(t, []string{"p_value", "confidence_low"}, fields)
}
