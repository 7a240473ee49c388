package validate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/playlake-lab/playlake/internal/core/entity"
	"github.com/playlake-lab/playlake/internal/core/enum"
)

// rules is an ordered accumulator. Every rule appends independently of the
// others' outcomes so the final list is exhaustive.
type rules struct {
	violations []Violation
}

func (r *rules) add(field, format string, args ...interface{}) {
	r.violations = append(r.violations, Violation{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *rules) requireNonEmpty(field, value string) {
	if value == "" {
		r.add(field, "%s must not be empty", field)
	}
}

func (r *rules) requireNonNegative(field string, value int64) {
	if value < 0 {
		r.add(field, "%s must not be negative", field)
	}
}

func checkPlaybackEvent(e *entity.PlaybackEvent) []Violation {
	r := &rules{}
	r.requireNonEmpty("user_id", e.UserID)
	r.requireNonEmpty("content_id", e.ContentID)
	if !e.EventType.Valid() {
		r.add("event_type", "event_type %q is not a known event type", string(e.EventType))
	}
	if !e.ContentType.Valid() {
		r.add("content_type", "content_type %q is not a known content type", string(e.ContentType))
	}
	if !e.VideoQuality.Valid() {
		r.add("video_quality", "video_quality %q is not a known quality level", string(e.VideoQuality))
	}
	if !e.DeviceType.Valid() {
		r.add("device_type", "device_type %q is not a known device type", string(e.DeviceType))
	}
	if e.DurationSeconds <= 0 {
		r.add("duration_seconds", "duration_seconds must be positive")
	}
	r.requireNonNegative("position_seconds", e.PositionSeconds)
	if e.PositionSeconds > e.DurationSeconds {
		r.add("position_seconds", "position_seconds cannot exceed duration_seconds")
	}
	if e.VolumeLevel < 0 || e.VolumeLevel > 100 {
		r.add("volume_level", "volume_level must be between 0 and 100")
	}
	if e.PlaybackRate < 0.25 || e.PlaybackRate > 3.0 {
		r.add("playback_rate", "playback_rate must be between 0.25 and 3.0")
	}
	r.requireNonNegative("buffering_count", e.BufferingCount)
	r.requireNonNegative("dropped_frames", e.DroppedFrames)
	if e.BitrateKbps != nil && *e.BitrateKbps <= 0 {
		r.add("bitrate_kbps", "bitrate_kbps must be positive when present")
	}
	if e.BufferingDurationSeconds != nil && *e.BufferingDurationSeconds < 0 {
		r.add("buffering_duration_seconds", "buffering_duration_seconds must not be negative")
	}
	checkCalendarSnapshot(r, e.EventDate, e.EventHour, e)
	return r.violations
}

func checkInteractionEvent(e *entity.InteractionEvent) []Violation {
	r := &rules{}
	r.requireNonEmpty("user_id", e.UserID)
	if !e.EventType.Valid() {
		r.add("event_type", "event_type %q is not a known event type", string(e.EventType))
	}
	if !e.DeviceType.Valid() {
		r.add("device_type", "device_type %q is not a known device type", string(e.DeviceType))
	}
	if e.SearchResultsCount != nil && *e.SearchResultsCount < 0 {
		r.add("search_results_count", "search_results_count must not be negative")
	}
	if e.ClickPositionInList != nil && *e.ClickPositionInList < 1 {
		r.add("click_position_in_list", "click_position_in_list must be at least 1")
	}
	if e.SearchQuery == nil && e.SearchResultsCount != nil {
		r.add("search_query", "search_results_count requires a search_query")
	}
	checkCalendarSnapshot(r, e.EventDate, e.EventHour, e)
	return r.violations
}

func checkViewingSession(s *entity.ViewingSession) []Violation {
	r := &rules{}
	r.requireNonEmpty("session_id", s.SessionID)
	r.requireNonEmpty("user_id", s.UserID)
	r.requireNonEmpty("content_id", s.ContentID)
	r.requireNonNegative("total_watch_time_seconds", s.TotalWatchTimeSeconds)
	if s.CompletionPercentage < 0 || s.CompletionPercentage > 100 {
		r.add("completion_percentage", "completion_percentage must be between 0 and 100")
	}
	if s.EndedAt != nil && s.EndedAt.Before(s.StartedAt) {
		r.add("ended_at", "ended_at must not precede started_at")
	}
	if s.Completed && s.Abandoned {
		r.add("completed", "a session cannot be both completed and abandoned")
	}
	r.requireNonNegative("pause_count", s.PauseCount)
	r.requireNonNegative("seek_count", s.SeekCount)
	r.requireNonNegative("rewind_count", s.RewindCount)
	r.requireNonNegative("buffering_events", s.BufferingEvents)
	if s.AverageBitrateKbps != nil && *s.AverageBitrateKbps <= 0 {
		r.add("average_bitrate_kbps", "average_bitrate_kbps must be positive when present")
	}
	return r.violations
}

func checkContentMetadata(c *entity.ContentMetadata) []Violation {
	r := &rules{}
	r.requireNonEmpty("content_id", c.ContentID)
	r.requireNonEmpty("title", c.Title)
	if !c.ContentType.Valid() {
		r.add("content_type", "content_type %q is not a known content type", string(c.ContentType))
	}
	if !c.MaturityRating.Valid() {
		r.add("maturity_rating", "maturity_rating %q is not a known rating", string(c.MaturityRating))
	}
	// First public film screening was 1888; anything earlier is bad data.
	if c.ReleaseYear < 1888 {
		r.add("release_year", "release_year must be 1888 or later")
	}
	if c.DurationSeconds <= 0 {
		r.add("duration_seconds", "duration_seconds must be positive")
	}
	if c.AvailableFrom != nil && c.AvailableUntil != nil && c.AvailableUntil.Before(*c.AvailableFrom) {
		r.add("available_until", "available_until must not precede available_from")
	}
	return r.violations
}

func checkTVSeriesMetadata(s *entity.TVSeriesMetadata) []Violation {
	r := &rules{}
	r.requireNonEmpty("series_id", s.SeriesID)
	r.requireNonEmpty("title", s.Title)
	r.requireNonEmpty("base_content_id", s.BaseContentID)
	if s.SeasonCount < 1 {
		r.add("season_count", "season_count must be at least 1")
	}
	if s.EpisodeCount < s.SeasonCount {
		r.add("episode_count", "episode_count must be at least season_count")
	}
	if s.FirstAirDate != nil && s.LastAirDate != nil && s.LastAirDate.Before(*s.FirstAirDate) {
		r.add("last_air_date", "last_air_date must not precede first_air_date")
	}
	return r.violations
}

func checkQoSTelemetry(q *entity.QoSTelemetry) []Violation {
	r := &rules{}
	r.requireNonEmpty("telemetry_id", q.TelemetryID)
	r.requireNonEmpty("session_id", q.SessionID)
	r.requireNonNegative("bitrate_kbps", q.BitrateKbps)
	if q.BufferLevelSeconds < 0 {
		r.add("buffer_level_seconds", "buffer_level_seconds must not be negative")
	}
	r.requireNonNegative("dropped_frames", q.DroppedFrames)
	r.requireNonNegative("total_frames", q.TotalFrames)
	if q.DroppedFrames > q.TotalFrames {
		r.add("dropped_frames", "dropped_frames cannot exceed total_frames")
	}
	if q.BandwidthKbps != nil && *q.BandwidthKbps <= 0 {
		r.add("bandwidth_kbps", "bandwidth_kbps must be positive when present")
	}
	if q.RoundTripTimeMillis != nil && *q.RoundTripTimeMillis < 0 {
		r.add("round_trip_time_millis", "round_trip_time_millis must not be negative")
	}
	if q.SampleIntervalSeconds <= 0 {
		r.add("sample_interval_seconds", "sample_interval_seconds must be positive")
	}
	return r.violations
}

func checkUserRating(u *entity.UserRating) []Violation {
	r := &rules{}
	r.requireNonEmpty("rating_id", u.RatingID)
	r.requireNonEmpty("user_id", u.UserID)
	r.requireNonEmpty("content_id", u.ContentID)
	if u.RatingValue < 0.5 || u.RatingValue > 5.0 {
		r.add("rating_value", "rating_value must be between 0.5 and 5.0")
	}
	r.requireNonNegative("helpful_count", u.HelpfulCount)
	r.requireNonNegative("not_helpful_count", u.NotHelpfulCount)
	if u.ReviewText == nil && u.ReviewTitle != nil {
		r.add("review_text", "review_title requires review_text")
	}
	return r.violations
}

func checkUserList(l *entity.UserList) []Violation {
	r := &rules{}
	r.requireNonEmpty("list_id", l.ListID)
	r.requireNonEmpty("user_id", l.UserID)
	r.requireNonEmpty("list_name", l.ListName)
	unique := make(map[string]struct{}, len(l.ContentIDs))
	for _, id := range l.ContentIDs {
		unique[id] = struct{}{}
	}
	if l.ItemCount != int64(len(unique)) {
		r.add("item_count", "item_count does not match the number of unique content_ids")
	}
	if l.UpdatedAt.Before(l.CreatedAt) {
		r.add("updated_at", "updated_at must not precede created_at")
	}
	return r.violations
}

func checkContentSimilarity(s *entity.ContentSimilarity) []Violation {
	r := &rules{}
	r.requireNonEmpty("content_id_a", s.ContentIDA)
	r.requireNonEmpty("content_id_b", s.ContentIDB)
	r.requireNonEmpty("model_version", s.ModelVersion)
	if s.ContentIDA != "" && s.ContentIDA == s.ContentIDB {
		r.add("content_id_b", "content_id_b must differ from content_id_a")
	}
	checkUnitScore(r, "similarity_score", s.SimilarityScore)
	checkUnitScore(r, "genre_score", s.GenreScore)
	checkUnitScore(r, "cast_score", s.CastScore)
	checkUnitScore(r, "theme_score", s.ThemeScore)
	return r.violations
}

// checkUserSubscription evaluates every rule independently. The success path
// always validates pricing, dates, and stream count; none of these checks is
// conditional on another's outcome.
func checkUserSubscription(s *entity.UserSubscription) []Violation {
	r := &rules{}
	r.requireNonEmpty("subscription_id", s.SubscriptionID)
	r.requireNonEmpty("user_id", s.UserID)
	if !s.Tier.Valid() {
		r.add("tier", "tier %q is not a known subscription tier", string(s.Tier))
	}
	if !s.Status.Valid() {
		r.add("status", "status %q is not a known subscription status", string(s.Status))
	}
	if s.PriceAmount.LessThan(decimal.Zero) {
		r.add("price_amount", "price_amount must not be negative")
	}
	if s.CurrentPeriodEnd.Before(s.CurrentPeriodStart) {
		r.add("current_period_end", "current_period_end must not precede current_period_start")
	}
	if s.MaxConcurrentStreams < 1 {
		r.add("max_concurrent_streams", "max_concurrent_streams must be at least 1")
	}
	if !s.MaxQuality.Valid() {
		r.add("max_quality", "max_quality %q is not a known quality level", string(s.MaxQuality))
	}
	r.requireNonEmpty("currency", s.Currency)
	return r.violations
}

func checkPaymentTransaction(t *entity.PaymentTransaction) []Violation {
	r := &rules{}
	r.requireNonEmpty("transaction_id", t.TransactionID)
	r.requireNonEmpty("subscription_id", t.SubscriptionID)
	r.requireNonEmpty("user_id", t.UserID)
	if t.Amount.LessThan(decimal.Zero) {
		r.add("amount", "amount must not be negative")
	}
	r.requireNonEmpty("currency", t.Currency)
	if !t.Status.Valid() {
		r.add("status", "status %q is not a known payment status", string(t.Status))
	}
	r.requireNonNegative("retry_count", t.RetryCount)
	if t.Status == enum.PaymentFailed && t.FailureCode == nil {
		r.add("failure_code", "failure_code is required for failed transactions")
	}
	return r.violations
}

func checkExperimentExposure(e *entity.ExperimentExposure) []Violation {
	r := &rules{}
	r.requireNonEmpty("exposure_id", e.ExposureID)
	r.requireNonEmpty("experiment_id", e.ExperimentID)
	r.requireNonEmpty("user_id", e.UserID)
	if !e.Variant.Valid() {
		r.add("variant", "variant %q is not a known experiment variant", string(e.Variant))
	}
	if e.ExposureCount < 1 {
		r.add("exposure_count", "exposure_count must be at least 1")
	}
	if e.LastExposedAt != nil && e.LastExposedAt.Before(e.FirstExposedAt) {
		r.add("last_exposed_at", "last_exposed_at must not precede first_exposed_at")
	}
	return r.violations
}

func checkExperimentMetric(m *entity.ExperimentMetric) []Violation {
	r := &rules{}
	r.requireNonEmpty("metric_id", m.MetricID)
	r.requireNonEmpty("experiment_id", m.ExperimentID)
	r.requireNonEmpty("metric_name", m.MetricName)
	if !m.Variant.Valid() {
		r.add("variant", "variant %q is not a known experiment variant", string(m.Variant))
	}
	r.requireNonNegative("sample_size", m.SampleSize)
	if m.PValue != nil && (*m.PValue < 0 || *m.PValue > 1) {
		r.add("p_value", "p_value must be between 0 and 1")
	}
	if m.ConfidenceLow != nil && m.ConfidenceHigh != nil && *m.ConfidenceLow > *m.ConfidenceHigh {
		r.add("confidence_low", "confidence_low must not exceed confidence_high")
	}
	if (m.ConfidenceLow == nil) != (m.ConfidenceHigh == nil) {
		r.add("confidence_low", "confidence bounds must be present together")
	}
	return r.violations
}

func checkErrorEvent(e *entity.ErrorEvent) []Violation {
	r := &rules{}
	r.requireNonEmpty("error_id", e.ErrorID)
	r.requireNonEmpty("error_type", e.ErrorType)
	r.requireNonEmpty("error_message", e.ErrorMessage)
	if !e.Severity.Valid() {
		r.add("severity", "severity %q is not a known severity", string(e.Severity))
	}
	if !e.DeviceType.Valid() {
		r.add("device_type", "device_type %q is not a known device type", string(e.DeviceType))
	}
	return r.violations
}

func checkWatchPartySession(s *entity.WatchPartySession) []Violation {
	r := &rules{}
	r.requireNonEmpty("party_id", s.PartyID)
	r.requireNonEmpty("host_user_id", s.HostUserID)
	seen := make(map[string]struct{}, len(s.ParticipantUserIDs))
	var hasHost, hasDup bool
	for _, id := range s.ParticipantUserIDs {
		if id == s.HostUserID {
			hasHost = true
		}
		if _, dup := seen[id]; dup {
			hasDup = true
		}
		seen[id] = struct{}{}
	}
	if hasHost {
		r.add("participant_user_ids", "participant_user_ids must not contain the host")
	}
	if hasDup {
		r.add("participant_user_ids", "participant_user_ids must not contain duplicates")
	}
	if s.MaxParticipants < 1 {
		r.add("max_participants", "max_participants must be at least 1")
	}
	if int64(len(s.ParticipantUserIDs)) > s.MaxParticipants {
		r.add("participant_user_ids", "participant count exceeds max_participants")
	}
	r.requireNonNegative("current_position_seconds", s.CurrentPositionSeconds)
	return r.violations
}

// checkCalendarSnapshot verifies the snapshotted partition fields still match
// the entity's own timestamp. A mismatch means the record was hand-built
// without the constructor or tampered with after construction.
func checkCalendarSnapshot(r *rules, date string, hour int, e entity.Entity) {
	utc := e.OccurredAt().UTC()
	if date != utc.Format("2006-01-02") {
		r.add("event_date", "event_date does not match the event timestamp")
	}
	if hour != utc.Hour() {
		r.add("event_hour", "event_hour does not match the event timestamp")
	}
}

func checkUnitScore(r *rules, field string, v float64) {
	if v < 0 || v > 1 {
		r.add(field, "%s must be between 0 and 1", field)
	}
}
