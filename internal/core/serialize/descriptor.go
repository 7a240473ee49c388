package serialize

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/playlake-lab/playlake/internal/core/entity"
	"github.com/playlake-lab/playlake/internal/core/enum"
)

// avroType is the Avro primitive backing a field on the wire.
type avroType string

const (
	typeString  avroType = "string"
	typeLong    avroType = "long"
	typeDouble  avroType = "double"
	typeBoolean avroType = "boolean"
)

// fieldDef is one row of an entity's field-order table: the serialized name,
// the wire type, whether absence is representable, an optional enumerant
// check applied on decode, and the accessor projecting the field value.
type fieldDef struct {
	name     string
	typ      avroType
	optional bool
	enum     func(wire string) error
	get      func(e entity.Entity) interface{}
}

// descriptor is the statically declared projection for one entity kind.
// The field slice IS the canonical order.
type descriptor struct {
	kind   entity.Kind
	fields []fieldDef
}

// from adapts a concrete-type accessor to the Entity interface.
func from[T entity.Entity](get func(T) interface{}) func(entity.Entity) interface{} {
	return func(e entity.Entity) interface{} { return get(e.(T)) }
}

// Projection value helpers. Timestamps always serialize in UTC so equal
// instants in different zones yield identical bytes.

func ts(t time.Time) interface{} { return t.UTC().Format(time.RFC3339Nano) }

func optTS(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return ts(*t)
}

func optStr(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func optI64(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func optF64(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func money(d decimal.Decimal) interface{} { return d.String() }

// strList projects a string slice as a compact JSON array string, preserving
// order. json.Marshal of []string is deterministic.
func strList(ids []string) interface{} {
	if ids == nil {
		ids = []string{}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

func enumCheck[T ~string](parse func(string) (T, error)) func(string) error {
	return func(wire string) error {
		_, err := parse(wire)
		return err
	}
}

var descriptors = map[entity.Kind]*descriptor{
	entity.KindPlaybackEvent:      playbackDescriptor,
	entity.KindInteractionEvent:   interactionDescriptor,
	entity.KindViewingSession:     sessionDescriptor,
	entity.KindContentMetadata:    contentDescriptor,
	entity.KindTVSeriesMetadata:   seriesDescriptor,
	entity.KindQoSTelemetry:       qosDescriptor,
	entity.KindUserRating:         ratingDescriptor,
	entity.KindUserList:           listDescriptor,
	entity.KindContentSimilarity:  similarityDescriptor,
	entity.KindUserSubscription:   subscriptionDescriptor,
	entity.KindPaymentTransaction: paymentDescriptor,
	entity.KindExperimentExposure: exposureDescriptor,
	entity.KindExperimentMetric:   metricDescriptor,
	entity.KindErrorEvent:         errorDescriptor,
	entity.KindWatchPartySession:  watchPartyDescriptor,
}

var playbackDescriptor = &descriptor{
	kind: entity.KindPlaybackEvent,
	fields: []fieldDef{
		{name: "event_id", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.EventID })},
		{name: "event_type", typ: typeString, enum: enumCheck(enum.ParseEventType), get: from(func(e *entity.PlaybackEvent) interface{} { return string(e.EventType) })},
		{name: "event_timestamp", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return ts(e.Timestamp) })},
		{name: "event_date", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.EventDate })},
		{name: "event_hour", typ: typeLong, get: from(func(e *entity.PlaybackEvent) interface{} { return int64(e.EventHour) })},
		{name: "user_id", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.UserID })},
		{name: "session_id", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.SessionID })},
		{name: "device_id", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.DeviceID })},
		{name: "content_id", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.ContentID })},
		{name: "content_title", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.ContentTitle })},
		{name: "content_type", typ: typeString, enum: enumCheck(enum.ParseContentType), get: from(func(e *entity.PlaybackEvent) interface{} { return string(e.ContentType) })},
		{name: "position_seconds", typ: typeLong, get: from(func(e *entity.PlaybackEvent) interface{} { return e.PositionSeconds })},
		{name: "duration_seconds", typ: typeLong, get: from(func(e *entity.PlaybackEvent) interface{} { return e.DurationSeconds })},
		{name: "video_quality", typ: typeString, enum: enumCheck(enum.ParseVideoQuality), get: from(func(e *entity.PlaybackEvent) interface{} { return string(e.VideoQuality) })},
		{name: "bitrate_kbps", typ: typeLong, optional: true, get: from(func(e *entity.PlaybackEvent) interface{} { return optI64(e.BitrateKbps) })},
		{name: "buffering_count", typ: typeLong, get: from(func(e *entity.PlaybackEvent) interface{} { return e.BufferingCount })},
		{name: "buffering_duration_seconds", typ: typeDouble, optional: true, get: from(func(e *entity.PlaybackEvent) interface{} { return optF64(e.BufferingDurationSeconds) })},
		{name: "dropped_frames", typ: typeLong, get: from(func(e *entity.PlaybackEvent) interface{} { return e.DroppedFrames })},
		{name: "playback_rate", typ: typeDouble, get: from(func(e *entity.PlaybackEvent) interface{} { return e.PlaybackRate })},
		{name: "volume_level", typ: typeLong, get: from(func(e *entity.PlaybackEvent) interface{} { return e.VolumeLevel })},
		{name: "is_fullscreen", typ: typeBoolean, get: from(func(e *entity.PlaybackEvent) interface{} { return e.IsFullscreen })},
		{name: "has_subtitles", typ: typeBoolean, get: from(func(e *entity.PlaybackEvent) interface{} { return e.HasSubtitles })},
		{name: "audio_language", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.AudioLanguage })},
		{name: "device_type", typ: typeString, enum: enumCheck(enum.ParseDeviceType), get: from(func(e *entity.PlaybackEvent) interface{} { return string(e.DeviceType) })},
		{name: "app_version", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.AppVersion })},
		{name: "network_type", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.NetworkType })},
		{name: "country_code", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.CountryCode })},
		{name: "region", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.Region })},
		{name: "city", typ: typeString, get: from(func(e *entity.PlaybackEvent) interface{} { return e.City })},
	},
}

var interactionDescriptor = &descriptor{
	kind: entity.KindInteractionEvent,
	fields: []fieldDef{
		{name: "event_id", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return e.EventID })},
		{name: "event_type", typ: typeString, enum: enumCheck(enum.ParseEventType), get: from(func(e *entity.InteractionEvent) interface{} { return string(e.EventType) })},
		{name: "event_timestamp", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return ts(e.Timestamp) })},
		{name: "event_date", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return e.EventDate })},
		{name: "event_hour", typ: typeLong, get: from(func(e *entity.InteractionEvent) interface{} { return int64(e.EventHour) })},
		{name: "user_id", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return e.UserID })},
		{name: "session_id", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return e.SessionID })},
		{name: "device_id", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return e.DeviceID })},
		{name: "device_type", typ: typeString, enum: enumCheck(enum.ParseDeviceType), get: from(func(e *entity.InteractionEvent) interface{} { return string(e.DeviceType) })},
		{name: "page_name", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return e.PageName })},
		{name: "element_id", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return e.ElementID })},
		{name: "element_type", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return e.ElementType })},
		{name: "referrer_page", typ: typeString, get: from(func(e *entity.InteractionEvent) interface{} { return e.ReferrerPage })},
		{name: "search_query", typ: typeString, optional: true, get: from(func(e *entity.InteractionEvent) interface{} { return optStr(e.SearchQuery) })},
		{name: "search_results_count", typ: typeLong, optional: true, get: from(func(e *entity.InteractionEvent) interface{} { return optI64(e.SearchResultsCount) })},
		{name: "click_position_in_list", typ: typeLong, optional: true, get: from(func(e *entity.InteractionEvent) interface{} { return optI64(e.ClickPositionInList) })},
		{name: "recommendation_id", typ: typeString, optional: true, get: from(func(e *entity.InteractionEvent) interface{} { return optStr(e.RecommendationID) })},
		{name: "recommendation_algorithm", typ: typeString, optional: true, get: from(func(e *entity.InteractionEvent) interface{} { return optStr(e.RecommendationAlgorithm) })},
	},
}

var sessionDescriptor = &descriptor{
	kind: entity.KindViewingSession,
	fields: []fieldDef{
		{name: "session_id", typ: typeString, get: from(func(s *entity.ViewingSession) interface{} { return s.SessionID })},
		{name: "user_id", typ: typeString, get: from(func(s *entity.ViewingSession) interface{} { return s.UserID })},
		{name: "content_id", typ: typeString, get: from(func(s *entity.ViewingSession) interface{} { return s.ContentID })},
		{name: "device_id", typ: typeString, get: from(func(s *entity.ViewingSession) interface{} { return s.DeviceID })},
		{name: "device_type", typ: typeString, enum: enumCheck(enum.ParseDeviceType), get: from(func(s *entity.ViewingSession) interface{} { return string(s.DeviceType) })},
		{name: "started_at", typ: typeString, get: from(func(s *entity.ViewingSession) interface{} { return ts(s.StartedAt) })},
		{name: "ended_at", typ: typeString, optional: true, get: from(func(s *entity.ViewingSession) interface{} { return optTS(s.EndedAt) })},
		{name: "total_watch_time_seconds", typ: typeLong, get: from(func(s *entity.ViewingSession) interface{} { return s.TotalWatchTimeSeconds })},
		{name: "completion_percentage", typ: typeDouble, get: from(func(s *entity.ViewingSession) interface{} { return s.CompletionPercentage })},
		{name: "pause_count", typ: typeLong, get: from(func(s *entity.ViewingSession) interface{} { return s.PauseCount })},
		{name: "seek_count", typ: typeLong, get: from(func(s *entity.ViewingSession) interface{} { return s.SeekCount })},
		{name: "rewind_count", typ: typeLong, get: from(func(s *entity.ViewingSession) interface{} { return s.RewindCount })},
		{name: "buffering_events", typ: typeLong, get: from(func(s *entity.ViewingSession) interface{} { return s.BufferingEvents })},
		{name: "average_bitrate_kbps", typ: typeLong, optional: true, get: from(func(s *entity.ViewingSession) interface{} { return optI64(s.AverageBitrateKbps) })},
		{name: "peak_quality", typ: typeString, enum: enumCheck(enum.ParseVideoQuality), get: from(func(s *entity.ViewingSession) interface{} { return string(s.PeakQuality) })},
		{name: "completed", typ: typeBoolean, get: from(func(s *entity.ViewingSession) interface{} { return s.Completed })},
		{name: "abandoned", typ: typeBoolean, get: from(func(s *entity.ViewingSession) interface{} { return s.Abandoned })},
		{name: "binge_session", typ: typeBoolean, get: from(func(s *entity.ViewingSession) interface{} { return s.BingeSession })},
	},
}

var contentDescriptor = &descriptor{
	kind: entity.KindContentMetadata,
	fields: []fieldDef{
		{name: "content_id", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return c.ContentID })},
		{name: "title", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return c.Title })},
		{name: "content_type", typ: typeString, enum: enumCheck(enum.ParseContentType), get: from(func(c *entity.ContentMetadata) interface{} { return string(c.ContentType) })},
		{name: "description", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return c.Description })},
		{name: "genres", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return strList(c.Genres) })},
		{name: "release_year", typ: typeLong, get: from(func(c *entity.ContentMetadata) interface{} { return c.ReleaseYear })},
		{name: "duration_seconds", typ: typeLong, get: from(func(c *entity.ContentMetadata) interface{} { return c.DurationSeconds })},
		{name: "maturity_rating", typ: typeString, enum: enumCheck(enum.ParseMaturityRating), get: from(func(c *entity.ContentMetadata) interface{} { return string(c.MaturityRating) })},
		{name: "language", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return c.Language })},
		{name: "director_names", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return strList(c.DirectorNames) })},
		{name: "cast_names", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return strList(c.CastNames) })},
		{name: "studio_name", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return c.StudioName })},
		{name: "thumbnail_url", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return c.ThumbnailURL })},
		{name: "trailer_url", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return c.TrailerURL })},
		{name: "available_from", typ: typeString, optional: true, get: from(func(c *entity.ContentMetadata) interface{} { return optTS(c.AvailableFrom) })},
		{name: "available_until", typ: typeString, optional: true, get: from(func(c *entity.ContentMetadata) interface{} { return optTS(c.AvailableUntil) })},
		{name: "imdb_id", typ: typeString, optional: true, get: from(func(c *entity.ContentMetadata) interface{} { return optStr(c.IMDBID) })},
		{name: "tmdb_id", typ: typeString, optional: true, get: from(func(c *entity.ContentMetadata) interface{} { return optStr(c.TMDBID) })},
		{name: "added_at", typ: typeString, get: from(func(c *entity.ContentMetadata) interface{} { return ts(c.AddedAt) })},
	},
}

var seriesDescriptor = &descriptor{
	kind: entity.KindTVSeriesMetadata,
	fields: []fieldDef{
		{name: "series_id", typ: typeString, get: from(func(s *entity.TVSeriesMetadata) interface{} { return s.SeriesID })},
		{name: "title", typ: typeString, get: from(func(s *entity.TVSeriesMetadata) interface{} { return s.Title })},
		{name: "base_content_id", typ: typeString, get: from(func(s *entity.TVSeriesMetadata) interface{} { return s.BaseContentID })},
		{name: "season_count", typ: typeLong, get: from(func(s *entity.TVSeriesMetadata) interface{} { return s.SeasonCount })},
		{name: "episode_count", typ: typeLong, get: from(func(s *entity.TVSeriesMetadata) interface{} { return s.EpisodeCount })},
		{name: "first_air_date", typ: typeString, optional: true, get: from(func(s *entity.TVSeriesMetadata) interface{} { return optTS(s.FirstAirDate) })},
		{name: "last_air_date", typ: typeString, optional: true, get: from(func(s *entity.TVSeriesMetadata) interface{} { return optTS(s.LastAirDate) })},
		{name: "is_ongoing", typ: typeBoolean, get: from(func(s *entity.TVSeriesMetadata) interface{} { return s.IsOngoing })},
		{name: "updated_at", typ: typeString, get: from(func(s *entity.TVSeriesMetadata) interface{} { return ts(s.UpdatedAt) })},
	},
}

var qosDescriptor = &descriptor{
	kind: entity.KindQoSTelemetry,
	fields: []fieldDef{
		{name: "telemetry_id", typ: typeString, get: from(func(q *entity.QoSTelemetry) interface{} { return q.TelemetryID })},
		{name: "session_id", typ: typeString, get: from(func(q *entity.QoSTelemetry) interface{} { return q.SessionID })},
		{name: "timestamp", typ: typeString, get: from(func(q *entity.QoSTelemetry) interface{} { return ts(q.Timestamp) })},
		{name: "bitrate_kbps", typ: typeLong, get: from(func(q *entity.QoSTelemetry) interface{} { return q.BitrateKbps })},
		{name: "bandwidth_kbps", typ: typeLong, optional: true, get: from(func(q *entity.QoSTelemetry) interface{} { return optI64(q.BandwidthKbps) })},
		{name: "buffer_level_seconds", typ: typeDouble, get: from(func(q *entity.QoSTelemetry) interface{} { return q.BufferLevelSeconds })},
		{name: "dropped_frames", typ: typeLong, get: from(func(q *entity.QoSTelemetry) interface{} { return q.DroppedFrames })},
		{name: "total_frames", typ: typeLong, get: from(func(q *entity.QoSTelemetry) interface{} { return q.TotalFrames })},
		{name: "cdn_provider", typ: typeString, get: from(func(q *entity.QoSTelemetry) interface{} { return q.CDNProvider })},
		{name: "cdn_pop", typ: typeString, get: from(func(q *entity.QoSTelemetry) interface{} { return q.CDNPop })},
		{name: "network_type", typ: typeString, get: from(func(q *entity.QoSTelemetry) interface{} { return q.NetworkType })},
		{name: "round_trip_time_millis", typ: typeLong, optional: true, get: from(func(q *entity.QoSTelemetry) interface{} { return optI64(q.RoundTripTimeMillis) })},
		{name: "sample_interval_seconds", typ: typeLong, get: from(func(q *entity.QoSTelemetry) interface{} { return q.SampleIntervalSeconds })},
	},
}

var ratingDescriptor = &descriptor{
	kind: entity.KindUserRating,
	fields: []fieldDef{
		{name: "rating_id", typ: typeString, get: from(func(u *entity.UserRating) interface{} { return u.RatingID })},
		{name: "user_id", typ: typeString, get: from(func(u *entity.UserRating) interface{} { return u.UserID })},
		{name: "content_id", typ: typeString, get: from(func(u *entity.UserRating) interface{} { return u.ContentID })},
		{name: "rating_value", typ: typeDouble, get: from(func(u *entity.UserRating) interface{} { return u.RatingValue })},
		{name: "review_title", typ: typeString, optional: true, get: from(func(u *entity.UserRating) interface{} { return optStr(u.ReviewTitle) })},
		{name: "review_text", typ: typeString, optional: true, get: from(func(u *entity.UserRating) interface{} { return optStr(u.ReviewText) })},
		{name: "helpful_count", typ: typeLong, get: from(func(u *entity.UserRating) interface{} { return u.HelpfulCount })},
		{name: "not_helpful_count", typ: typeLong, get: from(func(u *entity.UserRating) interface{} { return u.NotHelpfulCount })},
		{name: "is_verified_watch", typ: typeBoolean, get: from(func(u *entity.UserRating) interface{} { return u.IsVerifiedWatch })},
		{name: "rated_at", typ: typeString, get: from(func(u *entity.UserRating) interface{} { return ts(u.RatedAt) })},
	},
}

var listDescriptor = &descriptor{
	kind: entity.KindUserList,
	fields: []fieldDef{
		{name: "list_id", typ: typeString, get: from(func(l *entity.UserList) interface{} { return l.ListID })},
		{name: "user_id", typ: typeString, get: from(func(l *entity.UserList) interface{} { return l.UserID })},
		{name: "list_name", typ: typeString, get: from(func(l *entity.UserList) interface{} { return l.ListName })},
		{name: "list_type", typ: typeString, get: from(func(l *entity.UserList) interface{} { return l.ListType })},
		{name: "content_ids", typ: typeString, get: from(func(l *entity.UserList) interface{} { return strList(l.ContentIDs) })},
		{name: "item_count", typ: typeLong, get: from(func(l *entity.UserList) interface{} { return l.ItemCount })},
		{name: "is_public", typ: typeBoolean, get: from(func(l *entity.UserList) interface{} { return l.IsPublic })},
		{name: "created_at", typ: typeString, get: from(func(l *entity.UserList) interface{} { return ts(l.CreatedAt) })},
		{name: "updated_at", typ: typeString, get: from(func(l *entity.UserList) interface{} { return ts(l.UpdatedAt) })},
	},
}

var similarityDescriptor = &descriptor{
	kind: entity.KindContentSimilarity,
	fields: []fieldDef{
		{name: "content_id_a", typ: typeString, get: from(func(s *entity.ContentSimilarity) interface{} { return s.ContentIDA })},
		{name: "content_id_b", typ: typeString, get: from(func(s *entity.ContentSimilarity) interface{} { return s.ContentIDB })},
		{name: "model_version", typ: typeString, get: from(func(s *entity.ContentSimilarity) interface{} { return s.ModelVersion })},
		{name: "similarity_score", typ: typeDouble, get: from(func(s *entity.ContentSimilarity) interface{} { return s.SimilarityScore })},
		{name: "genre_score", typ: typeDouble, get: from(func(s *entity.ContentSimilarity) interface{} { return s.GenreScore })},
		{name: "cast_score", typ: typeDouble, get: from(func(s *entity.ContentSimilarity) interface{} { return s.CastScore })},
		{name: "theme_score", typ: typeDouble, get: from(func(s *entity.ContentSimilarity) interface{} { return s.ThemeScore })},
		{name: "computed_at", typ: typeString, get: from(func(s *entity.ContentSimilarity) interface{} { return ts(s.ComputedAt) })},
	},
}

var subscriptionDescriptor = &descriptor{
	kind: entity.KindUserSubscription,
	fields: []fieldDef{
		{name: "subscription_id", typ: typeString, get: from(func(s *entity.UserSubscription) interface{} { return s.SubscriptionID })},
		{name: "user_id", typ: typeString, get: from(func(s *entity.UserSubscription) interface{} { return s.UserID })},
		{name: "tier", typ: typeString, enum: enumCheck(enum.ParseSubscriptionTier), get: from(func(s *entity.UserSubscription) interface{} { return string(s.Tier) })},
		{name: "status", typ: typeString, enum: enumCheck(enum.ParseSubscriptionStatus), get: from(func(s *entity.UserSubscription) interface{} { return string(s.Status) })},
		{name: "started_at", typ: typeString, get: from(func(s *entity.UserSubscription) interface{} { return ts(s.StartedAt) })},
		{name: "current_period_start", typ: typeString, get: from(func(s *entity.UserSubscription) interface{} { return ts(s.CurrentPeriodStart) })},
		{name: "current_period_end", typ: typeString, get: from(func(s *entity.UserSubscription) interface{} { return ts(s.CurrentPeriodEnd) })},
		{name: "trial_ends_at", typ: typeString, optional: true, get: from(func(s *entity.UserSubscription) interface{} { return optTS(s.TrialEndsAt) })},
		{name: "cancelled_at", typ: typeString, optional: true, get: from(func(s *entity.UserSubscription) interface{} { return optTS(s.CancelledAt) })},
		{name: "price_amount", typ: typeString, get: from(func(s *entity.UserSubscription) interface{} { return money(s.PriceAmount) })},
		{name: "currency", typ: typeString, get: from(func(s *entity.UserSubscription) interface{} { return s.Currency })},
		{name: "billing_interval", typ: typeString, get: from(func(s *entity.UserSubscription) interface{} { return s.BillingInterval })},
		{name: "max_concurrent_streams", typ: typeLong, get: from(func(s *entity.UserSubscription) interface{} { return s.MaxConcurrentStreams })},
		{name: "max_quality", typ: typeString, enum: enumCheck(enum.ParseVideoQuality), get: from(func(s *entity.UserSubscription) interface{} { return string(s.MaxQuality) })},
		{name: "downloads_enabled", typ: typeBoolean, get: from(func(s *entity.UserSubscription) interface{} { return s.DownloadsEnabled })},
		{name: "ads_enabled", typ: typeBoolean, get: from(func(s *entity.UserSubscription) interface{} { return s.AdsEnabled })},
	},
}

var paymentDescriptor = &descriptor{
	kind: entity.KindPaymentTransaction,
	fields: []fieldDef{
		{name: "transaction_id", typ: typeString, get: from(func(t *entity.PaymentTransaction) interface{} { return t.TransactionID })},
		{name: "subscription_id", typ: typeString, get: from(func(t *entity.PaymentTransaction) interface{} { return t.SubscriptionID })},
		{name: "user_id", typ: typeString, get: from(func(t *entity.PaymentTransaction) interface{} { return t.UserID })},
		{name: "amount", typ: typeString, get: from(func(t *entity.PaymentTransaction) interface{} { return money(t.Amount) })},
		{name: "currency", typ: typeString, get: from(func(t *entity.PaymentTransaction) interface{} { return t.Currency })},
		{name: "status", typ: typeString, enum: enumCheck(enum.ParsePaymentStatus), get: from(func(t *entity.PaymentTransaction) interface{} { return string(t.Status) })},
		{name: "processor_name", typ: typeString, get: from(func(t *entity.PaymentTransaction) interface{} { return t.ProcessorName })},
		{name: "processor_reference", typ: typeString, get: from(func(t *entity.PaymentTransaction) interface{} { return t.ProcessorReference })},
		{name: "failure_code", typ: typeString, optional: true, get: from(func(t *entity.PaymentTransaction) interface{} { return optStr(t.FailureCode) })},
		{name: "failure_message", typ: typeString, optional: true, get: from(func(t *entity.PaymentTransaction) interface{} { return optStr(t.FailureMessage) })},
		{name: "retry_count", typ: typeLong, get: from(func(t *entity.PaymentTransaction) interface{} { return t.RetryCount })},
		{name: "created_at", typ: typeString, get: from(func(t *entity.PaymentTransaction) interface{} { return ts(t.CreatedAt) })},
	},
}

var exposureDescriptor = &descriptor{
	kind: entity.KindExperimentExposure,
	fields: []fieldDef{
		{name: "exposure_id", typ: typeString, get: from(func(e *entity.ExperimentExposure) interface{} { return e.ExposureID })},
		{name: "experiment_id", typ: typeString, get: from(func(e *entity.ExperimentExposure) interface{} { return e.ExperimentID })},
		{name: "user_id", typ: typeString, get: from(func(e *entity.ExperimentExposure) interface{} { return e.UserID })},
		{name: "variant", typ: typeString, enum: enumCheck(enum.ParseExperimentVariant), get: from(func(e *entity.ExperimentExposure) interface{} { return string(e.Variant) })},
		{name: "first_exposed_at", typ: typeString, get: from(func(e *entity.ExperimentExposure) interface{} { return ts(e.FirstExposedAt) })},
		{name: "last_exposed_at", typ: typeString, optional: true, get: from(func(e *entity.ExperimentExposure) interface{} { return optTS(e.LastExposedAt) })},
		{name: "exposure_count", typ: typeLong, get: from(func(e *entity.ExperimentExposure) interface{} { return e.ExposureCount })},
	},
}

var metricDescriptor = &descriptor{
	kind: entity.KindExperimentMetric,
	fields: []fieldDef{
		{name: "metric_id", typ: typeString, get: from(func(m *entity.ExperimentMetric) interface{} { return m.MetricID })},
		{name: "experiment_id", typ: typeString, get: from(func(m *entity.ExperimentMetric) interface{} { return m.ExperimentID })},
		{name: "variant", typ: typeString, enum: enumCheck(enum.ParseExperimentVariant), get: from(func(m *entity.ExperimentMetric) interface{} { return string(m.Variant) })},
		{name: "metric_name", typ: typeString, get: from(func(m *entity.ExperimentMetric) interface{} { return m.MetricName })},
		{name: "metric_value", typ: typeDouble, get: from(func(m *entity.ExperimentMetric) interface{} { return m.MetricValue })},
		{name: "sample_size", typ: typeLong, get: from(func(m *entity.ExperimentMetric) interface{} { return m.SampleSize })},
		{name: "p_value", typ: typeDouble, optional: true, get: from(func(m *entity.ExperimentMetric) interface{} { return optF64(m.PValue) })},
		{name: "confidence_low", typ: typeDouble, optional: true, get: from(func(m *entity.ExperimentMetric) interface{} { return optF64(m.ConfidenceLow) })},
		{name: "confidence_high", typ: typeDouble, optional: true, get: from(func(m *entity.ExperimentMetric) interface{} { return optF64(m.ConfidenceHigh) })},
		{name: "lift_percent", typ: typeDouble, optional: true, get: from(func(m *entity.ExperimentMetric) interface{} { return optF64(m.LiftPercent) })},
		{name: "computed_at", typ: typeString, get: from(func(m *entity.ExperimentMetric) interface{} { return ts(m.ComputedAt) })},
	},
}

var errorDescriptor = &descriptor{
	kind: entity.KindErrorEvent,
	fields: []fieldDef{
		{name: "error_id", typ: typeString, get: from(func(e *entity.ErrorEvent) interface{} { return e.ErrorID })},
		{name: "timestamp", typ: typeString, get: from(func(e *entity.ErrorEvent) interface{} { return ts(e.Timestamp) })},
		{name: "error_type", typ: typeString, get: from(func(e *entity.ErrorEvent) interface{} { return e.ErrorType })},
		{name: "error_code", typ: typeString, get: from(func(e *entity.ErrorEvent) interface{} { return e.ErrorCode })},
		{name: "error_message", typ: typeString, get: from(func(e *entity.ErrorEvent) interface{} { return e.ErrorMessage })},
		{name: "severity", typ: typeString, enum: enumCheck(enum.ParseErrorSeverity), get: from(func(e *entity.ErrorEvent) interface{} { return string(e.Severity) })},
		{name: "user_id", typ: typeString, optional: true, get: from(func(e *entity.ErrorEvent) interface{} { return optStr(e.UserID) })},
		{name: "session_id", typ: typeString, optional: true, get: from(func(e *entity.ErrorEvent) interface{} { return optStr(e.SessionID) })},
		{name: "content_id", typ: typeString, optional: true, get: from(func(e *entity.ErrorEvent) interface{} { return optStr(e.ContentID) })},
		{name: "request_id", typ: typeString, optional: true, get: from(func(e *entity.ErrorEvent) interface{} { return optStr(e.RequestID) })},
		{name: "device_type", typ: typeString, enum: enumCheck(enum.ParseDeviceType), get: from(func(e *entity.ErrorEvent) interface{} { return string(e.DeviceType) })},
		{name: "app_version", typ: typeString, get: from(func(e *entity.ErrorEvent) interface{} { return e.AppVersion })},
	},
}

var watchPartyDescriptor = &descriptor{
	kind: entity.KindWatchPartySession,
	fields: []fieldDef{
		{name: "party_id", typ: typeString, get: from(func(s *entity.WatchPartySession) interface{} { return s.PartyID })},
		{name: "host_user_id", typ: typeString, get: from(func(s *entity.WatchPartySession) interface{} { return s.HostUserID })},
		{name: "content_id", typ: typeString, get: from(func(s *entity.WatchPartySession) interface{} { return s.ContentID })},
		{name: "participant_user_ids", typ: typeString, get: from(func(s *entity.WatchPartySession) interface{} { return strList(s.ParticipantUserIDs) })},
		{name: "max_participants", typ: typeLong, get: from(func(s *entity.WatchPartySession) interface{} { return s.MaxParticipants })},
		{name: "current_position_seconds", typ: typeLong, get: from(func(s *entity.WatchPartySession) interface{} { return s.CurrentPositionSeconds })},
		{name: "is_playing", typ: typeBoolean, get: from(func(s *entity.WatchPartySession) interface{} { return s.IsPlaying })},
		{name: "is_active", typ: typeBoolean, get: from(func(s *entity.WatchPartySession) interface{} { return s.IsActive })},
	},
}
