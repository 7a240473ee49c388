// Package enum defines the closed vocabularies shared by every entity in the
// pipeline. Each enumerant's Go value IS its wire value: the stable string that
// appears in serialized records. Display names are derived separately and never
// hit the wire.
//
// Vocabularies are closed and versioned by deployment: unknown wire values are
// rejected with an *UnknownValueError, never coerced to a default.
package enum

import (
	"fmt"
	"strings"
)

// UnknownValueError reports a wire value outside a vocabulary's closed set.
// Signals a schema-version mismatch between producer and consumer.
type UnknownValueError struct {
	Enum  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s wire value %q", e.Enum, e.Value)
}

// EventType classifies playback and interaction events.
type EventType string

const (
	EventPlayStart      EventType = "play_start"
	EventPlayPause      EventType = "play_pause"
	EventPlayResume     EventType = "play_resume"
	EventPlayStop       EventType = "play_stop"
	EventPlayComplete   EventType = "play_complete"
	EventSeek           EventType = "seek"
	EventSearch         EventType = "search"
	EventBrowse         EventType = "browse"
	EventClick          EventType = "click"
	EventScroll         EventType = "scroll"
	EventAddToList      EventType = "add_to_list"
	EventRemoveFromList EventType = "remove_from_list"
	EventRateContent    EventType = "rate_content"
	EventShare          EventType = "share"
)

var eventTypes = []EventType{
	EventPlayStart, EventPlayPause, EventPlayResume, EventPlayStop,
	EventPlayComplete, EventSeek, EventSearch, EventBrowse, EventClick,
	EventScroll, EventAddToList, EventRemoveFromList, EventRateContent,
	EventShare,
}

// EventTypes returns the closed set in declaration order.
func EventTypes() []EventType { return append([]EventType(nil), eventTypes...) }

// Valid reports whether t is a member of the closed set.
func (t EventType) Valid() bool { return contains(eventTypes, t) }

// DisplayName returns the human-readable name, distinct from the wire value.
func (t EventType) DisplayName() string { return humanize(string(t)) }

// ParseEventType resolves a wire value to its enumerant.
func ParseEventType(wire string) (EventType, error) {
	t := EventType(wire)
	if !t.Valid() {
		return "", &UnknownValueError{Enum: "event_type", Value: wire}
	}
	return t, nil
}

// DeviceType identifies the class of client device producing events.
type DeviceType string

const (
	DeviceMobileIOS     DeviceType = "mobile_ios"
	DeviceMobileAndroid DeviceType = "mobile_android"
	DeviceWebDesktop    DeviceType = "web_desktop"
	DeviceWebMobile     DeviceType = "web_mobile"
	DeviceSmartTV       DeviceType = "tv_streaming_device"
	DeviceGameConsole   DeviceType = "game_console"
	DeviceTablet        DeviceType = "tablet"
)

var deviceTypes = []DeviceType{
	DeviceMobileIOS, DeviceMobileAndroid, DeviceWebDesktop, DeviceWebMobile,
	DeviceSmartTV, DeviceGameConsole, DeviceTablet,
}

func DeviceTypes() []DeviceType         { return append([]DeviceType(nil), deviceTypes...) }
func (t DeviceType) Valid() bool        { return contains(deviceTypes, t) }
func (t DeviceType) DisplayName() string { return humanize(string(t)) }

func ParseDeviceType(wire string) (DeviceType, error) {
	t := DeviceType(wire)
	if !t.Valid() {
		return "", &UnknownValueError{Enum: "device_type", Value: wire}
	}
	return t, nil
}

// ContentType classifies catalog content.
type ContentType string

const (
	ContentMovie       ContentType = "movie"
	ContentTVSeries    ContentType = "tv_series"
	ContentTVEpisode   ContentType = "tv_episode"
	ContentDocumentary ContentType = "documentary"
	ContentShortForm   ContentType = "short_form"
	ContentLiveEvent   ContentType = "live_event"
	ContentTrailer     ContentType = "trailer"
)

var contentTypes = []ContentType{
	ContentMovie, ContentTVSeries, ContentTVEpisode, ContentDocumentary,
	ContentShortForm, ContentLiveEvent, ContentTrailer,
}

func ContentTypes() []ContentType         { return append([]ContentType(nil), contentTypes...) }
func (t ContentType) Valid() bool         { return contains(contentTypes, t) }
func (t ContentType) DisplayName() string { return humanize(string(t)) }

func ParseContentType(wire string) (ContentType, error) {
	t := ContentType(wire)
	if !t.Valid() {
		return "", &UnknownValueError{Enum: "content_type", Value: wire}
	}
	return t, nil
}

// MaturityRating is the audience classification assigned to content.
// Wire values follow MPA / TV Parental Guidelines labels.
type MaturityRating string

const (
	RatingG    MaturityRating = "G"
	RatingPG   MaturityRating = "PG"
	RatingPG13 MaturityRating = "PG-13"
	RatingR    MaturityRating = "R"
	RatingNC17 MaturityRating = "NC-17"
	RatingTVY  MaturityRating = "TV-Y"
	RatingTVY7 MaturityRating = "TV-Y7"
	RatingTVG  MaturityRating = "TV-G"
	RatingTVPG MaturityRating = "TV-PG"
	RatingTV14 MaturityRating = "TV-14"
	RatingTVMA MaturityRating = "TV-MA"
)

var maturityRatings = []MaturityRating{
	RatingG, RatingPG, RatingPG13, RatingR, RatingNC17,
	RatingTVY, RatingTVY7, RatingTVG, RatingTVPG, RatingTV14, RatingTVMA,
}

func MaturityRatings() []MaturityRating      { return append([]MaturityRating(nil), maturityRatings...) }
func (r MaturityRating) Valid() bool         { return contains(maturityRatings, r) }
func (r MaturityRating) DisplayName() string { return string(r) }

func ParseMaturityRating(wire string) (MaturityRating, error) {
	r := MaturityRating(wire)
	if !r.Valid() {
		return "", &UnknownValueError{Enum: "maturity_rating", Value: wire}
	}
	return r, nil
}

// SubscriptionTier is the purchasable plan level.
type SubscriptionTier string

const (
	TierFree     SubscriptionTier = "free"
	TierBasic    SubscriptionTier = "basic"
	TierStandard SubscriptionTier = "standard"
	TierPremium  SubscriptionTier = "premium"
	TierFamily   SubscriptionTier = "family"
)

var subscriptionTiers = []SubscriptionTier{
	TierFree, TierBasic, TierStandard, TierPremium, TierFamily,
}

func SubscriptionTiers() []SubscriptionTier    { return append([]SubscriptionTier(nil), subscriptionTiers...) }
func (t SubscriptionTier) Valid() bool         { return contains(subscriptionTiers, t) }
func (t SubscriptionTier) DisplayName() string { return humanize(string(t)) }

func ParseSubscriptionTier(wire string) (SubscriptionTier, error) {
	t := SubscriptionTier(wire)
	if !t.Valid() {
		return "", &UnknownValueError{Enum: "subscription_tier", Value: wire}
	}
	return t, nil
}

// SubscriptionStatus is the billing lifecycle state of a subscription.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusTrial     SubscriptionStatus = "trial"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
	StatusPastDue   SubscriptionStatus = "past_due"
)

var subscriptionStatuses = []SubscriptionStatus{
	StatusActive, StatusTrial, StatusPaused, StatusCancelled, StatusExpired,
	StatusPastDue,
}

func SubscriptionStatuses() []SubscriptionStatus {
	return append([]SubscriptionStatus(nil), subscriptionStatuses...)
}
func (s SubscriptionStatus) Valid() bool         { return contains(subscriptionStatuses, s) }
func (s SubscriptionStatus) DisplayName() string { return humanize(string(s)) }

func ParseSubscriptionStatus(wire string) (SubscriptionStatus, error) {
	s := SubscriptionStatus(wire)
	if !s.Valid() {
		return "", &UnknownValueError{Enum: "subscription_status", Value: wire}
	}
	return s, nil
}

// VideoQuality is the delivered resolution class.
type VideoQuality string

const (
	QualitySD480  VideoQuality = "480p"
	QualityHD720  VideoQuality = "720p"
	QualityHD1080 VideoQuality = "1080p"
	QualityUHD4K  VideoQuality = "4K"
	QualityUHD8K  VideoQuality = "8K"
)

var videoQualities = []VideoQuality{
	QualitySD480, QualityHD720, QualityHD1080, QualityUHD4K, QualityUHD8K,
}

func VideoQualities() []VideoQuality { return append([]VideoQuality(nil), videoQualities...) }
func (q VideoQuality) Valid() bool   { return contains(videoQualities, q) }

// DisplayName returns the marketing label for the quality level.
func (q VideoQuality) DisplayName() string {
	switch q {
	case QualitySD480:
		return "SD (480p)"
	case QualityHD720:
		return "HD (720p)"
	case QualityHD1080:
		return "Full HD (1080p)"
	case QualityUHD4K:
		return "Ultra HD (4K)"
	case QualityUHD8K:
		return "Ultra HD (8K)"
	}
	return string(q)
}

func ParseVideoQuality(wire string) (VideoQuality, error) {
	q := VideoQuality(wire)
	if !q.Valid() {
		return "", &UnknownValueError{Enum: "video_quality", Value: wire}
	}
	return q, nil
}

// ExperimentVariant is an A/B test arm assignment.
type ExperimentVariant string

const (
	VariantControl    ExperimentVariant = "control"
	VariantTreatmentA ExperimentVariant = "treatment_a"
	VariantTreatmentB ExperimentVariant = "treatment_b"
	VariantTreatmentC ExperimentVariant = "treatment_c"
)

var experimentVariants = []ExperimentVariant{
	VariantControl, VariantTreatmentA, VariantTreatmentB, VariantTreatmentC,
}

func ExperimentVariants() []ExperimentVariant {
	return append([]ExperimentVariant(nil), experimentVariants...)
}
func (v ExperimentVariant) Valid() bool         { return contains(experimentVariants, v) }
func (v ExperimentVariant) DisplayName() string { return humanize(string(v)) }

func ParseExperimentVariant(wire string) (ExperimentVariant, error) {
	v := ExperimentVariant(wire)
	if !v.Valid() {
		return "", &UnknownValueError{Enum: "experiment_variant", Value: wire}
	}
	return v, nil
}

// PaymentStatus is the settlement state of a billing transaction.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentDisputed  PaymentStatus = "disputed"
)

var paymentStatuses = []PaymentStatus{
	PaymentPending, PaymentSucceeded, PaymentFailed, PaymentRefunded,
	PaymentDisputed,
}

func PaymentStatuses() []PaymentStatus      { return append([]PaymentStatus(nil), paymentStatuses...) }
func (s PaymentStatus) Valid() bool         { return contains(paymentStatuses, s) }
func (s PaymentStatus) DisplayName() string { return humanize(string(s)) }

func ParsePaymentStatus(wire string) (PaymentStatus, error) {
	s := PaymentStatus(wire)
	if !s.Valid() {
		return "", &UnknownValueError{Enum: "payment_status", Value: wire}
	}
	return s, nil
}

// ErrorSeverity ranks error events for triage.
type ErrorSeverity string

const (
	SeverityDebug    ErrorSeverity = "debug"
	SeverityInfo     ErrorSeverity = "info"
	SeverityWarning  ErrorSeverity = "warning"
	SeverityError    ErrorSeverity = "error"
	SeverityCritical ErrorSeverity = "critical"
)

var errorSeverities = []ErrorSeverity{
	SeverityDebug, SeverityInfo, SeverityWarning, SeverityError,
	SeverityCritical,
}

func ErrorSeverities() []ErrorSeverity      { return append([]ErrorSeverity(nil), errorSeverities...) }
func (s ErrorSeverity) Valid() bool         { return contains(errorSeverities, s) }
func (s ErrorSeverity) DisplayName() string { return humanize(string(s)) }

func ParseErrorSeverity(wire string) (ErrorSeverity, error) {
	s := ErrorSeverity(wire)
	if !s.Valid() {
		return "", &UnknownValueError{Enum: "error_severity", Value: wire}
	}
	return s, nil
}

func contains[T comparable](set []T, v T) bool {
	for _, m := range set {
		if m == v {
			return true
		}
	}
	return false
}

// humanize turns a snake_case wire value into a display name.
// "play_start" -> "Play Start".
func humanize(wire string) string {
	parts := strings.Split(wire, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
