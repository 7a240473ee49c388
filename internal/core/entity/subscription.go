package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/playlake-lab/playlake/internal/core/enum"
)

// UserSubscription is the billing and entitlement state for a user.
// Partitioned by subscription_id.
type UserSubscription struct {
	SubscriptionID string
	UserID         string

	Tier   enum.SubscriptionTier
	Status enum.SubscriptionStatus

	StartedAt          time.Time
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	TrialEndsAt        *time.Time
	CancelledAt        *time.Time

	PriceAmount     decimal.Decimal
	Currency        string
	BillingInterval string

	// Entitlements
	MaxConcurrentStreams int64
	MaxQuality           enum.VideoQuality
	DownloadsEnabled     bool
	AdsEnabled           bool
}

// NewUserSubscription normalizes s into a fully-populated record. Billing
// period bounds default to StartedAt when unset so a fresh record is
// internally consistent before validation.
func NewUserSubscription(s UserSubscription) *UserSubscription {
	s.SubscriptionID = orNewID(s.SubscriptionID)
	s.StartedAt = orDefaultTime(s.StartedAt)
	if s.CurrentPeriodStart.IsZero() {
		s.CurrentPeriodStart = s.StartedAt
	} else {
		s.CurrentPeriodStart = s.CurrentPeriodStart.UTC()
	}
	if s.CurrentPeriodEnd.IsZero() {
		s.CurrentPeriodEnd = s.CurrentPeriodStart.AddDate(0, 1, 0)
	} else {
		s.CurrentPeriodEnd = s.CurrentPeriodEnd.UTC()
	}
	if s.TrialEndsAt != nil {
		utc := s.TrialEndsAt.UTC()
		s.TrialEndsAt = &utc
	}
	if s.CancelledAt != nil {
		utc := s.CancelledAt.UTC()
		s.CancelledAt = &utc
	}

	if s.Tier == "" {
		s.Tier = enum.TierBasic
	}
	if s.Status == "" {
		s.Status = enum.StatusActive
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	if s.BillingInterval == "" {
		s.BillingInterval = DefaultBillingInterval
	}
	if s.MaxConcurrentStreams == 0 {
		s.MaxConcurrentStreams = 1
	}
	if s.MaxQuality == "" {
		s.MaxQuality = DefaultVideoQuality
	}
	return &s
}

func (s *UserSubscription) Kind() Kind            { return KindUserSubscription }
func (s *UserSubscription) EntityID() string      { return s.SubscriptionID }
func (s *UserSubscription) OccurredAt() time.Time { return s.StartedAt }
