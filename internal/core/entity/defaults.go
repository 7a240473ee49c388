package entity

import "github.com/playlake-lab/playlake/internal/core/enum"

// Entity-level defaults live here, in one place, so tests and future
// configuration can override behavior at a single point instead of chasing
// scattered literals.
const (
	// DefaultCurrency is applied to money fields when the caller omits one.
	DefaultCurrency = "USD"

	// DefaultBillingInterval is the subscription billing cadence.
	DefaultBillingInterval = "monthly"

	// DefaultNetworkType is assumed for telemetry lacking a network signal.
	DefaultNetworkType = "wifi"

	// DefaultPlaybackRate is normal-speed playback.
	DefaultPlaybackRate = 1.0

	// DefaultListType is the list type for unnamed user collections.
	DefaultListType = "watchlist"

	// DefaultMaxParticipants caps a watch party when the host sets no limit.
	DefaultMaxParticipants = 8

	// DefaultQoSSampleIntervalSeconds is the fixed QoS sampling cadence.
	DefaultQoSSampleIntervalSeconds = 30
)

// Default enumerant values for contextual fields.
const (
	DefaultVideoQuality = enum.QualityHD1080
	DefaultContentType  = enum.ContentMovie
	DefaultDeviceType   = enum.DeviceWebDesktop
)
