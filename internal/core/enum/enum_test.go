package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	for _, et := range EventTypes() {
		got, err := ParseEventType(string(et))
		require.NoError(t, err)
		require.Equal(t, et, got)
	}
	for _, q := range VideoQualities() {
		got, err := ParseVideoQuality(string(q))
		require.NoError(t, err)
		require.Equal(t, q, got)
	}
	for _, r := range MaturityRatings() {
		got, err := ParseMaturityRating(string(r))
		require.NoError(t, err)
		require.Equal(t, r, got)
	}
}

func TestParseRejectsUnknownWireValues(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) error
	}{
		{"event_type", func(w string) error { _, err := ParseEventType(w); return err }},
		{"device_type", func(w string) error { _, err := ParseDeviceType(w); return err }},
		{"content_type", func(w string) error { _, err := ParseContentType(w); return err }},
		{"maturity_rating", func(w string) error { _, err := ParseMaturityRating(w); return err }},
		{"subscription_tier", func(w string) error { _, err := ParseSubscriptionTier(w); return err }},
		{"subscription_status", func(w string) error { _, err := ParseSubscriptionStatus(w); return err }},
		{"video_quality", func(w string) error { _, err := ParseVideoQuality(w); return err }},
		{"experiment_variant", func(w string) error { _, err := ParseExperimentVariant(w); return err }},
		{"payment_status", func(w string) error { _, err := ParsePaymentStatus(w); return err }},
		{"error_severity", func(w string) error { _, err := ParseErrorSeverity(w); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn("definitely_not_a_member")
			require.Error(t, err)
			var unknown *UnknownValueError
			require.ErrorAs(t, err, &unknown)
			require.Equal(t, tc.name, unknown.Enum)
			require.Equal(t, "definitely_not_a_member", unknown.Value)
		})
	}

	// Case matters: wire values are exact.
	_, err := ParseEventType("PLAY_START")
	require.Error(t, err)
}

func TestDisplayNamesAreNotWireValues(t *testing.T) {
	require.Equal(t, "Play Start", EventPlayStart.DisplayName())
	require.Equal(t, "Tv Streaming Device", DeviceSmartTV.DisplayName())
	require.Equal(t, "Full HD (1080p)", QualityHD1080.DisplayName())
	require.Equal(t, "Past Due", StatusPastDue.DisplayName())
	require.Equal(t, "Treatment A", VariantTreatmentA.DisplayName())
}
