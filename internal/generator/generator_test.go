package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/playlake-lab/playlake/internal/core/entity"
	"github.com/playlake-lab/playlake/internal/core/partition"
	"github.com/playlake-lab/playlake/internal/core/serialize"
	"github.com/playlake-lab/playlake/internal/core/validate"
)

func TestStreamProducesAdmissibleEntities(t *testing.T) {
	g := New()
	for _, e := range g.Stream(500) {
		violations := validate.Check(e)
		require.Empty(t, violations, "%s %s: %v", e.Kind(), e.EntityID(), violations)
	}
}

func TestEveryKindIsAdmissibleAndRoundTrips(t *testing.T) {
	g := New()
	entities := []entity.Entity{
		g.PlaybackEvent(), g.InteractionEvent(), g.ViewingSession(),
		g.ContentMetadata(), g.TVSeriesMetadata(), g.QoSTelemetry(),
		g.UserRating(), g.UserList(), g.ContentSimilarity(),
		g.UserSubscription(), g.PaymentTransaction(), g.ExperimentExposure(),
		g.ExperimentMetric(), g.ErrorEvent(), g.WatchPartySession(),
	}

	for _, e := range entities {
		t.Run(string(e.Kind()), func(t *testing.T) {
			require.NoError(t, validate.Admissible(e))

			rec, err := serialize.Serialize(e)
			require.NoError(t, err)
			data, err := serialize.Encode(rec)
			require.NoError(t, err)
			decoded, err := serialize.Decode(e.Kind(), data)
			require.NoError(t, err)
			require.Equal(t, rec, decoded)

			_, err = partition.Derive(e)
			require.NoError(t, err)
		})
	}
}
