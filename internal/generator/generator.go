// Package generator produces synthetic entities for the demo pipeline.
package generator

import (
	"fmt"
	"time"

	"github.com/jaswdr/faker"
	"github.com/shopspring/decimal"

	"github.com/playlake-lab/playlake/internal/core/entity"
	"github.com/playlake-lab/playlake/internal/core/enum"
)

// Generator generates fake streaming telemetry entities. All records it
// produces are admissible: they pass validation as generated.
type Generator struct {
	faker faker.Faker
}

func New() *Generator {
	return &Generator{faker: faker.New()}
}

// Stream returns n entities with a playback-heavy mix resembling real
// traffic: mostly playback and interaction events, with the occasional
// catalog, billing, or experiment record.
func (g *Generator) Stream(n int) []entity.Entity {
	out := make([]entity.Entity, 0, n)
	for i := 0; i < n; i++ {
		switch roll := g.faker.IntBetween(1, 100); {
		case roll <= 45:
			out = append(out, g.PlaybackEvent())
		case roll <= 65:
			out = append(out, g.InteractionEvent())
		case roll <= 75:
			out = append(out, g.QoSTelemetry())
		case roll <= 82:
			out = append(out, g.ViewingSession())
		case roll <= 86:
			out = append(out, g.UserRating())
		case roll <= 89:
			out = append(out, g.ContentMetadata())
		case roll <= 91:
			out = append(out, g.TVSeriesMetadata())
		case roll <= 93:
			out = append(out, g.UserList())
		case roll <= 94:
			out = append(out, g.ContentSimilarity())
		case roll <= 95:
			out = append(out, g.UserSubscription())
		case roll <= 96:
			out = append(out, g.PaymentTransaction())
		case roll <= 97:
			out = append(out, g.ExperimentExposure())
		case roll <= 98:
			out = append(out, g.ExperimentMetric())
		case roll <= 99:
			out = append(out, g.ErrorEvent())
		default:
			out = append(out, g.WatchPartySession())
		}
	}
	return out
}

// PlaybackEvent generates one playback telemetry event.
func (g *Generator) PlaybackEvent() *entity.PlaybackEvent {
	duration := int64(g.faker.IntBetween(600, 10800))
	bitrate := int64(g.faker.IntBetween(800, 16000))
	return entity.NewPlaybackEvent(entity.PlaybackEvent{
		EventType:       g.pickEventType(),
		Timestamp:       g.recentTime(),
		UserID:          g.userID(),
		DeviceID:        g.deviceID(),
		ContentID:       g.contentID(),
		ContentTitle:    g.title(),
		ContentType:     g.pickContentType(),
		PositionSeconds: int64(g.faker.IntBetween(0, int(duration))),
		DurationSeconds: duration,
		VideoQuality:    g.pickQuality(),
		BitrateKbps:     &bitrate,
		BufferingCount:  int64(g.faker.IntBetween(0, 5)),
		DroppedFrames:   int64(g.faker.IntBetween(0, 40)),
		PlaybackRate:    pick(g, []float64{0.5, 1.0, 1.0, 1.0, 1.25, 1.5, 2.0}),
		VolumeLevel:     int64(g.faker.IntBetween(0, 100)),
		IsFullscreen:    g.coin(),
		HasSubtitles:    g.coin(),
		AudioLanguage:   pick(g, []string{"en", "es", "fr", "de", "ja"}),
		DeviceType:      g.pickDeviceType(),
		AppVersion:      g.appVersion(),
		NetworkType:     pick(g, []string{"wifi", "cellular", "ethernet"}),
		CountryCode:     pick(g, []string{"US", "GB", "DE", "BR", "IN", "JP"}),
		Region:          g.faker.Address().State(),
		City:            g.faker.Address().City(),
	})
}

// InteractionEvent generates one UI interaction event.
func (g *Generator) InteractionEvent() *entity.InteractionEvent {
	e := entity.InteractionEvent{
		EventType:  pick(g, []enum.EventType{enum.EventSearch, enum.EventBrowse, enum.EventClick, enum.EventScroll, enum.EventAddToList, enum.EventShare}),
		Timestamp:  g.recentTime(),
		UserID:     g.userID(),
		DeviceID:   g.deviceID(),
		DeviceType: g.pickDeviceType(),
		PageName:   pick(g, []string{"home", "search", "details", "my_list", "player"}),
	}
	if e.EventType == enum.EventSearch {
		query := g.faker.Lorem().Sentence(3)
		results := int64(g.faker.IntBetween(0, 200))
		e.SearchQuery = &query
		e.SearchResultsCount = &results
	}
	return entity.NewInteractionEvent(e)
}

// ViewingSession generates one aggregated watch session.
func (g *Generator) ViewingSession() *entity.ViewingSession {
	started := g.recentTime()
	watch := int64(g.faker.IntBetween(120, 7200))
	ended := started.Add(time.Duration(watch) * time.Second)
	avgBitrate := int64(g.faker.IntBetween(1500, 12000))
	completion := float64(g.faker.IntBetween(5, 100))
	return entity.NewViewingSession(entity.ViewingSession{
		UserID:                g.userID(),
		ContentID:             g.contentID(),
		DeviceID:              g.deviceID(),
		DeviceType:            g.pickDeviceType(),
		StartedAt:             started,
		EndedAt:               &ended,
		TotalWatchTimeSeconds: watch,
		CompletionPercentage:  completion,
		PauseCount:            int64(g.faker.IntBetween(0, 8)),
		SeekCount:             int64(g.faker.IntBetween(0, 12)),
		BufferingEvents:       int64(g.faker.IntBetween(0, 4)),
		AverageBitrateKbps:    &avgBitrate,
		PeakQuality:           g.pickQuality(),
		Completed:             completion >= 90,
	})
}

// ContentMetadata generates one catalog record.
func (g *Generator) ContentMetadata() *entity.ContentMetadata {
	return entity.NewContentMetadata(entity.ContentMetadata{
		ContentID:       g.contentID(),
		Title:           g.title(),
		ContentType:     g.pickContentType(),
		Description:     g.faker.Lorem().Sentence(12),
		Genres:          g.genres(),
		ReleaseYear:     int64(g.faker.IntBetween(1960, 2026)),
		DurationSeconds: int64(g.faker.IntBetween(600, 10800)),
		MaturityRating:  pick(g, enum.MaturityRatings()),
		Language:        pick(g, []string{"en", "es", "fr", "ko", "ja"}),
		DirectorNames:   []string{g.faker.Person().Name()},
		CastNames:       []string{g.faker.Person().Name(), g.faker.Person().Name(), g.faker.Person().Name()},
		StudioName:      g.faker.Company().Name(),
		AddedAt:         g.recentTime(),
	})
}

// TVSeriesMetadata generates one series wrapper record.
func (g *Generator) TVSeriesMetadata() *entity.TVSeriesMetadata {
	seasons := int64(g.faker.IntBetween(1, 12))
	return entity.NewTVSeriesMetadata(entity.TVSeriesMetadata{
		Title:         g.title(),
		BaseContentID: g.contentID(),
		SeasonCount:   seasons,
		EpisodeCount:  seasons * int64(g.faker.IntBetween(6, 13)),
		IsOngoing:     g.coin(),
		UpdatedAt:     g.recentTime(),
	})
}

// QoSTelemetry generates one quality-of-service sample.
func (g *Generator) QoSTelemetry() *entity.QoSTelemetry {
	total := int64(g.faker.IntBetween(600, 2000))
	bandwidth := int64(g.faker.IntBetween(2000, 50000))
	rtt := int64(g.faker.IntBetween(5, 250))
	return entity.NewQoSTelemetry(entity.QoSTelemetry{
		SessionID:           g.sessionID(),
		Timestamp:           g.recentTime(),
		BitrateKbps:         int64(g.faker.IntBetween(800, 16000)),
		BandwidthKbps:       &bandwidth,
		BufferLevelSeconds:  float64(g.faker.IntBetween(0, 60)),
		DroppedFrames:       int64(g.faker.IntBetween(0, int(total/10))),
		TotalFrames:         total,
		CDNProvider:         pick(g, []string{"cloudfront", "fastly", "akamai"}),
		CDNPop:              pick(g, []string{"iad", "sfo", "fra", "nrt", "gru"}),
		NetworkType:         pick(g, []string{"wifi", "cellular", "ethernet"}),
		RoundTripTimeMillis: &rtt,
	})
}

// UserRating generates one rating with an occasional review.
func (g *Generator) UserRating() *entity.UserRating {
	r := entity.UserRating{
		UserID:          g.userID(),
		ContentID:       g.contentID(),
		RatingValue:     float64(g.faker.IntBetween(1, 10)) / 2,
		HelpfulCount:    int64(g.faker.IntBetween(0, 500)),
		NotHelpfulCount: int64(g.faker.IntBetween(0, 100)),
		IsVerifiedWatch: g.coin(),
		RatedAt:         g.recentTime(),
	}
	if g.coin() {
		title := g.faker.Lorem().Sentence(4)
		text := g.faker.Lorem().Sentence(20)
		r.ReviewTitle = &title
		r.ReviewText = &text
	}
	return entity.NewUserRating(r)
}

// UserList generates one named content list.
func (g *Generator) UserList() *entity.UserList {
	ids := make([]string, g.faker.IntBetween(1, 12))
	for i := range ids {
		ids[i] = g.contentID()
	}
	now := g.recentTime()
	return entity.NewUserList(entity.UserList{
		UserID:     g.userID(),
		ListName:   pick(g, []string{"Watchlist", "Favorites", "Weekend Queue", "Kids"}),
		ListType:   pick(g, []string{"watchlist", "favorites", "custom"}),
		ContentIDs: ids,
		IsPublic:   g.coin(),
		CreatedAt:  now.Add(-30 * 24 * time.Hour),
		UpdatedAt:  now,
	})
}

// ContentSimilarity generates one precomputed pairwise similarity.
func (g *Generator) ContentSimilarity() *entity.ContentSimilarity {
	score := func() float64 { return float64(g.faker.IntBetween(0, 1000)) / 1000 }
	return entity.NewContentSimilarity(entity.ContentSimilarity{
		ContentIDA:      g.contentID(),
		ContentIDB:      g.contentID(),
		ModelVersion:    pick(g, []string{"v1", "v2"}),
		SimilarityScore: score(),
		GenreScore:      score(),
		CastScore:       score(),
		ThemeScore:      score(),
		ComputedAt:      g.recentTime(),
	})
}

// UserSubscription generates one subscription record.
func (g *Generator) UserSubscription() *entity.UserSubscription {
	tier := pick(g, enum.SubscriptionTiers())
	return entity.NewUserSubscription(entity.UserSubscription{
		UserID:               g.userID(),
		Tier:                 tier,
		Status:               pick(g, []enum.SubscriptionStatus{enum.StatusActive, enum.StatusActive, enum.StatusActive, enum.StatusTrial, enum.StatusPastDue}),
		StartedAt:            g.recentTime().Add(-90 * 24 * time.Hour),
		PriceAmount:          priceFor(tier),
		MaxConcurrentStreams: int64(g.faker.IntBetween(1, 4)),
		MaxQuality:           g.pickQuality(),
		DownloadsEnabled:     tier != enum.TierFree,
		AdsEnabled:           tier == enum.TierFree || tier == enum.TierBasic,
	})
}

// PaymentTransaction generates one billing transaction.
func (g *Generator) PaymentTransaction() *entity.PaymentTransaction {
	t := entity.PaymentTransaction{
		SubscriptionID:     g.faker.UUID().V4(),
		UserID:             g.userID(),
		Amount:             priceFor(pick(g, enum.SubscriptionTiers())),
		Status:             pick(g, []enum.PaymentStatus{enum.PaymentSucceeded, enum.PaymentSucceeded, enum.PaymentSucceeded, enum.PaymentFailed, enum.PaymentRefunded}),
		ProcessorName:      pick(g, []string{"stripe", "adyen", "braintree"}),
		ProcessorReference: "ch_" + g.faker.RandomStringWithLength(14),
		CreatedAt:          g.recentTime(),
	}
	if t.Status == enum.PaymentFailed {
		code := pick(g, []string{"card_declined", "insufficient_funds", "expired_card"})
		msg := "The card was declined by the issuing bank."
		t.FailureCode = &code
		t.FailureMessage = &msg
		t.RetryCount = int64(g.faker.IntBetween(0, 3))
	}
	return entity.NewPaymentTransaction(t)
}

// ExperimentExposure generates one variant assignment.
func (g *Generator) ExperimentExposure() *entity.ExperimentExposure {
	first := g.recentTime().Add(-14 * 24 * time.Hour)
	last := g.recentTime()
	return entity.NewExperimentExposure(entity.ExperimentExposure{
		ExperimentID:   pick(g, []string{"exp-artwork-2024", "exp-autoplay-depth", "exp-row-order"}),
		UserID:         g.userID(),
		Variant:        pick(g, enum.ExperimentVariants()),
		FirstExposedAt: first,
		LastExposedAt:  &last,
		ExposureCount:  int64(g.faker.IntBetween(1, 40)),
	})
}

// ExperimentMetric generates one computed experiment statistic.
func (g *Generator) ExperimentMetric() *entity.ExperimentMetric {
	pval := float64(g.faker.IntBetween(1, 999)) / 1000
	lift := float64(g.faker.IntBetween(-200, 400)) / 10
	return entity.NewExperimentMetric(entity.ExperimentMetric{
		ExperimentID: pick(g, []string{"exp-artwork-2024", "exp-autoplay-depth", "exp-row-order"}),
		Variant:      pick(g, enum.ExperimentVariants()),
		MetricName:   pick(g, []string{"watch_time_minutes", "completion_rate", "sessions_per_user"}),
		MetricValue:  float64(g.faker.IntBetween(1, 50000)) / 10,
		SampleSize:   int64(g.faker.IntBetween(1000, 500000)),
		PValue:       &pval,
		LiftPercent:  &lift,
		ComputedAt:   g.recentTime(),
	})
}

// ErrorEvent generates one error occurrence.
func (g *Generator) ErrorEvent() *entity.ErrorEvent {
	user := g.userID()
	session := g.sessionID()
	return entity.NewErrorEvent(entity.ErrorEvent{
		Timestamp:    g.recentTime(),
		ErrorType:    pick(g, []string{"playback_error", "network_error", "drm_error", "api_error"}),
		ErrorCode:    fmt.Sprintf("E%d", g.faker.IntBetween(1000, 9999)),
		ErrorMessage: g.faker.Lorem().Sentence(8),
		Severity:     pick(g, []enum.ErrorSeverity{enum.SeverityWarning, enum.SeverityError, enum.SeverityError, enum.SeverityCritical}),
		UserID:       &user,
		SessionID:    &session,
		DeviceType:   g.pickDeviceType(),
		AppVersion:   g.appVersion(),
	})
}

// WatchPartySession generates one shared-viewing session.
func (g *Generator) WatchPartySession() *entity.WatchPartySession {
	participants := make([]string, g.faker.IntBetween(1, 5))
	for i := range participants {
		participants[i] = g.userID()
	}
	return entity.NewWatchPartySession(entity.WatchPartySession{
		HostUserID:             g.userID(),
		ContentID:              g.contentID(),
		ParticipantUserIDs:     participants,
		CurrentPositionSeconds: int64(g.faker.IntBetween(0, 5400)),
		IsPlaying:              g.coin(),
		IsActive:               true,
		CreatedAt:              g.recentTime(),
	})
}

// Helper functions for generating realistic identifiers and values.

func (g *Generator) userID() string    { return "u-" + g.faker.UUID().V4()[0:8] }
func (g *Generator) deviceID() string  { return "d-" + g.faker.UUID().V4()[0:8] }
func (g *Generator) contentID() string { return "c-" + g.faker.UUID().V4()[0:8] }
func (g *Generator) sessionID() string { return "s-" + g.faker.UUID().V4()[0:8] }

func (g *Generator) title() string { return g.faker.Lorem().Sentence(3) }

func (g *Generator) appVersion() string {
	return fmt.Sprintf("%d.%d.%d", g.faker.IntBetween(3, 8), g.faker.IntBetween(0, 20), g.faker.IntBetween(0, 9))
}

func (g *Generator) recentTime() time.Time {
	return time.Now().UTC().Add(-time.Duration(g.faker.IntBetween(0, 72*3600)) * time.Second)
}

func (g *Generator) coin() bool { return g.faker.IntBetween(0, 1) == 1 }

func (g *Generator) genres() []string {
	all := []string{"drama", "comedy", "thriller", "documentary", "sci-fi", "horror", "romance", "action"}
	n := g.faker.IntBetween(1, 3)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pick(g, all))
	}
	return out
}

func (g *Generator) pickEventType() enum.EventType {
	return pick(g, []enum.EventType{
		enum.EventPlayStart, enum.EventPlayPause, enum.EventPlayResume,
		enum.EventPlayStop, enum.EventPlayComplete, enum.EventSeek,
	})
}

func (g *Generator) pickContentType() enum.ContentType { return pick(g, enum.ContentTypes()) }
func (g *Generator) pickQuality() enum.VideoQuality    { return pick(g, enum.VideoQualities()) }
func (g *Generator) pickDeviceType() enum.DeviceType   { return pick(g, enum.DeviceTypes()) }

func pick[T any](g *Generator, items []T) T {
	return items[g.faker.IntBetween(0, len(items)-1)]
}

func priceFor(tier enum.SubscriptionTier) decimal.Decimal {
	switch tier {
	case enum.TierFree:
		return decimal.Zero
	case enum.TierBasic:
		return decimal.RequireFromString("6.99")
	case enum.TierStandard:
		return decimal.RequireFromString("11.99")
	case enum.TierPremium:
		return decimal.RequireFromString("15.99")
	case enum.TierFamily:
		return decimal.RequireFromString("19.99")
	default:
		return decimal.RequireFromString("11.99")
	}
}
