package entity

import (
	"time"

	"github.com/playlake-lab/playlake/internal/core/enum"
)

// ContentMetadata is the catalog record for a piece of content.
// Partitioned by content_id.
type ContentMetadata struct {
	ContentID   string
	Title       string
	ContentType enum.ContentType
	Description string

	Genres          []string
	ReleaseYear     int64
	DurationSeconds int64
	MaturityRating  enum.MaturityRating
	Language        string

	// Credits
	DirectorNames []string
	CastNames     []string
	StudioName    string

	// Assets
	ThumbnailURL string
	TrailerURL   string

	// Licensing window
	AvailableFrom  *time.Time
	AvailableUntil *time.Time

	// External IDs
	IMDBID *string
	TMDBID *string

	AddedAt time.Time
}

// NewContentMetadata normalizes c into a fully-populated record. ContentID is
// caller-supplied catalog identity and is NOT generated here.
func NewContentMetadata(c ContentMetadata) *ContentMetadata {
	c.AddedAt = orDefaultTime(c.AddedAt)
	if c.AvailableFrom != nil {
		utc := c.AvailableFrom.UTC()
		c.AvailableFrom = &utc
	}
	if c.AvailableUntil != nil {
		utc := c.AvailableUntil.UTC()
		c.AvailableUntil = &utc
	}
	if c.ContentType == "" {
		c.ContentType = DefaultContentType
	}
	if c.Language == "" {
		c.Language = "en"
	}
	return &c
}

func (c *ContentMetadata) Kind() Kind            { return KindContentMetadata }
func (c *ContentMetadata) EntityID() string      { return c.ContentID }
func (c *ContentMetadata) OccurredAt() time.Time { return c.AddedAt }

// TVSeriesMetadata is the series-level wrapper linking to ContentMetadata
// through BaseContentID. Partitioned by series_id.
type TVSeriesMetadata struct {
	SeriesID      string
	Title         string
	BaseContentID string

	SeasonCount  int64
	EpisodeCount int64

	FirstAirDate *time.Time
	LastAirDate  *time.Time
	IsOngoing    bool

	UpdatedAt time.Time
}

// NewTVSeriesMetadata normalizes s into a fully-populated record.
func NewTVSeriesMetadata(s TVSeriesMetadata) *TVSeriesMetadata {
	s.SeriesID = orNewID(s.SeriesID)
	s.UpdatedAt = orDefaultTime(s.UpdatedAt)
	if s.FirstAirDate != nil {
		utc := s.FirstAirDate.UTC()
		s.FirstAirDate = &utc
	}
	if s.LastAirDate != nil {
		utc := s.LastAirDate.UTC()
		s.LastAirDate = &utc
	}
	return &s
}

func (s *TVSeriesMetadata) Kind() Kind            { return KindTVSeriesMetadata }
func (s *TVSeriesMetadata) EntityID() string      { return s.SeriesID }
func (s *TVSeriesMetadata) OccurredAt() time.Time { return s.UpdatedAt }
