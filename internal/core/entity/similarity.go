package entity

import "time"

// ContentSimilarity is a precomputed pairwise similarity between two catalog
// items under one model version. Its identity is the composite
// (content_id_a, content_id_b, model_version), which is also its partition key.
type ContentSimilarity struct {
	ContentIDA   string
	ContentIDB   string
	ModelVersion string

	SimilarityScore float64
	GenreScore      float64
	CastScore       float64
	ThemeScore      float64

	ComputedAt time.Time
}

// NewContentSimilarity normalizes s into a fully-populated record.
func NewContentSimilarity(s ContentSimilarity) *ContentSimilarity {
	s.ComputedAt = orDefaultTime(s.ComputedAt)
	if s.ModelVersion == "" {
		s.ModelVersion = "v1"
	}
	return &s
}

func (s *ContentSimilarity) Kind() Kind { return KindContentSimilarity }

// EntityID joins the composite identity tuple.
func (s *ContentSimilarity) EntityID() string {
	return s.ContentIDA + ":" + s.ContentIDB + ":" + s.ModelVersion
}

func (s *ContentSimilarity) OccurredAt() time.Time { return s.ComputedAt }
