package entity

import "time"

// UserRating is a user's rating and optional review of content.
// Partitioned by rating_id.
type UserRating struct {
	RatingID  string
	UserID    string
	ContentID string

	RatingValue float64 // 0.5-5.0 in half-star steps
	ReviewTitle *string
	ReviewText  *string

	HelpfulCount    int64
	NotHelpfulCount int64
	IsVerifiedWatch bool

	RatedAt time.Time
}

// NewUserRating normalizes r into a fully-populated record.
func NewUserRating(r UserRating) *UserRating {
	r.RatingID = orNewID(r.RatingID)
	r.RatedAt = orDefaultTime(r.RatedAt)
	return &r
}

func (r *UserRating) Kind() Kind            { return KindUserRating }
func (r *UserRating) EntityID() string      { return r.RatingID }
func (r *UserRating) OccurredAt() time.Time { return r.RatedAt }
