package entity

import (
	"time"

	"github.com/playlake-lab/playlake/internal/core/enum"
)

// InteractionEvent is one UI interaction (search, browse, click, ...).
// Partitioned by (event_date, event_hour).
type InteractionEvent struct {
	EventID   string
	EventType enum.EventType
	Timestamp time.Time
	EventDate string
	EventHour int

	UserID    string
	SessionID string
	DeviceID  string
	DeviceType enum.DeviceType

	// Page context
	PageName    string
	ElementID   string
	ElementType string
	ReferrerPage string

	// Search context
	SearchQuery         *string
	SearchResultsCount  *int64
	ClickPositionInList *int64

	// Recommendation context
	RecommendationID        *string
	RecommendationAlgorithm *string
}

// NewInteractionEvent normalizes e into a fully-populated record.
func NewInteractionEvent(e InteractionEvent) *InteractionEvent {
	e.EventID = orNewID(e.EventID)
	e.SessionID = orNewID(e.SessionID)
	e.Timestamp = orDefaultTime(e.Timestamp)
	e.EventDate, e.EventHour = snapshotCalendar(e.Timestamp)

	if e.EventType == "" {
		e.EventType = enum.EventBrowse
	}
	if e.DeviceType == "" {
		e.DeviceType = DefaultDeviceType
	}
	return &e
}

func (e *InteractionEvent) Kind() Kind            { return KindInteractionEvent }
func (e *InteractionEvent) EntityID() string      { return e.EventID }
func (e *InteractionEvent) OccurredAt() time.Time { return e.Timestamp }
