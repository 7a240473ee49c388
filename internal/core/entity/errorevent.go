package entity

import (
	"time"

	"github.com/playlake-lab/playlake/internal/core/enum"
)

// ErrorEvent is one client or server error occurrence, optionally correlated
// to a user, session, content item, or request. Partitioned by error_id.
type ErrorEvent struct {
	ErrorID   string
	Timestamp time.Time

	ErrorType    string
	ErrorCode    string
	ErrorMessage string
	Severity     enum.ErrorSeverity

	// Optional correlation
	UserID    *string
	SessionID *string
	ContentID *string
	RequestID *string

	DeviceType enum.DeviceType
	AppVersion string
}

// NewErrorEvent normalizes e into a fully-populated record.
func NewErrorEvent(e ErrorEvent) *ErrorEvent {
	e.ErrorID = orNewID(e.ErrorID)
	e.Timestamp = orDefaultTime(e.Timestamp)
	if e.Severity == "" {
		e.Severity = enum.SeverityError
	}
	if e.DeviceType == "" {
		e.DeviceType = DefaultDeviceType
	}
	return &e
}

func (e *ErrorEvent) Kind() Kind            { return KindErrorEvent }
func (e *ErrorEvent) EntityID() string      { return e.ErrorID }
func (e *ErrorEvent) OccurredAt() time.Time { return e.Timestamp }
