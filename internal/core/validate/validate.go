// Package validate is the admission rulebook for entities. Check inspects a
// record and returns every violated invariant. It never stops at the first
// failure, so one call surfaces the complete defect list.
//
// Rules are pure: they read only the entity's fields, never the clock or any
// external state, and the record is never mutated or repaired. Cross-entity
// referential integrity (does a content_id exist in the catalog) is a concern
// of the external store, not of this layer.
package validate

import (
	"fmt"
	"strings"

	"github.com/playlake-lab/playlake/internal/core/entity"
)

// Violation is one failed invariant.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string { return v.Message }

// Failure aggregates every violation for one record. It is always recoverable
// by the caller: fix the input and resubmit.
type Failure struct {
	Kind       entity.Kind
	Violations []Violation
}

func (f *Failure) Error() string {
	msgs := make([]string, len(f.Violations))
	for i, v := range f.Violations {
		msgs[i] = v.Message
	}
	return fmt.Sprintf("%s validation failed: %s", f.Kind, strings.Join(msgs, "; "))
}

// Messages returns the ordered human-readable violation list.
func (f *Failure) Messages() []string {
	msgs := make([]string, len(f.Violations))
	for i, v := range f.Violations {
		msgs[i] = v.Message
	}
	return msgs
}

// Details returns the failed field names for structured consumption.
func (f *Failure) Details() map[string]interface{} {
	d := make(map[string]interface{})
	var fields []string
	for _, v := range f.Violations {
		if v.Field != "" {
			fields = append(fields, v.Field)
		}
	}
	if len(fields) > 0 {
		d["fields"] = fields
	}
	return d
}

// Check runs the entity's full rule set and returns the ordered violation
// list. A nil result means the record is admissible. Deterministic: the same
// entity always yields the same violations in the same order.
func Check(e entity.Entity) []Violation {
	switch v := e.(type) {
	case *entity.PlaybackEvent:
		return checkPlaybackEvent(v)
	case *entity.InteractionEvent:
		return checkInteractionEvent(v)
	case *entity.ViewingSession:
		return checkViewingSession(v)
	case *entity.ContentMetadata:
		return checkContentMetadata(v)
	case *entity.TVSeriesMetadata:
		return checkTVSeriesMetadata(v)
	case *entity.QoSTelemetry:
		return checkQoSTelemetry(v)
	case *entity.UserRating:
		return checkUserRating(v)
	case *entity.UserList:
		return checkUserList(v)
	case *entity.ContentSimilarity:
		return checkContentSimilarity(v)
	case *entity.UserSubscription:
		return checkUserSubscription(v)
	case *entity.PaymentTransaction:
		return checkPaymentTransaction(v)
	case *entity.ExperimentExposure:
		return checkExperimentExposure(v)
	case *entity.ExperimentMetric:
		return checkExperimentMetric(v)
	case *entity.ErrorEvent:
		return checkErrorEvent(v)
	case *entity.WatchPartySession:
		return checkWatchPartySession(v)
	default:
		return []Violation{{Message: fmt.Sprintf("unsupported entity kind %q", e.Kind())}}
	}
}

// Admissible returns nil when the record passes every rule, or a *Failure
// carrying the full ordered violation list.
func Admissible(e entity.Entity) error {
	violations := Check(e)
	if len(violations) == 0 {
		return nil
	}
	return &Failure{Kind: e.Kind(), Violations: violations}
}
