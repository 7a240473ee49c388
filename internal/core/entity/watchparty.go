package entity

import "time"

// WatchPartySession is a synchronized shared-viewing session. The host is not
// a member of ParticipantUserIDs; participants are deduplicated at
// construction. Partitioned by party_id.
type WatchPartySession struct {
	PartyID    string
	HostUserID string
	ContentID  string

	ParticipantUserIDs []string
	MaxParticipants    int64

	CurrentPositionSeconds int64
	IsPlaying              bool
	IsActive               bool

	CreatedAt time.Time
}

// NewWatchPartySession normalizes s into a fully-populated record.
// ParticipantUserIDs is deduplicated and the host's own ID is removed from it;
// the host is implicitly present and never counted as a participant.
func NewWatchPartySession(s WatchPartySession) *WatchPartySession {
	s.PartyID = orNewID(s.PartyID)
	s.CreatedAt = orDefaultTime(s.CreatedAt)
	if s.MaxParticipants == 0 {
		s.MaxParticipants = DefaultMaxParticipants
	}

	deduped := dedupe(s.ParticipantUserIDs)
	if s.HostUserID != "" {
		filtered := deduped[:0]
		for _, id := range deduped {
			if id != s.HostUserID {
				filtered = append(filtered, id)
			}
		}
		deduped = filtered
	}
	if len(deduped) == 0 {
		deduped = nil
	}
	s.ParticipantUserIDs = deduped
	return &s
}

func (s *WatchPartySession) Kind() Kind            { return KindWatchPartySession }
func (s *WatchPartySession) EntityID() string      { return s.PartyID }
func (s *WatchPartySession) OccurredAt() time.Time { return s.CreatedAt }
