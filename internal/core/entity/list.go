package entity

import "time"

// UserList is a named, ordered collection of content for a user. ContentIDs
// has set semantics: duplicates are removed order-preservingly at construction
// and ItemCount tracks the deduplicated cardinality. Partitioned by list_id.
type UserList struct {
	ListID   string
	UserID   string
	ListName string
	ListType string

	ContentIDs []string
	ItemCount  int64

	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUserList normalizes l into a fully-populated record. ContentIDs is
// deduplicated preserving first-occurrence order; ItemCount is set to the
// resulting cardinality regardless of any caller-supplied value.
func NewUserList(l UserList) *UserList {
	l.ListID = orNewID(l.ListID)
	l.CreatedAt = orDefaultTime(l.CreatedAt)
	l.UpdatedAt = orDefaultTime(l.UpdatedAt)
	if l.ListType == "" {
		l.ListType = DefaultListType
	}
	l.ContentIDs = dedupe(l.ContentIDs)
	l.ItemCount = int64(len(l.ContentIDs))
	return &l
}

func (l *UserList) Kind() Kind            { return KindUserList }
func (l *UserList) EntityID() string      { return l.ListID }
func (l *UserList) OccurredAt() time.Time { return l.UpdatedAt }

// dedupe removes duplicates keeping first-occurrence order.
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
