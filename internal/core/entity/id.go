package entity

import "github.com/google/uuid"

// newID generates a collision-resistant 128-bit identifier for records whose
// identity is not supplied by the caller.
func newID() string {
	return uuid.NewString()
}

// orNewID returns id unchanged unless it is empty.
func orNewID(id string) string {
	if id == "" {
		return newID()
	}
	return id
}
