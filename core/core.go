package core

import "github.com/google/uuid"

// NewID generates a new unique identifier for events, sessions and other
// records that need global identity.
func NewID() string {
	return uuid.New().String()
}
