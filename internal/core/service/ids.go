package service

import "github.com/google/uuid"

// newID returns a new opaque identifier for a domain entity.
func newID() string {
	return uuid.NewString()
}
