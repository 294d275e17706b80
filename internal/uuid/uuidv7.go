// Package uuid generates UUIDv7 identifiers for database primary keys.
// UUIDv7 is time-ordered, which keeps index inserts roughly sequential.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a new UUIDv7 string, falling back to UUIDv4 if the random
// source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
