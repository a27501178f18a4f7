package util

import "github.com/oklog/ulid/v2"

// NewULID generates a new ULID string using the default crypto/rand entropy.
func NewULID() string {
	return ulid.Make().String()
}
