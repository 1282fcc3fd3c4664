package guid

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a random (version 4) identifier.
func New() uuid.UUID {
	return uuid.New()
}

// NewSequential returns a time-ordered (version 7) identifier. Sequential
// identifiers sort by creation time, which keeps B-tree indexes compact
// when used as primary keys.
func NewSequential() (uuid.UUID, error) {
	return uuid.NewV7()
}

// MustSequential is like NewSequential but panics when the system clock
// or entropy source fails.
func MustSequential() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id
}

// Deterministic derives the same (version 5, SHA-1) identifier for the
// same namespace and name on every call.
func Deterministic(namespace uuid.UUID, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(name))
}

// IsEmpty reports whether id is the all-zero identifier.
func IsEmpty(id uuid.UUID) bool {
	return id == uuid.Nil
}

// Parse accepts the canonical form plus the braced, URN and raw-hex
// variants, case-insensitively.
func Parse(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}
