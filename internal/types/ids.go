package types

import (
	"strconv"

	"github.com/google/uuid"
)

// ProjectID identifies a project for the lifetime of the process.
// It is opaque: callers compare it for equality and never parse it.
type ProjectID string

// NewProjectID returns a fresh random identifier.
func NewProjectID() ProjectID {
	return ProjectID(uuid.NewString())
}

// SequentialProjectIDs returns a generator producing prefix1, prefix2, ...
// Each generator counts on its own.
func SequentialProjectIDs(prefix string) func() ProjectID {
	n := 0
	return func() ProjectID {
		n++
		return ProjectID(prefix + strconv.Itoa(n))
	}
}

// String returns the raw identifier, which is also what travels in a drag payload
func (id ProjectID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty
func (id ProjectID) IsZero() bool {
	return id == ""
}
