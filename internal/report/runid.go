package report

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewRunID returns a lexicographically sortable identifier stamped on the
// tables and logs of one CLI invocation, so exports from repeated runs can
// be told apart.
func NewRunID() string {
	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0) //nolint:gosec // IDs are not security sensitive
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}
