package id

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewTicketRef returns a sortable, human-quotable reference for support
// tickets, e.g. "TCK-01J8ZQ2M3N...".
func NewTicketRef() string {
	return "TCK-" + ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
