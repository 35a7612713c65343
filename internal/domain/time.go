package domain

import (
	"time"

	"github.com/glucokit/glucokit/internal/errors"
)

// dayLayout is the wire format for calendar dates at the application
// boundary.
const dayLayout = "2006-01-02"

// ParseDay parses a calendar date. Malformed input fails fast with a
// validation error; there is no best-effort parsing.
func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return time.Time{}, errors.NewInvalidTimestampError(value)
	}
	return t, nil
}
