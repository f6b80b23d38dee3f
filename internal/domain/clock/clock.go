// Package clock supplies the current date as an injectable dependency.
//
// Every component that needs "now" — the deadline calculator's remaining-days
// derivation, the reminder reconciliation pass, the calendar views — receives
// a Clock instead of calling time.Now directly, so that all date logic is
// deterministic under test.
package clock

import (
	"time"

	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// Clock provides the current wall-clock time and its local calendar date.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// Today returns the current local calendar date.
	Today() common.Date
}

type systemClock struct{}

// System returns a Clock backed by the local system time.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Today() common.Date {
	return common.DateOf(time.Now())
}

// Fixed is a Clock pinned to a single instant.  Intended for tests.
type Fixed struct {
	Instant time.Time
}

// FixedAt returns a Fixed clock pinned to the given date at midnight local time.
func FixedAt(d common.Date) Fixed {
	return Fixed{Instant: d.Time()}
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

func (f Fixed) Today() common.Date {
	return common.DateOf(f.Instant)
}
