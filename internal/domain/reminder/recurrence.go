package reminder

import (
	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// NextOccurrence computes the next date of a recurring obligation.
//
// Month-based intervals clamp to the last valid day of the target month when
// the source day does not exist in it (Jan 31 + monatlich → Feb 28/29); the
// annual interval only ever needs clamping for Feb 29 in non-leap years.
//
// Recurrence is suggestion-only: completing a recurring reminder never
// auto-creates a successor, the next date is offered to the user on request.
func NextOccurrence(date common.Date, interval Interval) (common.Date, error) {
	if date.IsZero() {
		return common.Date{}, errors.New(errors.ErrCodeReminderInvalidDraft,
			"recurrence base date is required")
	}
	switch interval {
	case IntervalMonthly:
		return date.AddMonths(1), nil
	case IntervalQuarterly:
		return date.AddMonths(3), nil
	case IntervalSemiannual:
		return date.AddMonths(6), nil
	case IntervalAnnual:
		return date.AddYears(1), nil
	default:
		return common.Date{}, errors.Newf(errors.ErrCodeReminderInvalidDraft,
			"unknown recurrence interval %q", interval)
	}
}
