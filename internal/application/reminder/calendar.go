package reminder

import (
	"sort"
	"time"

	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// IndexByDate buckets the given reminders by their deadline's ISO date,
// restricted to deadlines falling within (year, month).  Entities from
// adjacent months never appear.  Ordering within a day bucket is the input
// order.
func IndexByDate(entities []*domain.Reminder, year int, month time.Month) map[string][]*domain.Reminder {
	index := make(map[string][]*domain.Reminder)
	for _, e := range entities {
		d := e.DeadlineDate
		if d.IsZero() || d.Year() != year || d.Month() != month {
			continue
		}
		key := d.String()
		index[key] = append(index[key], e)
	}
	return index
}

// UrgentWithinDays returns the reminders demanding attention: status aktiv or
// verpasst, deadline at most horizonDays away (overdue included).  The result
// is sorted by (deadline asc, priority rank asc), so among same-day deadlines
// kritisch comes before hoch.
func UrgentWithinDays(entities []*domain.Reminder, today common.Date, horizonDays int) []*domain.Reminder {
	var urgent []*domain.Reminder
	for _, e := range entities {
		if e.Status != domain.StatusActive && e.Status != domain.StatusMissed {
			continue
		}
		if e.DaysUntilDeadline(today) > horizonDays {
			continue
		}
		urgent = append(urgent, e)
	}
	sort.SliceStable(urgent, func(i, j int) bool {
		if !urgent[i].DeadlineDate.Equal(urgent[j].DeadlineDate) {
			return urgent[i].DeadlineDate.Before(urgent[j].DeadlineDate)
		}
		return urgent[i].Priority.Rank() < urgent[j].Priority.Rank()
	})
	return urgent
}

// MonthView is the calendar aggregation for one month.
type MonthView struct {
	Year       int                           `json:"jahr"`
	Month      time.Month                    `json:"monat"`
	Days       map[string][]*domain.Reminder `json:"tage"`
	TotalCount int                           `json:"anzahl"`
}

// MonthView derives the calendar aggregation for (year, month) from the
// current collection.  Statuses are reconciled at load time, so the view
// never shows a stale aktiv for an overdue reminder.
func (s *Service) MonthView(year int, month time.Month) MonthView {
	index := IndexByDate(s.All(), year, month)
	total := 0
	for _, bucket := range index {
		total += len(bucket)
	}
	return MonthView{Year: year, Month: month, Days: index, TotalCount: total}
}

// Urgent derives the urgent list from the current collection using the
// service clock.
func (s *Service) Urgent(horizonDays int) []*domain.Reminder {
	return UrgentWithinDays(s.All(), s.clock.Today(), horizonDays)
}
