package reminder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

func calReminder(t *testing.T, title string, deadline common.Date, priority domain.Priority,
	status domain.Status) *domain.Reminder {

	t.Helper()
	r, err := domain.New(title, "", domain.CategoryOther, deadline, nil, priority, "",
		false, "", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	r.Status = status
	return r
}

func TestIndexByDate_RestrictsToMonth(t *testing.T) {
	t.Parallel()

	entities := []*domain.Reminder{
		calReminder(t, "Miete März", common.NewDate(2025, time.March, 31), domain.PriorityMedium, domain.StatusActive),
		calReminder(t, "WBA April", common.NewDate(2025, time.April, 1), domain.PriorityHigh, domain.StatusActive),
		calReminder(t, "Termin April", common.NewDate(2025, time.April, 15), domain.PriorityMedium, domain.StatusDone),
		calReminder(t, "Termin April 2", common.NewDate(2025, time.April, 15), domain.PriorityLow, domain.StatusActive),
		calReminder(t, "Klage Mai", common.NewDate(2025, time.May, 1), domain.PriorityCritical, domain.StatusActive),
	}

	index := app.IndexByDate(entities, 2025, time.April)

	require.Len(t, index, 2, "only April dates appear")
	assert.Len(t, index["2025-04-01"], 1)
	assert.Len(t, index["2025-04-15"], 2)
	_, march := index["2025-03-31"]
	assert.False(t, march)

	// Day buckets keep input order.
	assert.Equal(t, "Termin April", index["2025-04-15"][0].Title)
	assert.Equal(t, "Termin April 2", index["2025-04-15"][1].Title)
}

func TestIndexByDate_SameMonthOtherYearExcluded(t *testing.T) {
	t.Parallel()

	entities := []*domain.Reminder{
		calReminder(t, "April 2024", common.NewDate(2024, time.April, 10), domain.PriorityMedium, domain.StatusActive),
	}
	assert.Empty(t, app.IndexByDate(entities, 2025, time.April))
}

func TestUrgentWithinDays_FiltersAndSorts(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 10)
	overdue := calReminder(t, "verpasste Frist", common.NewDate(2025, time.April, 5), domain.PriorityLow, domain.StatusMissed)
	dueSoonHigh := calReminder(t, "hoch", common.NewDate(2025, time.April, 12), domain.PriorityHigh, domain.StatusActive)
	dueSoonCritical := calReminder(t, "kritisch", common.NewDate(2025, time.April, 12), domain.PriorityCritical, domain.StatusActive)
	muted := calReminder(t, "stumm", common.NewDate(2025, time.April, 11), domain.PriorityCritical, domain.StatusMuted)
	done := calReminder(t, "erledigt", common.NewDate(2025, time.April, 11), domain.PriorityCritical, domain.StatusDone)
	farOut := calReminder(t, "fern", common.NewDate(2025, time.June, 1), domain.PriorityCritical, domain.StatusActive)

	urgent := app.UrgentWithinDays(
		[]*domain.Reminder{dueSoonHigh, farOut, muted, overdue, done, dueSoonCritical},
		today, 7)

	require.Len(t, urgent, 3)
	assert.Equal(t, "verpasste Frist", urgent[0].Title, "overdue sorts first by deadline")
	assert.Equal(t, "kritisch", urgent[1].Title, "kritisch before hoch on the same day")
	assert.Equal(t, "hoch", urgent[2].Title)
}

func TestUrgentWithinDays_HorizonBoundary(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 10)
	atHorizon := calReminder(t, "am Horizont", common.NewDate(2025, time.April, 17), domain.PriorityMedium, domain.StatusActive)
	beyond := calReminder(t, "dahinter", common.NewDate(2025, time.April, 18), domain.PriorityMedium, domain.StatusActive)

	urgent := app.UrgentWithinDays([]*domain.Reminder{beyond, atHorizon}, today, 7)
	require.Len(t, urgent, 1)
	assert.Equal(t, "am Horizont", urgent[0].Title)
}
