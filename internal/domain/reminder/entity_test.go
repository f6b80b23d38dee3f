package reminder_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

func TestNew_AppliesCategoryDefaults(t *testing.T) {
	t.Parallel()

	deadline := common.NewDate(2025, time.June, 30)
	r, err := reminder.New("WBA stellen", "Weiterbewilligungsantrag Jobcenter",
		reminder.CategoryReapplication, deadline, nil, "", "", false, "", time.Now())
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, reminder.StatusActive, r.Status)
	assert.Equal(t, reminder.PriorityMedium, r.Priority, "priority defaults to mittel")
	assert.Equal(t, 14, r.LeadDays, "lead days default per category")
	assert.Equal(t, "2025-06-16", r.TriggerDate.String())
	assert.False(t, r.CreatedAt.IsZero())
	assert.Nil(t, r.CompletedAt)
}

func TestNew_ExplicitLeadDaysOverrideDefault(t *testing.T) {
	t.Parallel()

	lead := 2
	deadline := common.NewDate(2025, time.June, 30)
	r, err := reminder.New("Unterlagen nachreichen", "", reminder.CategorySubmission,
		deadline, &lead, reminder.PriorityHigh, "", false, "", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 2, r.LeadDays)
	assert.Equal(t, "2025-06-28", r.TriggerDate.String())
}

func TestNew_ValidatesDraft(t *testing.T) {
	t.Parallel()

	deadline := common.NewDate(2025, time.June, 30)
	negative := -1

	cases := []struct {
		name string
		fn   func() (*reminder.Reminder, error)
	}{
		{"empty title", func() (*reminder.Reminder, error) {
			return reminder.New("", "", reminder.CategoryOther, deadline, nil, "", "", false, "", time.Now())
		}},
		{"unknown category", func() (*reminder.Reminder, error) {
			return reminder.New("x", "", reminder.Category("urlaub"), deadline, nil, "", "", false, "", time.Now())
		}},
		{"zero deadline", func() (*reminder.Reminder, error) {
			return reminder.New("x", "", reminder.CategoryOther, common.Date{}, nil, "", "", false, "", time.Now())
		}},
		{"negative lead days", func() (*reminder.Reminder, error) {
			return reminder.New("x", "", reminder.CategoryOther, deadline, &negative, "", "", false, "", time.Now())
		}},
		{"recurring without interval", func() (*reminder.Reminder, error) {
			return reminder.New("x", "", reminder.CategoryOther, deadline, nil, "", "", true, "", time.Now())
		}},
		{"interval without recurring", func() (*reminder.Reminder, error) {
			return reminder.New("x", "", reminder.CategoryOther, deadline, nil, "", "", false, reminder.IntervalMonthly, time.Now())
		}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.fn()
			assert.Error(t, err)
		})
	}
}

func TestTriggerDate_NeverAfterDeadline(t *testing.T) {
	t.Parallel()

	deadline := common.NewDate(2025, time.June, 30)
	for _, lead := range []int{0, 1, 7, 30} {
		lead := lead
		r, err := reminder.New("x", "", reminder.CategoryOther, deadline, &lead,
			"", "", false, "", time.Now())
		require.NoError(t, err)
		assert.False(t, r.TriggerDate.After(r.DeadlineDate), "lead=%d", lead)
	}
}

func TestReminder_WireFormat(t *testing.T) {
	t.Parallel()

	lead := 7
	created := time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)
	r, err := reminder.New("Widerspruch ALG II", "Kürzungsbescheid vom 10.03.",
		reminder.CategoryObjectionPeriod, common.NewDate(2025, time.April, 13),
		&lead, reminder.PriorityCritical, "W 123/25", true, reminder.IntervalMonthly, created)
	require.NoError(t, err)

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))

	// German wire keys and enum values, dates as YYYY-MM-DD.
	assert.Equal(t, "Widerspruch ALG II", m["titel"])
	assert.Equal(t, "widerspruchsfrist", m["typ"])
	assert.Equal(t, "2025-04-13", m["fristDatum"])
	assert.Equal(t, "2025-04-06", m["erinnerungsDatum"])
	assert.Equal(t, float64(7), m["vorlaufTage"])
	assert.Equal(t, "kritisch", m["prioritaet"])
	assert.Equal(t, "aktiv", m["status"])
	assert.Equal(t, "W 123/25", m["aktenzeichen"])
	assert.Equal(t, true, m["wiederholend"])
	assert.Equal(t, "monatlich", m["wiederholungsIntervall"])
	assert.NotContains(t, m, "erledigtAm", "unset completedAt is omitted")

	var back reminder.Reminder
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, r.ID, back.ID)
	assert.True(t, back.DeadlineDate.Equal(r.DeadlineDate))
	assert.True(t, back.TriggerDate.Equal(r.TriggerDate))
}

func TestIsDue(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 10)
	r := newTestReminder(t, reminder.StatusActive, common.NewDate(2025, time.April, 13))
	lead := 3
	r.LeadDays = lead
	r.RecomputeTrigger() // trigger = 2025-04-10

	assert.True(t, r.IsDue(today))
	assert.False(t, r.IsDue(today.AddDays(-1)))

	r.Status = reminder.StatusMuted
	assert.False(t, r.IsDue(today), "muted reminders never fire")
}
