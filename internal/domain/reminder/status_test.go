package reminder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

func newTestReminder(t *testing.T, status reminder.Status, deadline common.Date) *reminder.Reminder {
	t.Helper()
	r, err := reminder.New("Widerspruch einlegen", "", reminder.CategoryObjectionPeriod,
		deadline, nil, reminder.PriorityHigh, "S 12 AS 345/25", false, "", time.Now())
	require.NoError(t, err)
	r.Status = status
	return r
}

func TestCanTransition_Matrix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to reminder.Status
		allowed  bool
	}{
		// * -> erledigt is always allowed ("mark complete").
		{reminder.StatusActive, reminder.StatusDone, true},
		{reminder.StatusMuted, reminder.StatusDone, true},
		{reminder.StatusMissed, reminder.StatusDone, true},
		{reminder.StatusDone, reminder.StatusDone, true},

		// Mute toggle.
		{reminder.StatusActive, reminder.StatusMuted, true},
		{reminder.StatusMuted, reminder.StatusActive, true},

		// Everything else is undefined.
		{reminder.StatusDone, reminder.StatusActive, false},
		{reminder.StatusDone, reminder.StatusMuted, false},
		{reminder.StatusMissed, reminder.StatusActive, false},
		{reminder.StatusMissed, reminder.StatusMuted, false},
		{reminder.StatusActive, reminder.StatusMissed, false}, // only reconcile sets verpasst
		{reminder.StatusMuted, reminder.StatusMissed, false},
		{reminder.StatusActive, reminder.StatusActive, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, reminder.CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestApplyStatus_DoneStampsCompletedAt(t *testing.T) {
	t.Parallel()

	deadline := common.NewDate(2025, time.May, 15)
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

	for _, from := range []reminder.Status{
		reminder.StatusActive, reminder.StatusMuted, reminder.StatusMissed,
	} {
		r := newTestReminder(t, from, deadline)
		require.Nil(t, r.CompletedAt)

		require.NoError(t, r.ApplyStatus(reminder.StatusDone, now))
		assert.Equal(t, reminder.StatusDone, r.Status)
		require.NotNil(t, r.CompletedAt, "from %s", from)
		assert.Equal(t, now, *r.CompletedAt)
	}
}

func TestApplyStatus_RejectsUndefinedTransitions(t *testing.T) {
	t.Parallel()

	deadline := common.NewDate(2025, time.May, 15)
	r := newTestReminder(t, reminder.StatusDone, deadline)
	now := time.Now()
	require.NoError(t, r.ApplyStatus(reminder.StatusDone, now))
	completedAt := *r.CompletedAt

	err := r.ApplyStatus(reminder.StatusActive, now)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeReminderInvalidTransition, errors.CodeOf(err))

	// Rejected transition leaves the entity unchanged.
	assert.Equal(t, reminder.StatusDone, r.Status)
	assert.Equal(t, completedAt, *r.CompletedAt)
}

func TestApplyStatus_MuteToggleDoesNotTouchCompletedAt(t *testing.T) {
	t.Parallel()

	r := newTestReminder(t, reminder.StatusActive, common.NewDate(2025, time.May, 15))

	require.NoError(t, r.ApplyStatus(reminder.StatusMuted, time.Now()))
	assert.Nil(t, r.CompletedAt)
	require.NoError(t, r.ApplyStatus(reminder.StatusActive, time.Now()))
	assert.Nil(t, r.CompletedAt)
}

func TestReconcile_MovesOverdueActiveAndMutedToMissed(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 14)
	past := common.NewDate(2025, time.April, 13)

	cases := []struct {
		name        string
		status      reminder.Status
		deadline    common.Date
		wantChanged bool
		wantStatus  reminder.Status
	}{
		{"active overdue", reminder.StatusActive, past, true, reminder.StatusMissed},
		{"muted overdue", reminder.StatusMuted, past, true, reminder.StatusMissed},
		{"active due today stays", reminder.StatusActive, today, false, reminder.StatusActive},
		{"active in future stays", reminder.StatusActive, today.AddDays(5), false, reminder.StatusActive},
		{"done is never touched", reminder.StatusDone, past, false, reminder.StatusDone},
		{"missed is idempotent", reminder.StatusMissed, past, false, reminder.StatusMissed},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := newTestReminder(t, tc.status, tc.deadline)
			assert.Equal(t, tc.wantChanged, r.Reconcile(today))
			assert.Equal(t, tc.wantStatus, r.Status)
		})
	}
}
