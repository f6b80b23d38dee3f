package reminder_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	"github.com/sozialtools/fristenwaechter/internal/domain/clock"
	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// fakeNotifier records sends and simulates the permission flow.
type fakeNotifier struct {
	state    app.PermissionState
	grantsTo app.PermissionState // state returned by RequestPermission
	requests int
	sent     []app.Notification
	failFor  map[common.ID]bool
}

func (f *fakeNotifier) Permission(context.Context) app.PermissionState {
	return f.state
}

func (f *fakeNotifier) RequestPermission(context.Context) app.PermissionState {
	f.requests++
	f.state = f.grantsTo
	return f.state
}

func (f *fakeNotifier) Send(_ context.Context, n app.Notification) error {
	if f.failFor[n.ReminderID] {
		return errors.New(errors.ErrCodeNotifyDeliveryFailed, "channel unavailable")
	}
	f.sent = append(f.sent, n)
	return nil
}

func dueReminder(t *testing.T, title string, deadline common.Date) *domain.Reminder {
	t.Helper()
	lead := 0
	r, err := domain.New(title, "", domain.CategoryAppointment, deadline, &lead,
		domain.PriorityHigh, "", false, "", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return r
}

func TestDispatchDue_SendsOnlyDueReminders(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 10)
	notifier := &fakeNotifier{state: app.PermissionGranted}
	d := app.NewDispatcher(notifier, clock.FixedAt(today), logging.NewNop(), nil)

	due := dueReminder(t, "heute fällig", today)
	future := dueReminder(t, "später", common.NewDate(2025, time.May, 1))
	muted := dueReminder(t, "stumm", today)
	muted.Status = domain.StatusMuted

	sent := d.DispatchDue(context.Background(), []*domain.Reminder{due, future, muted})

	assert.Equal(t, 1, sent)
	require.Len(t, notifier.sent, 1)
	n := notifier.sent[0]
	assert.Equal(t, due.ID, n.ReminderID)
	assert.Equal(t, "heute fällig", n.Title)
	assert.Contains(t, n.Body, "2025-04-10")
}

func TestDispatchDue_RequestsPermissionOnceWhenUndecided(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 10)
	notifier := &fakeNotifier{state: app.PermissionUnknown, grantsTo: app.PermissionGranted}
	d := app.NewDispatcher(notifier, clock.FixedAt(today), logging.NewNop(), nil)

	due := dueReminder(t, "fällig", today)
	sent := d.DispatchDue(context.Background(), []*domain.Reminder{due})

	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, notifier.requests)
}

func TestDispatchDue_DeniedPermissionSendsNothing(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 10)
	notifier := &fakeNotifier{state: app.PermissionUnknown, grantsTo: app.PermissionDenied}
	d := app.NewDispatcher(notifier, clock.FixedAt(today), logging.NewNop(), nil)

	sent := d.DispatchDue(context.Background(), []*domain.Reminder{dueReminder(t, "fällig", today)})

	assert.Zero(t, sent)
	assert.Empty(t, notifier.sent)
}

func TestDispatchDue_ContinuesPastDeliveryFailures(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 10)
	failing := dueReminder(t, "kaputt", today)
	working := dueReminder(t, "geht", today)
	notifier := &fakeNotifier{
		state:   app.PermissionGranted,
		failFor: map[common.ID]bool{failing.ID: true},
	}
	d := app.NewDispatcher(notifier, clock.FixedAt(today), logging.NewNop(), nil)

	sent := d.DispatchDue(context.Background(), []*domain.Reminder{failing, working})

	assert.Equal(t, 1, sent)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, working.ID, notifier.sent[0].ReminderID)
}

func TestDispatchDue_OncePerDayDedupe(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 10)
	notifier := &fakeNotifier{state: app.PermissionGranted}
	d := app.NewDispatcher(notifier, clock.FixedAt(today), logging.NewNop(), nil)
	due := dueReminder(t, "fällig", today)

	assert.Equal(t, 1, d.DispatchDue(context.Background(), []*domain.Reminder{due}))
	assert.Equal(t, 0, d.DispatchDue(context.Background(), []*domain.Reminder{due}),
		"second dispatch on the same day is suppressed")
	assert.Len(t, notifier.sent, 1)
}

func TestDispatchDue_FailedDeliveryRetriesSameDay(t *testing.T) {
	t.Parallel()

	today := common.NewDate(2025, time.April, 10)
	due := dueReminder(t, "fällig", today)
	notifier := &fakeNotifier{
		state:   app.PermissionGranted,
		failFor: map[common.ID]bool{due.ID: true},
	}
	d := app.NewDispatcher(notifier, clock.FixedAt(today), logging.NewNop(), nil)

	assert.Zero(t, d.DispatchDue(context.Background(), []*domain.Reminder{due}))

	// The failure did not consume the daily slot.
	notifier.failFor = nil
	assert.Equal(t, 1, d.DispatchDue(context.Background(), []*domain.Reminder{due}))
}
