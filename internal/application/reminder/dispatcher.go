package reminder

import (
	"context"
	"fmt"

	"github.com/sozialtools/fristenwaechter/internal/domain/clock"
	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// PermissionState is the platform notification permission.
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
	PermissionUnknown PermissionState = "default"
)

// Notification is the payload handed to a notification channel.
type Notification struct {
	ReminderID   common.ID       `json:"id"`
	Title        string          `json:"titel"`
	Body         string          `json:"text"`
	DeadlineDate common.Date     `json:"fristDatum"`
	Priority     domain.Priority `json:"prioritaet"`
}

// Notifier is the platform notification boundary.  Implementations must treat
// Send failures as per-notification: one failed delivery never aborts the
// batch.
type Notifier interface {
	// Permission returns the current permission state without prompting.
	Permission(ctx context.Context) PermissionState

	// RequestPermission prompts for permission if the state is still
	// undecided and returns the resulting state.
	RequestPermission(ctx context.Context) PermissionState

	// Send emits one notification.
	Send(ctx context.Context, n Notification) error
}

// DispatcherMetrics is the counter surface the dispatcher reports into.
type DispatcherMetrics interface {
	NotificationSent()
	NotificationFailed()
	NotificationSkipped()
}

// NopDispatcherMetrics discards all counter updates.
type NopDispatcherMetrics struct{}

func (NopDispatcherMetrics) NotificationSent()    {}
func (NopDispatcherMetrics) NotificationFailed()  {}
func (NopDispatcherMetrics) NotificationSkipped() {}

// Dispatcher emits notifications for due reminders: status aktiv and trigger
// date reached.  The once-per-day dedupe is an explicit policy here — a
// reminder fires at most once per calendar day no matter how often the
// surrounding application asks for a dispatch.
type Dispatcher struct {
	notifier Notifier
	clock    clock.Clock
	logger   logging.Logger
	metrics  DispatcherMetrics

	// dispatched maps reminder ID to the date it was last notified on.
	dispatched map[common.ID]common.Date
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(notifier Notifier, clk clock.Clock, logger logging.Logger,
	metrics DispatcherMetrics) *Dispatcher {

	if metrics == nil {
		metrics = NopDispatcherMetrics{}
	}
	return &Dispatcher{
		notifier:   notifier,
		clock:      clk,
		logger:     logger.Named("dispatch"),
		metrics:    metrics,
		dispatched: make(map[common.ID]common.Date),
	}
}

// DispatchDue attempts one notification for every due reminder in entities.
//
// Permission is checked first and requested once if still undecided; without
// a grant the dispatcher returns without attempting any delivery and without
// error.  Individual delivery failures are logged and counted but never stop
// the remaining attempts.  It returns the number of notifications delivered.
func (d *Dispatcher) DispatchDue(ctx context.Context, entities []*domain.Reminder) int {
	today := d.clock.Today()

	due := make([]*domain.Reminder, 0, len(entities))
	for _, e := range entities {
		if e.IsDue(today) {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return 0
	}

	perm := d.notifier.Permission(ctx)
	if perm == PermissionUnknown {
		perm = d.notifier.RequestPermission(ctx)
	}
	if perm != PermissionGranted {
		d.logger.Info("notification permission not granted, skipping dispatch",
			logging.String("permission", string(perm)),
			logging.Int("due", len(due)))
		return 0
	}

	sent := 0
	for _, e := range due {
		if last, ok := d.dispatched[e.ID]; ok && last.Equal(today) {
			d.metrics.NotificationSkipped()
			continue
		}

		n := Notification{
			ReminderID:   e.ID,
			Title:        e.Title,
			Body:         fmt.Sprintf("Frist am %s (%s)", e.DeadlineDate, e.Category),
			DeadlineDate: e.DeadlineDate,
			Priority:     e.Priority,
		}
		if err := d.notifier.Send(ctx, n); err != nil {
			d.metrics.NotificationFailed()
			d.logger.Warn("notification delivery failed",
				logging.String("id", string(e.ID)), logging.Err(err))
			continue
		}
		d.dispatched[e.ID] = today
		d.metrics.NotificationSent()
		sent++
	}
	return sent
}
