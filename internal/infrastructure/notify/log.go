// Package notify provides the notification channel implementations behind the
// dispatcher's Notifier boundary: a log channel for local and CLI use, and a
// Kafka channel publishing due-reminder events for downstream delivery.
package notify

import (
	"context"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
)

// LogNotifier writes notifications to the structured log.  Permission is
// always granted; there is no platform prompt to drive.
type LogNotifier struct {
	logger logging.Logger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notify")}
}

func (l *LogNotifier) Permission(context.Context) app.PermissionState {
	return app.PermissionGranted
}

func (l *LogNotifier) RequestPermission(context.Context) app.PermissionState {
	return app.PermissionGranted
}

// Send logs the notification at info level.
func (l *LogNotifier) Send(_ context.Context, n app.Notification) error {
	l.logger.Info("reminder due",
		logging.String("id", string(n.ReminderID)),
		logging.String("titel", n.Title),
		logging.String("frist", n.DeadlineDate.String()),
		logging.String("prioritaet", string(n.Priority)),
		logging.String("text", n.Body))
	return nil
}
