package notify

import (
	"context"
	"encoding/json"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/messaging/kafka"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
)

// KafkaNotifier publishes each notification as a JSON event keyed by reminder
// ID.  A broker that accepts connections counts as granted permission; there
// is no per-user consent flow on this channel.
type KafkaNotifier struct {
	producer *kafka.Producer
}

// NewKafkaNotifier constructs a KafkaNotifier on top of an existing producer.
func NewKafkaNotifier(producer *kafka.Producer) *KafkaNotifier {
	return &KafkaNotifier{producer: producer}
}

func (k *KafkaNotifier) Permission(context.Context) app.PermissionState {
	return app.PermissionGranted
}

func (k *KafkaNotifier) RequestPermission(context.Context) app.PermissionState {
	return app.PermissionGranted
}

// Send marshals the notification and publishes it keyed by reminder ID, so
// events for one reminder stay ordered within a partition.
func (k *KafkaNotifier) Send(ctx context.Context, n app.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode notification")
	}
	return k.producer.Publish(ctx, []byte(n.ReminderID), payload)
}

// Close releases the underlying producer.
func (k *KafkaNotifier) Close() error {
	return k.producer.Close()
}
