// Package kafka provides the event producer used to publish due-reminder
// notifications onto a broker topic for downstream delivery channels
// (mail gateway, messenger bots).
package kafka

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
)

// DefaultTopic is the topic due-reminder events are published to.
const DefaultTopic = "fristenwaechter.erinnerungen.faellig"

// ProducerConfig holds configuration for the Producer.
type ProducerConfig struct {
	Brokers      []string      `mapstructure:"brokers"`
	Topic        string        `mapstructure:"topic"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
}

// writerInterface abstracts kafka.Writer for testing.
type writerInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes messages to a single topic.
type Producer struct {
	writer writerInterface
	topic  string
	logger logging.Logger
	closed atomic.Bool
}

// NewProducer creates a Producer from cfg.
func NewProducer(cfg ProducerConfig, logger logging.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.Validation("kafka brokers must not be empty")
	}
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}
	if cfg.BatchTimeout == 0 {
		cfg.BatchTimeout = 100 * time.Millisecond
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		MaxAttempts:  cfg.MaxAttempts,
		RequiredAcks: kafka.RequireAll,
	}

	return &Producer{writer: w, topic: cfg.Topic, logger: logger.Named("kafka")}, nil
}

// Publish writes one keyed message to the producer's topic.
func (p *Producer) Publish(ctx context.Context, key, value []byte) error {
	if p.closed.Load() {
		return errors.New(errors.ErrCodeServiceUnavailable, "kafka producer is closed")
	}
	err := p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeNotifyDeliveryFailed, "failed to publish message")
	}
	p.logger.Debug("published message",
		logging.String("topic", p.topic), logging.Int("bytes", len(value)))
	return nil
}

// Close flushes and releases the underlying writer.  Subsequent Publish calls
// fail fast.
func (p *Producer) Close() error {
	if p.closed.Swap(true) {
		return nil
	}
	return p.writer.Close()
}
