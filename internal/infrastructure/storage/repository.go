package storage

import (
	"context"
	"encoding/json"

	"github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
)

// ReminderRepository adapts a BlobStore to the domain Repository contract:
// the collection is (de)serialized as one JSON array, and loading is strictly
// fail-open — an absent, unreadable, or malformed blob yields an empty
// collection so the engine never refuses to start over bad stored data.
type ReminderRepository struct {
	blob   BlobStore
	logger logging.Logger
}

// NewReminderRepository constructs a ReminderRepository.
func NewReminderRepository(blob BlobStore, logger logging.Logger) *ReminderRepository {
	return &ReminderRepository{blob: blob, logger: logger.Named("storage")}
}

// LoadAll implements reminder.Repository.
func (r *ReminderRepository) LoadAll(ctx context.Context) []*reminder.Reminder {
	data, err := r.blob.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrBlobNotFound) && errors.CodeOf(err) != errors.ErrCodeNotFound {
			r.logger.Warn("failed to load reminder blob, starting empty", logging.Err(err))
		}
		return nil
	}

	var entities []*reminder.Reminder
	if err := json.Unmarshal(data, &entities); err != nil {
		r.logger.Warn("malformed reminder blob, starting empty", logging.Err(err))
		return nil
	}

	// Drop elements that fail entity validation rather than poisoning the
	// collection; a single hand-edited entry must not take the rest down.
	valid := entities[:0]
	for _, e := range entities {
		if e == nil {
			continue
		}
		if err := e.Validate(); err != nil {
			r.logger.Warn("dropping invalid stored reminder",
				logging.String("id", string(e.ID)), logging.Err(err))
			continue
		}
		valid = append(valid, e)
	}
	return valid
}

// SaveAll implements reminder.Repository.
func (r *ReminderRepository) SaveAll(ctx context.Context, entities []*reminder.Reminder) error {
	if entities == nil {
		entities = []*reminder.Reminder{}
	}
	data, err := json.Marshal(entities)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode reminders")
	}
	return r.blob.Save(ctx, data)
}
