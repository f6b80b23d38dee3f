// Package reminder provides the application services of the engine: the
// Service owning the canonical reminder collection, the calendar aggregation
// views derived from it, and the notification dispatcher.
package reminder

import (
	"context"
	"sort"
	"sync"

	"github.com/sozialtools/fristenwaechter/internal/domain/clock"
	domain "github.com/sozialtools/fristenwaechter/internal/domain/reminder"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// Draft carries the caller-supplied fields for creating a reminder.
// LeadDays nil means "use the category default".
type Draft struct {
	Title         string
	Description   string
	Category      domain.Category
	DeadlineDate  common.Date
	LeadDays      *int
	Priority      domain.Priority
	CaseReference string
	Recurring     bool
	Interval      domain.Interval
}

// Patch carries a partial update; nil fields are left untouched.  Changing
// DeadlineDate or LeadDays recomputes the trigger date but never the status —
// a later reconciliation pass decides whether the new deadline is already past.
type Patch struct {
	Title         *string
	Description   *string
	Category      *domain.Category
	DeadlineDate  *common.Date
	LeadDays      *int
	Priority      *domain.Priority
	CaseReference *string
	Recurring     *bool
	Interval      *domain.Interval
}

// Service owns the canonical reminder collection.  All consumers receive
// copies or narrow commands; nothing outside the Service mutates entities.
//
// Every mutating operation persists the whole collection synchronously before
// returning, so a crash loses at most the one uncommitted change.  The mutex
// exists because the HTTP server calls in from multiple goroutines; the
// engine's semantics remain single-owner.
type Service struct {
	mu       sync.Mutex
	entities []*domain.Reminder

	repo    domain.Repository
	clock   clock.Clock
	logger  logging.Logger
	metrics Metrics
}

// Metrics is the narrow counter surface the service reports into.
// A zero NopMetrics value is used when monitoring is disabled.
type Metrics interface {
	ReconciledMissed(count int)
	StoreSaveFailed()
}

// NopMetrics discards all counter updates.
type NopMetrics struct{}

func (NopMetrics) ReconciledMissed(int) {}
func (NopMetrics) StoreSaveFailed()     {}

// NewService constructs a Service, loads the stored collection, and runs the
// reconciliation pass before any derived view can observe stale statuses.
func NewService(ctx context.Context, repo domain.Repository, clk clock.Clock,
	logger logging.Logger, metrics Metrics) (*Service, error) {

	if metrics == nil {
		metrics = NopMetrics{}
	}
	s := &Service{
		repo:    repo,
		clock:   clk,
		logger:  logger.Named("reminders"),
		metrics: metrics,
	}
	s.entities = repo.LoadAll(ctx)

	changed, err := s.Reconcile(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("reminder store loaded",
		logging.Int("count", len(s.entities)),
		logging.Int("reconciled", changed))
	return s, nil
}

// Create assigns an ID, derives the trigger date, sets the status to aktiv,
// stamps the creation time, and persists.
func (s *Service) Create(ctx context.Context, draft Draft) (*domain.Reminder, error) {
	entity, err := domain.New(draft.Title, draft.Description, draft.Category,
		draft.DeadlineDate, draft.LeadDays, draft.Priority, draft.CaseReference,
		draft.Recurring, draft.Interval, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entities = append(s.entities, entity)
	if err := s.persistLocked(ctx); err != nil {
		s.entities = s.entities[:len(s.entities)-1]
		return nil, err
	}
	return entity.Clone(), nil
}

// Update applies patch to the identified reminder and persists.  An unknown
// id is a no-op signalled with a not-found error; the caller decides whether
// that is worth surfacing.
func (s *Service) Update(ctx context.Context, id common.ID, patch Patch) (*domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity := s.findLocked(id)
	if entity == nil {
		return nil, errors.Newf(errors.ErrCodeReminderNotFound, "reminder %s not found", id)
	}

	updated := entity.Clone()
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	if patch.DeadlineDate != nil {
		updated.DeadlineDate = *patch.DeadlineDate
	}
	if patch.LeadDays != nil {
		updated.LeadDays = *patch.LeadDays
	}
	if patch.Priority != nil {
		updated.Priority = *patch.Priority
	}
	if patch.CaseReference != nil {
		updated.CaseReference = *patch.CaseReference
	}
	if patch.Recurring != nil {
		updated.Recurring = *patch.Recurring
		if !updated.Recurring {
			updated.Interval = ""
		}
	}
	if patch.Interval != nil {
		updated.Interval = *patch.Interval
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if patch.DeadlineDate != nil || patch.LeadDays != nil {
		updated.RecomputeTrigger()
	}

	*entity = *updated
	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return entity.Clone(), nil
}

// Remove deletes the identified reminder.  Removing an absent id is a no-op.
func (s *Service) Remove(ctx context.Context, id common.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entities {
		if e.ID == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	return nil
}

// SetStatus applies a user-driven status transition per the state machine.
// Undefined transitions are rejected and leave the entity unchanged; the
// automatic verpasst transition belongs to Reconcile, not here.
func (s *Service) SetStatus(ctx context.Context, id common.ID, status domain.Status) (*domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity := s.findLocked(id)
	if entity == nil {
		return nil, errors.Newf(errors.ErrCodeReminderNotFound, "reminder %s not found", id)
	}
	if err := entity.ApplyStatus(status, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return entity.Clone(), nil
}

// Reconcile runs the automatic overdue pass across the whole collection:
// every aktiv or stummgeschaltet reminder whose deadline lies before today
// becomes verpasst.  Idempotent; persists only when something changed.
// It returns the number of reminders that transitioned.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.clock.Today()
	changed := 0
	for _, e := range s.entities {
		if e.Reconcile(today) {
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	s.metrics.ReconciledMissed(changed)
	if err := s.persistLocked(ctx); err != nil {
		return changed, err
	}
	return changed, nil
}

// Get returns a copy of the identified reminder.
func (s *Service) Get(id common.ID) (*domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entity := s.findLocked(id); entity != nil {
		return entity.Clone(), nil
	}
	return nil, errors.Newf(errors.ErrCodeReminderNotFound, "reminder %s not found", id)
}

// All returns copies of every reminder, sorted by (deadline asc, priority
// rank asc).  Insertion order carries no meaning; consuming views always
// re-sort.
func (s *Service) All() []*domain.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Reminder, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, e.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DeadlineDate.Equal(out[j].DeadlineDate) {
			return out[i].DeadlineDate.Before(out[j].DeadlineDate)
		}
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

// NextOccurrence computes the suggested next date for a recurring reminder.
// It never creates the successor; the hand-off back to the user is explicit.
func (s *Service) NextOccurrence(id common.ID) (common.Date, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity := s.findLocked(id)
	if entity == nil {
		return common.Date{}, errors.Newf(errors.ErrCodeReminderNotFound, "reminder %s not found", id)
	}
	if !entity.Recurring {
		return common.Date{}, errors.Newf(errors.ErrCodeReminderNotRecurring,
			"reminder %s is not recurring", id)
	}
	return domain.NextOccurrence(entity.DeadlineDate, entity.Interval)
}

// Today exposes the service clock's current date for derived views.
func (s *Service) Today() common.Date {
	return s.clock.Today()
}

func (s *Service) findLocked(id common.ID) *domain.Reminder {
	for _, e := range s.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// persistLocked writes the whole collection through the repository.  Callers
// hold the mutex.
func (s *Service) persistLocked(ctx context.Context) error {
	if err := s.repo.SaveAll(ctx, s.entities); err != nil {
		s.metrics.StoreSaveFailed()
		s.logger.Error("failed to persist reminders", logging.Err(err))
		return err
	}
	return nil
}
