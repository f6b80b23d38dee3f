// Package reminder defines the Reminder entity, its status state machine, the
// countdown/urgency classification, and the recurrence-date generation.
//
// The JSON field names follow the persisted wire format of the advisory tool:
// German keys, German enum values, dates as YYYY-MM-DD and timestamps as
// RFC 3339.  The whole collection is stored as one JSON array under a fixed
// storage key.
package reminder

import (
	"time"

	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// ─────────────────────────────────────────────────────────────────────────────
// Enumerations
// ─────────────────────────────────────────────────────────────────────────────

// Category classifies what kind of obligation a reminder tracks.  The category
// determines the default lead time.
type Category string

const (
	CategoryObjectionPeriod  Category = "widerspruchsfrist"
	CategoryLawsuitPeriod    Category = "klagefrist"
	CategorySubmission       Category = "abgabefrist"
	CategoryAppointment      Category = "termin"
	CategoryReapplication    Category = "weiterbewilligungsantrag"
	CategoryCheckIn          Category = "meldetermin"
	CategoryOther            Category = "sonstiges"
)

// defaultLeadDays maps each category to the number of days before the deadline
// at which the reminder should trigger.
var defaultLeadDays = map[Category]int{
	CategoryObjectionPeriod: 7,
	CategoryLawsuitPeriod:   7,
	CategorySubmission:      3,
	CategoryAppointment:     1,
	CategoryReapplication:   14,
	CategoryCheckIn:         1,
	CategoryOther:           3,
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	_, ok := defaultLeadDays[c]
	return ok
}

// DefaultLeadDays returns the category's default lead time in days.
func (c Category) DefaultLeadDays() int {
	if n, ok := defaultLeadDays[c]; ok {
		return n
	}
	return defaultLeadDays[CategoryOther]
}

// Priority is the user-assigned ordinal importance of a reminder.
type Priority string

const (
	PriorityLow      Priority = "niedrig"
	PriorityMedium   Priority = "mittel"
	PriorityHigh     Priority = "hoch"
	PriorityCritical Priority = "kritisch"
)

// Rank returns the sort rank of p: kritisch < hoch < mittel < niedrig, so
// ascending rank order puts the most important reminders first.  Unknown
// priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	return p.Rank() < 4
}

// Status is the lifecycle state of a reminder.  See the transition rules in
// status.go.
type Status string

const (
	StatusActive Status = "aktiv"
	StatusDone   Status = "erledigt"
	StatusMissed Status = "verpasst"
	StatusMuted  Status = "stummgeschaltet"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusDone, StatusMissed, StatusMuted:
		return true
	}
	return false
}

// Interval is the cadence of a recurring reminder.
type Interval string

const (
	IntervalMonthly    Interval = "monatlich"
	IntervalQuarterly  Interval = "quartalsweise"
	IntervalSemiannual Interval = "halbjaehrlich"
	IntervalAnnual     Interval = "jaehrlich"
)

// IsValid reports whether iv is a known interval.
func (iv Interval) IsValid() bool {
	switch iv {
	case IntervalMonthly, IntervalQuarterly, IntervalSemiannual, IntervalAnnual:
		return true
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Reminder entity
// ─────────────────────────────────────────────────────────────────────────────

// Reminder is the sole persisted entity of the engine.
//
// Invariants:
//   - TriggerDate ≤ DeadlineDate (lead time is non-negative).
//   - Interval is set if and only if Recurring is true.
//   - CompletedAt is set if and only if Status is erledigt.
//   - StatusMissed implies the deadline was in the past at the time of the
//     last reconciliation pass.
type Reminder struct {
	ID            common.ID   `json:"id"`
	Title         string      `json:"titel"`
	Description   string      `json:"beschreibung"`
	Category      Category    `json:"typ"`
	DeadlineDate  common.Date `json:"fristDatum"`
	TriggerDate   common.Date `json:"erinnerungsDatum"`
	LeadDays      int         `json:"vorlaufTage"`
	Priority      Priority    `json:"prioritaet"`
	Status        Status      `json:"status"`
	CaseReference string      `json:"aktenzeichen,omitempty"`
	Recurring     bool        `json:"wiederholend"`
	Interval      Interval    `json:"wiederholungsIntervall,omitempty"`
	CreatedAt     time.Time   `json:"erstelltAm"`
	CompletedAt   *time.Time  `json:"erledigtAm,omitempty"`
}

// New constructs an active Reminder from caller-supplied fields, applying the
// category defaults, deriving the trigger date, and validating the invariants.
func New(title, description string, category Category, deadlineDate common.Date,
	leadDays *int, priority Priority, caseReference string,
	recurring bool, interval Interval, now time.Time) (*Reminder, error) {

	r := &Reminder{
		ID:            common.NewID(),
		Title:         title,
		Description:   description,
		Category:      category,
		DeadlineDate:  deadlineDate,
		Priority:      priority,
		Status:        StatusActive,
		CaseReference: caseReference,
		Recurring:     recurring,
		Interval:      interval,
		CreatedAt:     now.UTC(),
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if leadDays != nil {
		r.LeadDays = *leadDays
	} else {
		r.LeadDays = category.DefaultLeadDays()
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	r.RecomputeTrigger()
	return r, nil
}

// Validate checks the entity invariants that do not depend on wall-clock time.
func (r *Reminder) Validate() error {
	switch {
	case r.Title == "":
		return errors.New(errors.ErrCodeReminderInvalidDraft, "title must not be empty")
	case !r.Category.IsValid():
		return errors.Newf(errors.ErrCodeReminderInvalidDraft, "unknown category %q", r.Category)
	case r.DeadlineDate.IsZero():
		return errors.New(errors.ErrCodeReminderInvalidDraft, "deadline date is required")
	case r.LeadDays < 0:
		return errors.New(errors.ErrCodeReminderInvalidDraft, "lead days must not be negative")
	case !r.Priority.IsValid():
		return errors.Newf(errors.ErrCodeReminderInvalidDraft, "unknown priority %q", r.Priority)
	case r.Status != "" && !r.Status.IsValid():
		return errors.Newf(errors.ErrCodeReminderInvalidDraft, "unknown status %q", r.Status)
	case r.Recurring && !r.Interval.IsValid():
		return errors.New(errors.ErrCodeReminderInvalidDraft,
			"recurring reminders require a recurrence interval")
	case !r.Recurring && r.Interval != "":
		return errors.New(errors.ErrCodeReminderInvalidDraft,
			"recurrence interval is only allowed on recurring reminders")
	}
	return nil
}

// RecomputeTrigger re-derives TriggerDate from DeadlineDate and LeadDays.
// Must be called after every edit of either field.
func (r *Reminder) RecomputeTrigger() {
	r.TriggerDate = r.DeadlineDate.AddDays(-r.LeadDays)
}

// DaysUntilDeadline returns the signed whole days from today to the deadline.
func (r *Reminder) DaysUntilDeadline(today common.Date) int {
	return today.DaysUntil(r.DeadlineDate)
}

// IsDue reports whether the reminder should fire: it is active and its
// trigger date has been reached.
func (r *Reminder) IsDue(today common.Date) bool {
	return r.Status == StatusActive && !r.TriggerDate.After(today)
}

// Clone returns a deep copy of r.
func (r *Reminder) Clone() *Reminder {
	cp := *r
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}
