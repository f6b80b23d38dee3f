package reminder

import (
	"time"

	"github.com/sozialtools/fristenwaechter/pkg/errors"
	"github.com/sozialtools/fristenwaechter/pkg/types/common"
)

// The status state machine:
//
//	aktiv ──────────────► erledigt        (user action, terminal)
//	aktiv ──────────────► verpasst        (reconciliation, deadline passed)
//	aktiv ◄────────────── stummgeschaltet (user toggle, reversible)
//	stummgeschaltet ────► verpasst        (reconciliation)
//	verpasst ───────────► erledigt        (user action, "done after the fact")
//
// Every transition into erledigt stamps CompletedAt; erledigt is never left.
// All other combinations are undefined and must be rejected at this layer,
// not merely made unreachable by callers.

// CanTransition reports whether the user-driven transition from → to is
// defined.  The automatic verpasst transition is applied by Reconcile, not
// through this table.
func CanTransition(from, to Status) bool {
	if to == StatusDone {
		// "Mark complete" is allowed regardless of prior status.
		return true
	}
	switch {
	case from == StatusActive && to == StatusMuted:
		return true
	case from == StatusMuted && to == StatusActive:
		return true
	}
	return false
}

// ApplyStatus performs a user-driven status transition, enforcing the
// transition table and the CompletedAt invariant.  Undefined transitions leave
// the entity unchanged and return an invalid-transition error.
func (r *Reminder) ApplyStatus(to Status, now time.Time) error {
	if !to.IsValid() {
		return errors.Newf(errors.ErrCodeReminderInvalidDraft, "unknown status %q", to)
	}
	if !CanTransition(r.Status, to) {
		return errors.Newf(errors.ErrCodeReminderInvalidTransition,
			"status transition %s -> %s is not defined", r.Status, to)
	}
	r.Status = to
	if to == StatusDone {
		t := now.UTC()
		r.CompletedAt = &t
	}
	return nil
}

// Reconcile applies the automatic overdue rule: an active or muted reminder
// whose deadline lies strictly before today becomes verpasst.  Reminders that
// are erledigt or already verpasst are never touched, which makes the pass
// idempotent.  It reports whether the entity changed.
func (r *Reminder) Reconcile(today common.Date) bool {
	if r.Status != StatusActive && r.Status != StatusMuted {
		return false
	}
	if !r.DeadlineDate.Before(today) {
		return false
	}
	r.Status = StatusMissed
	return true
}
