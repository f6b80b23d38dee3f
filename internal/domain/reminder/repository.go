package reminder

import "context"

// Repository is the persistence contract for the reminder collection.  The
// store is a simple last-writer-wins blob: the whole collection is read and
// written as one unit, matching the single-array wire format.
//
// LoadAll must be fail-open: absent, unreadable, or malformed stored content
// yields an empty collection and never an error the caller has to handle as
// fatal.  SaveAll is invoked synchronously after every mutating operation.
type Repository interface {
	LoadAll(ctx context.Context) []*Reminder
	SaveAll(ctx context.Context, entities []*Reminder) error
}
