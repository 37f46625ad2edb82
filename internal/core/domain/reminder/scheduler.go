package reminder

import "context"

// Scheduler arms one-shot timers. At most one timer is live per entity
// id; scheduling an id again replaces the previous timer.
type Scheduler interface {
	Schedule(ctx context.Context, r Reminder) error
	// Cancel clears the pending timer for the id. Cancelling an unknown
	// id is a no-op. A fire already in progress is not retracted.
	Cancel(ctx context.Context, entityID EntityID)
	CancelAll(ctx context.Context)
}
