package reminder

import "time"

// EntityID identifies the entity a reminder is scoped to, e.g. a
// complaint id or a rent charge id.
type EntityID string

type Reminder struct {
	EntityID EntityID
	Label    string
	At       TimeOfDay
	ArmedAt  time.Time
}

func (r Reminder) Validate() error {
	if r.EntityID == "" {
		return ErrEntityIDNotSet
	}
	return nil
}
