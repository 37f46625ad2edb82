package timerscheduler

import (
	"context"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/reminder"
	"sync"
	"time"
)

// FireFunc is invoked on the timer's own goroutine when a reminder
// comes due.
type FireFunc func(r reminder.Reminder)

// Timers keeps one live time.Timer per entity id. Handles live only in
// memory; the persisted reminder map is the durable source of truth and
// timers are rebuilt from it on startup.
type Timers struct {
	log  logging.Logger
	now  func() time.Time
	fire FireFunc

	lock   sync.Mutex
	timers map[reminder.EntityID]*time.Timer
}

func New(log logging.Logger, now func() time.Time, fire FireFunc) *Timers {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if fire == nil {
		panic(e.NewNilArgumentError("fire"))
	}
	return &Timers{
		log:    log,
		now:    now,
		fire:   fire,
		timers: make(map[reminder.EntityID]*time.Timer),
	}
}

// Schedule arms a timer for the reminder, replacing any previous timer
// armed for the same entity id.
func (s *Timers) Schedule(ctx context.Context, r reminder.Reminder) error {
	if err := r.Validate(); err != nil {
		return err
	}
	fireAt := r.At.NextAfter(s.now())
	delay := fireAt.Sub(s.now())

	s.lock.Lock()
	defer s.lock.Unlock()
	if prev, ok := s.timers[r.EntityID]; ok {
		prev.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.expire(r.EntityID, t)
		s.fire(r)
	})
	s.timers[r.EntityID] = t

	s.log.Info(
		ctx,
		"Reminder timer armed.",
		logging.Entry("entityID", r.EntityID),
		logging.Entry("fireAt", fireAt),
	)
	return nil
}

func (s *Timers) Cancel(ctx context.Context, entityID reminder.EntityID) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if t, ok := s.timers[entityID]; ok {
		t.Stop()
		delete(s.timers, entityID)
	}
}

func (s *Timers) CancelAll(ctx context.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = make(map[reminder.EntityID]*time.Timer)
}

// ScheduledIDs returns the entity ids with a live timer.
func (s *Timers) ScheduledIDs() []reminder.EntityID {
	s.lock.Lock()
	defer s.lock.Unlock()
	ids := make([]reminder.EntityID, 0, len(s.timers))
	for id := range s.timers {
		ids = append(ids, id)
	}
	return ids
}

// expire drops the handle, unless the id was re-scheduled and the map
// already holds a newer timer.
func (s *Timers) expire(entityID reminder.EntityID, t *time.Timer) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.timers[entityID] == t {
		delete(s.timers, entityID)
	}
}
