package reminder

import (
	"context"
	"sync"
)

type FakeStore struct {
	SetError     error
	RemoveError  error
	ClearError   error
	ReadAllError error
	Entries      map[EntityID]TimeOfDay
	lock         sync.Mutex
}

func NewFakeStore() *FakeStore {
	return &FakeStore{Entries: make(map[EntityID]TimeOfDay)}
}

func (s *FakeStore) Set(ctx context.Context, entityID EntityID, at TimeOfDay) error {
	if s.SetError != nil {
		return s.SetError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Entries[entityID] = at
	return nil
}

func (s *FakeStore) Remove(ctx context.Context, entityID EntityID) error {
	if s.RemoveError != nil {
		return s.RemoveError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.Entries, entityID)
	return nil
}

func (s *FakeStore) Clear(ctx context.Context) error {
	if s.ClearError != nil {
		return s.ClearError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Entries = make(map[EntityID]TimeOfDay)
	return nil
}

func (s *FakeStore) ReadAll(ctx context.Context) (map[EntityID]TimeOfDay, error) {
	if s.ReadAllError != nil {
		return nil, s.ReadAllError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	entries := make(map[EntityID]TimeOfDay, len(s.Entries))
	for entityID, at := range s.Entries {
		entries[entityID] = at
	}
	return entries, nil
}

type FakeScheduler struct {
	ScheduleError   error
	Scheduled       []Reminder
	Canceled        []EntityID
	CancelAllCalled bool
	lock            sync.Mutex
}

func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

func (s *FakeScheduler) Schedule(ctx context.Context, r Reminder) error {
	if s.ScheduleError != nil {
		return s.ScheduleError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Scheduled = append(s.Scheduled, r)
	return nil
}

func (s *FakeScheduler) Cancel(ctx context.Context, entityID EntityID) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Canceled = append(s.Canceled, entityID)
}

func (s *FakeScheduler) CancelAll(ctx context.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.CancelAllCalled = true
}
