package notification

import (
	"context"
	"sync"
)

type FakeNotifier struct {
	ShowError    error
	DismissError error
	Shown        []Notification
	Dismissed    []string
	lock         sync.Mutex
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) Show(ctx context.Context, notification Notification) error {
	if n.ShowError != nil {
		return n.ShowError
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Shown = append(n.Shown, notification)
	return nil
}

func (n *FakeNotifier) Dismiss(ctx context.Context, tag string) error {
	if n.DismissError != nil {
		return n.DismissError
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Dismissed = append(n.Dismissed, tag)
	return nil
}
