package message

import (
	"context"
	"sync"
)

type FakeCommandSender struct {
	SendError error
	Sent      []Message
	lock      sync.Mutex
}

func NewFakeCommandSender() *FakeCommandSender {
	return &FakeCommandSender{}
}

func (s *FakeCommandSender) Send(ctx context.Context, m Message) error {
	if s.SendError != nil {
		return s.SendError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, m)
	return nil
}

type FakeEventPublisher struct {
	PublishError error
	Published    []Message
	lock         sync.Mutex
}

func NewFakeEventPublisher() *FakeEventPublisher {
	return &FakeEventPublisher{}
}

func (p *FakeEventPublisher) Publish(ctx context.Context, m Message) error {
	if p.PublishError != nil {
		return p.PublishError
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, m)
	return nil
}
