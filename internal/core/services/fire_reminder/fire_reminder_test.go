package firereminder

import (
	"context"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/notification"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	logger   *logging.FakeLogger
	store    *reminder.FakeStore
	notifier *notification.FakeNotifier
	events   *message.FakeEventPublisher
	service  services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.store = reminder.NewFakeStore()
	suite.notifier = notification.NewFakeNotifier()
	suite.events = message.NewFakeEventPublisher()
	suite.service = New(suite.logger, suite.store, suite.notifier, suite.events)
}

func TestFireReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestFireShowsTaggedNotification() {
	at, _ := reminder.ParseTimeOfDay("09:00")
	s.store.Entries["c-1"] = at

	_, err := s.service.Run(
		context.Background(),
		Input{Reminder: reminder.Reminder{EntityID: "c-1", Label: "Leaking tap", At: at}},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.Len(s.notifier.Shown, 1)
	assert.Equal("Leaking tap", s.notifier.Shown[0].Title)
	assert.Equal("c-1", s.notifier.Shown[0].Tag)
	assert.Equal(notification.DefaultVibration, s.notifier.Shown[0].Vibration)
	assert.Len(s.events.Published, 1)
	assert.Equal(message.KindPlayAlarm, s.events.Published[0].Kind)
	assert.Equal("c-1", s.events.Published[0].PlayAlarm.EntityID)
	// Fired reminders leave the persisted map.
	assert.Empty(s.store.Entries)
}

func (s *testSuite) TestNotifierErrorKeepsEntry() {
	at, _ := reminder.ParseTimeOfDay("09:00")
	s.store.Entries["c-1"] = at
	s.notifier.ShowError = context.DeadlineExceeded

	_, err := s.service.Run(
		context.Background(),
		Input{Reminder: reminder.Reminder{EntityID: "c-1", Label: "Leaking tap", At: at}},
	)

	assert := s.Require()
	assert.NotNil(err)
	assert.Empty(s.events.Published)
	assert.Len(s.store.Entries, 1)
}
