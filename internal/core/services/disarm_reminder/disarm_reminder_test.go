package disarmreminder

import (
	"context"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/notification"
	"ltapp/internal/core/domain/reminder"
	"ltapp/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	logger    *logging.FakeLogger
	store     *reminder.FakeStore
	scheduler *reminder.FakeScheduler
	notifier  *notification.FakeNotifier
	service   services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.store = reminder.NewFakeStore()
	suite.scheduler = reminder.NewFakeScheduler()
	suite.notifier = notification.NewFakeNotifier()
	suite.service = New(suite.logger, suite.store, suite.scheduler, suite.notifier)
}

func TestDisarmReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestDisarmRemovesEntryAndTimer() {
	at, _ := reminder.ParseTimeOfDay("09:00")
	s.store.Entries["c-1"] = at

	_, err := s.service.Run(context.Background(), Input{EntityID: "c-1"})

	assert := s.Require()
	assert.Nil(err)
	assert.Empty(s.store.Entries)
	assert.Equal([]reminder.EntityID{"c-1"}, s.scheduler.Canceled)
	assert.Equal([]string{"c-1"}, s.notifier.Dismissed)
}

func (s *testSuite) TestDisarmUnknownIDIsNoOp() {
	_, err := s.service.Run(context.Background(), Input{EntityID: "missing"})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal([]reminder.EntityID{"missing"}, s.scheduler.Canceled)
}

func (s *testSuite) TestEmptyEntityID() {
	_, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.ErrorIs(err, reminder.ErrEntityIDNotSet)
	assert.Empty(s.scheduler.Canceled)
}
