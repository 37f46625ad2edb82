package worker

import (
	"context"
	"ltapp/internal/core/domain/assetcache"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/domain/notification"
	"ltapp/internal/core/domain/reminder"
	activatecachegeneration "ltapp/internal/core/services/activate_cache_generation"
	armreminder "ltapp/internal/core/services/arm_reminder"
	disarmallreminders "ltapp/internal/core/services/disarm_all_reminders"
	disarmreminder "ltapp/internal/core/services/disarm_reminder"
	installcachegeneration "ltapp/internal/core/services/install_cache_generation"
	rearmreminders "ltapp/internal/core/services/rearm_reminders"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2023, 3, 15, 8, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	store      *reminder.FakeStore
	scheduler  *reminder.FakeScheduler
	notifier   *notification.FakeNotifier
	repository *assetcache.FakeRepository
	fetcher    *assetcache.FakeFetcher
	events     *message.FakeEventPublisher
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.store = reminder.NewFakeStore()
	suite.scheduler = reminder.NewFakeScheduler()
	suite.notifier = notification.NewFakeNotifier()
	suite.repository = assetcache.NewFakeRepository()
	suite.fetcher = assetcache.NewFakeFetcher()
	suite.events = message.NewFakeEventPublisher()
}

func (suite *testSuite) newWorker(autoActivate bool) *Worker {
	now := func() time.Time { return Now }
	return New(
		suite.logger,
		armreminder.New(suite.logger, suite.store, suite.scheduler, now),
		disarmreminder.New(suite.logger, suite.store, suite.scheduler, suite.notifier),
		disarmallreminders.New(suite.logger, suite.store, suite.scheduler),
		rearmreminders.New(suite.logger, suite.store, suite.scheduler, now),
		installcachegeneration.New(suite.logger, suite.repository, suite.fetcher, []string{"/", "/index.html"}, now),
		activatecachegeneration.New(suite.logger, suite.repository, suite.events),
		suite.events,
		autoActivate,
	)
}

func TestWorker(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestStartupRebuildsTimersAndActivatesCache() {
	assert := s.Require()
	at, err := reminder.ParseTimeOfDay("09:30")
	assert.Nil(err)
	s.store.Entries[reminder.EntityID("complaint-1")] = at

	err = s.newWorker(true).Startup(context.Background())

	assert.Nil(err)
	assert.Len(s.scheduler.Scheduled, 1)
	assert.Equal(reminder.EntityID("complaint-1"), s.scheduler.Scheduled[0].EntityID)

	active, err := s.repository.Active(context.Background())
	assert.Nil(err)
	assert.Equal(assetcache.NewName(Now), active.Name)

	// READY is the last event of startup; a cold install announces no
	// new version.
	assert.Len(s.events.Published, 1)
	assert.Equal(message.KindReady, s.events.Published[0].Kind)
}

func (s *testSuite) TestStartupParksGenerationWhenAutoActivateIsOff() {
	assert := s.Require()
	worker := s.newWorker(false)

	err := worker.Startup(context.Background())

	assert.Nil(err)
	_, err = s.repository.Active(context.Background())
	assert.ErrorIs(err, assetcache.ErrNoActiveGeneration)

	err = worker.HandleCommand(context.Background(), message.NewSkipWaiting())

	assert.Nil(err)
	active, err := s.repository.Active(context.Background())
	assert.Nil(err)
	assert.Equal(assetcache.NewName(Now), active.Name)
}

func (s *testSuite) TestSkipWaitingWithNothingParked() {
	worker := s.newWorker(true)

	err := worker.HandleCommand(context.Background(), message.NewSkipWaiting())

	s.Require().Nil(err)
}

func (s *testSuite) TestScheduleCommandArmsReminder() {
	assert := s.Require()
	worker := s.newWorker(true)

	err := worker.HandleCommand(
		context.Background(),
		message.NewScheduleNotification("complaint-1", "Leaking tap", "09:30"),
	)

	assert.Nil(err)
	assert.Len(s.scheduler.Scheduled, 1)
	assert.Equal("Leaking tap", s.scheduler.Scheduled[0].Label)
	at, ok := s.store.Entries[reminder.EntityID("complaint-1")]
	assert.True(ok)
	assert.Equal("09:30", at.String())
}

func (s *testSuite) TestScheduleCommandWithInvalidTime() {
	assert := s.Require()
	worker := s.newWorker(true)

	err := worker.HandleCommand(
		context.Background(),
		message.NewScheduleNotification("complaint-1", "Leaking tap", "9:30am"),
	)

	assert.ErrorIs(err, reminder.ErrInvalidTimeOfDay)
	assert.Empty(s.scheduler.Scheduled)
}

func (s *testSuite) TestCancelCommandDisarmsReminder() {
	assert := s.Require()
	at, err := reminder.ParseTimeOfDay("09:30")
	assert.Nil(err)
	s.store.Entries[reminder.EntityID("rent-2")] = at
	worker := s.newWorker(true)

	err = worker.HandleCommand(context.Background(), message.NewCancelNotification("rent-2"))

	assert.Nil(err)
	assert.Empty(s.store.Entries)
	assert.Equal([]reminder.EntityID{"rent-2"}, s.scheduler.Canceled)
	assert.Equal([]string{"rent-2"}, s.notifier.Dismissed)
}

func (s *testSuite) TestCancelAllCommand() {
	assert := s.Require()
	at, err := reminder.ParseTimeOfDay("09:30")
	assert.Nil(err)
	s.store.Entries[reminder.EntityID("rent-2")] = at
	s.store.Entries[reminder.EntityID("complaint-1")] = at
	worker := s.newWorker(true)

	err = worker.HandleCommand(context.Background(), message.NewCancelAllNotifications())

	assert.Nil(err)
	assert.Empty(s.store.Entries)
	assert.True(s.scheduler.CancelAllCalled)
}

func (s *testSuite) TestIgnoresUnexpectedKind() {
	worker := s.newWorker(true)

	err := worker.HandleCommand(context.Background(), message.NewReady())

	s.Require().Nil(err)
}
