package activatecachegeneration

import (
	"context"
	"ltapp/internal/core/domain/assetcache"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	repository *assetcache.FakeRepository
	events     *message.FakeEventPublisher
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.repository = assetcache.NewFakeRepository()
	suite.events = message.NewFakeEventPublisher()
	suite.service = New(suite.logger, suite.repository, suite.events)
}

func TestActivateCacheGenerationService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) addGeneration(name assetcache.Name, status assetcache.Status) {
	err := s.repository.Create(context.Background(), assetcache.Generation{Name: name, Status: status})
	s.Require().Nil(err)
}

func (s *testSuite) TestActivationDeletesEveryOtherGeneration() {
	s.addGeneration("v1", assetcache.StatusStale)
	s.addGeneration("v2", assetcache.StatusActive)
	s.addGeneration("v3", assetcache.StatusInstalling)

	result, err := s.service.Run(context.Background(), Input{Name: "v3"})

	assert := s.Require()
	assert.Nil(err)
	assert.ElementsMatch([]assetcache.Name{"v1", "v2"}, result.Deleted)
	assert.Len(s.repository.Generations, 1)
	assert.Equal(assetcache.Name("v3"), s.repository.Generations[0].Name)
	assert.Equal(assetcache.StatusActive, s.repository.Generations[0].Status)
}

func (s *testSuite) TestSupersedingActivationAnnouncesNewVersion() {
	s.addGeneration("v1", assetcache.StatusActive)
	s.addGeneration("v2", assetcache.StatusInstalling)

	_, err := s.service.Run(context.Background(), Input{Name: "v2"})

	assert := s.Require()
	assert.Nil(err)
	assert.Len(s.events.Published, 1)
	assert.Equal(message.KindNewVersion, s.events.Published[0].Kind)
	assert.Equal("v2", s.events.Published[0].NewVersion.CacheName)
}

func (s *testSuite) TestColdInstallDoesNotAnnounce() {
	s.addGeneration("v1", assetcache.StatusInstalling)

	_, err := s.service.Run(context.Background(), Input{Name: "v1"})

	assert := s.Require()
	assert.Nil(err)
	assert.Empty(s.events.Published)
}

func (s *testSuite) TestUnknownGeneration() {
	_, err := s.service.Run(context.Background(), Input{Name: "missing"})

	s.Require().ErrorIs(err, assetcache.ErrGenerationDoesNotExist)
}
