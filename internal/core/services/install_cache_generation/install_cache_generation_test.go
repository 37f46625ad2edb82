package installcachegeneration

import (
	"context"
	"errors"
	"ltapp/internal/core/domain/assetcache"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2023, 3, 15, 8, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	repository *assetcache.FakeRepository
	fetcher    *assetcache.FakeFetcher
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.repository = assetcache.NewFakeRepository()
	suite.fetcher = assetcache.NewFakeFetcher()
	suite.service = New(
		suite.logger,
		suite.repository,
		suite.fetcher,
		[]string{"/", "/index.html"},
		func() time.Time { return Now },
	)
}

func TestInstallCacheGenerationService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestInstallWithManifest() {
	s.fetcher.ManifestURLs = []string{"/assets/app.js", "/assets/app.css", "/index.html"}

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	// Manifest assets extend the base list, duplicates folded.
	assert.Equal([]string{"/", "/index.html", "/assets/app.js", "/assets/app.css"}, result.Generation.Assets)
	assert.Equal(assetcache.StatusInstalling, result.Generation.Status)
	assert.Len(s.repository.AssetsByGen[result.Generation.Name], 4)
}

func (s *testSuite) TestManifestFailureDegradesToBaseAssets() {
	s.fetcher.ManifestError = errors.New("404")

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal([]string{"/", "/index.html"}, result.Generation.Assets)
	assert.Len(s.repository.AssetsByGen[result.Generation.Name], 2)
}

func (s *testSuite) TestFailedAssetFetchIsSkipped() {
	s.fetcher.ManifestURLs = []string{"/assets/app.js"}
	s.fetcher.FetchErrors["/assets/app.js"] = errors.New("503")

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.Len(s.repository.AssetsByGen[result.Generation.Name], 2)
}

func (s *testSuite) TestGenerationNameEmbedsInstant() {
	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(assetcache.NewName(Now), result.Generation.Name)
}
