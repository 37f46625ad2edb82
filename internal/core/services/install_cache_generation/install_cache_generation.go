package installcachegeneration

import (
	"context"
	"ltapp/internal/core/domain/assetcache"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/services"
	"time"
)

type Input struct{}

type Result struct {
	Generation assetcache.Generation
}

type service struct {
	log        logging.Logger
	repository assetcache.Repository
	fetcher    assetcache.Fetcher
	baseAssets []string
	now        func() time.Time
}

// New creates the install service. It opens a freshly named generation
// and populates it with the base asset list plus whatever the build
// manifest names. A missing or malformed manifest degrades to the base
// list; a single failed asset fetch skips that asset. Fetches are
// single attempts, no retries.
func New(
	log logging.Logger,
	repository assetcache.Repository,
	fetcher assetcache.Fetcher,
	baseAssets []string,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if fetcher == nil {
		panic(e.NewNilArgumentError("fetcher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		repository: repository,
		fetcher:    fetcher,
		baseAssets: baseAssets,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	urls := make([]string, 0, len(s.baseAssets))
	seen := make(map[string]struct{})
	for _, url := range s.baseAssets {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}

	manifestURLs, err := s.fetcher.Manifest(ctx)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not load the build manifest, caching only base assets.",
			logging.Entry("err", err),
		)
	}
	for _, url := range manifestURLs {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}

	generation := assetcache.Generation{
		Name:      assetcache.NewName(s.now()),
		Assets:    urls,
		Status:    assetcache.StatusInstalling,
		CreatedAt: s.now(),
	}
	if err := s.repository.Create(ctx, generation); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("generation", generation.Name))
		return result, err
	}

	for _, url := range urls {
		asset, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			s.log.Warning(
				ctx,
				"Could not precache asset.",
				logging.Entry("url", url),
				logging.Entry("err", err),
			)
			continue
		}
		if err := s.repository.PutAsset(ctx, generation.Name, asset); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("url", url))
			return result, err
		}
	}

	s.log.Info(
		ctx,
		"Cache generation installed.",
		logging.Entry("generation", generation.Name),
		logging.Entry("assetCount", len(urls)),
	)
	result.Generation = generation
	return result, nil
}
