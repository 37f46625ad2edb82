package activatecachegeneration

import (
	"context"
	"errors"
	"ltapp/internal/core/domain/assetcache"
	e "ltapp/internal/core/domain/errors"
	"ltapp/internal/core/domain/logging"
	"ltapp/internal/core/domain/message"
	"ltapp/internal/core/services"
)

type Input struct {
	Name assetcache.Name
}

type Result struct {
	Deleted []assetcache.Name
}

type service struct {
	log        logging.Logger
	repository assetcache.Repository
	events     message.EventPublisher
}

// New creates the activation service: it marks the generation active,
// deletes every other generation, and announces the new version to the
// foreground. The announcement is made once per activation; activation
// of an unknown generation is an error.
func New(
	log logging.Logger,
	repository assetcache.Repository,
	events message.EventPublisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	return &service{log: log, repository: repository, events: events}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	hadActive := true
	if _, err := s.repository.Active(ctx); err != nil {
		if !errors.Is(err, assetcache.ErrNoActiveGeneration) {
			logging.Error(ctx, s.log, err)
			return result, err
		}
		hadActive = false
	}

	if err := s.repository.SetStatus(ctx, input.Name, assetcache.StatusActive); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("generation", input.Name))
		return result, err
	}

	generations, err := s.repository.List(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	for _, g := range generations {
		if g.Name == input.Name {
			continue
		}
		if err := s.repository.Delete(ctx, g.Name); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("generation", g.Name))
			return result, err
		}
		result.Deleted = append(result.Deleted, g.Name)
	}

	// Announce only when an older generation was superseded, so a cold
	// first install does not trigger a pointless reload.
	if hadActive {
		if err := s.events.Publish(ctx, message.NewNewVersion(string(input.Name))); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("generation", input.Name))
			return result, err
		}
	}

	s.log.Info(
		ctx,
		"Cache generation activated.",
		logging.Entry("generation", input.Name),
		logging.Entry("deletedCount", len(result.Deleted)),
	)
	return result, nil
}
