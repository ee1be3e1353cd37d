// Package app assembles the application: storage, services, the news
// feed, the location sampler and the background workers, and drives them
// until shutdown.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/notesapp/pocketnotes/internal/adapter"
	"github.com/notesapp/pocketnotes/internal/config"
	"github.com/notesapp/pocketnotes/internal/location"
	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/internal/news"
	"github.com/notesapp/pocketnotes/internal/service"
	"github.com/notesapp/pocketnotes/internal/store"
	"github.com/notesapp/pocketnotes/internal/workers"
)

type App struct {
	cfg      *config.StructuredConfig
	storages *store.Storages
	services *service.Services
	feed     *news.Feed
	sampler  *location.Sampler
	logger   *logger.Logger
}

// New wires every component together. The session, if one was persisted,
// is restored as part of service construction.
func New(ctx context.Context, cfg *config.StructuredConfig, bridge location.Bridge, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	services := service.NewServices(ctx, *storages, log)
	feed := news.NewFeed(adapter.NewNewsAPIAdapter(cfg.News, log), log)
	sampler := location.NewSampler(bridge, cfg.Location, log)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		feed:     feed,
		sampler:  sampler,
		logger:   log,
	}, nil
}

func (a *App) Services() *service.Services { return a.services }

func (a *App) Feed() *news.Feed { return a.feed }

func (a *App) Sampler() *location.Sampler { return a.sampler }

// Run starts the background workers and blocks until the context is
// cancelled or an interrupt arrives, then shuts down in reverse order.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	workers.NewWorkers(ctx, a.feed, a.sampler, a.cfg.Workers, a.logger).Run()

	if current := a.services.Session.CurrentIdentity(); current != nil {
		a.logger.Info().Str("identity_id", current.ID).Str("email", current.Email).Msg("restored persisted session")
	}

	<-ctx.Done()
	a.logger.Info().Msg("shutting down")

	if err := a.sampler.Stop(); err != nil {
		a.logger.Warn().Err(err).Msg("location sampling did not stop cleanly")
	}
	if err := a.storages.KV.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("storage did not close cleanly")
		return err
	}

	return nil
}
