// Package client assembles one authenticated samvaad session: it restores
// the persisted UI state, primes the observable container from the local
// cache, kicks the network loads, and keeps the background revalidation
// worker running until shutdown.
package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/atharva-again/samvaad/internal/config"
	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/atharva-again/samvaad/internal/service"
	"github.com/atharva-again/samvaad/internal/state"
	"github.com/atharva-again/samvaad/internal/workers"
)

type App struct {
	services  *service.ClientServices
	container *state.Container
	workers   *workers.Workers
	log       *logger.Logger
}

// NewApp wires the session's background workers around already assembled
// services.
func NewApp(services *service.ClientServices, container *state.Container, cfg config.Workers, log *logger.Logger) (*App, error) {
	app := &App{
		services:  services,
		container: container,
		log:       log,
	}

	app.workers = workers.NewWorkers(
		workers.WorkerFunc{
			RunFunc: func() {
				services.Revalidate.Start(log.WithContext(context.Background()), cfg.RevalidateInterval)
			},
			StopFunc: services.Revalidate.Stop,
		},
	)

	return app, nil
}

// Run primes the session and blocks until an interrupt arrives. Cached data
// is surfaced before any network round-trip so the client is usable offline.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = a.log.WithContext(ctx)

	if err := a.services.Conversations.LoadCached(ctx); err != nil {
		a.log.Warn().Err(err).Msg("failed to load cached conversations")
	}
	if err := a.services.Files.LoadFiles(ctx); err != nil {
		a.log.Warn().Err(err).Msg("failed to load files")
	}

	go func() {
		if err := a.services.Conversations.LoadConversations(ctx, false); err != nil {
			a.log.Warn().Err(err).Msg("failed to load conversations from server")
		}
	}()

	a.workers.Run()
	defer a.workers.Stop()

	<-ctx.Done()
	a.log.Info().Msg("shutting down")

	return nil
}

// Container exposes the observable session state for an embedding UI.
func (a *App) Container() *state.Container {
	return a.container
}

// Services exposes the session's synchronization services for an embedding
// UI.
func (a *App) Services() *service.ClientServices {
	return a.services
}
