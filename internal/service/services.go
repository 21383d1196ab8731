package service

import (
	"context"
	"fmt"

	"github.com/atharva-again/samvaad/internal/adapter"
	"github.com/atharva-again/samvaad/internal/config"
	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/atharva-again/samvaad/internal/state"
	"github.com/atharva-again/samvaad/internal/store"
	"github.com/atharva-again/samvaad/internal/utils"
)

// ClientServices bundles every synchronization unit of one authenticated
// session.
type ClientServices struct {
	Conversations ConversationService
	Files         FileService
	Revalidate    RevalidateJob

	container *state.Container
	storages  *store.ClientStorages
	gateway   adapter.Gateway
}

// NewClientServices assembles the service layer on top of an already
// connected storage layer and gateway.
func NewClientServices(container *state.Container, storages *store.ClientStorages, gateway adapter.Gateway, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	ids := utils.NewUUIDGenerator()
	hasher := utils.NewContentHasher()

	files := NewFileService(container, storages, gateway, ids, hasher, cfg.Files, log)

	return &ClientServices{
		Conversations: NewConversationService(container, storages, gateway, ids, cfg.App.Persona, cfg.App.StrictMode),
		Files:         files,
		Revalidate:    NewRevalidateJob(files, log),
		container:     container,
		storages:      storages,
		gateway:       gateway,
	}
}

// SignOut stops background work, drops the bearer token, clears the
// in-memory session, and purges every cached row belonging to the user.
// Other users' cached rows are untouched.
func (s *ClientServices) SignOut(ctx context.Context) error {
	s.Revalidate.Stop()
	s.gateway.SetToken("")

	userID := s.container.UserID()
	s.container.Reset()

	if err := s.storages.PurgeUser(ctx, userID); err != nil {
		return fmt.Errorf("purge cached data: %w", err)
	}
	return nil
}
