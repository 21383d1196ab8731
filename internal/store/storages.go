package store

import (
	"context"
	"fmt"

	"github.com/atharva-again/samvaad/internal/config"
	"github.com/atharva-again/samvaad/internal/logger"
)

// ClientStorages groups all local cache repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Conversations is the user-scoped cache of conversation rows.
	Conversations ConversationRepository
	// Messages is the user-scoped cache of message rows.
	Messages MessageRepository
	// Files is the user-scoped cache of uploaded-file records.
	Files FileRepository
	// UIState persists the minimal state-container subset across restarts.
	UIState UIStateRepository
}

// NewClientStorages initialises the local cache layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Conversations: NewConversationRepository(db, logger),
		Messages:      NewMessageRepository(db, logger),
		Files:         NewFileRepository(db, logger),
		UIState:       NewUIStateRepository(db, logger),
	}, nil
}

// PurgeUser removes every cached row belonging to userID across all
// collections. Called on sign-out so nothing of one account remains visible
// to the next on a shared device.
func (s *ClientStorages) PurgeUser(ctx context.Context, userID string) error {
	if err := s.Conversations.PurgeUser(ctx, userID); err != nil {
		return err
	}
	if err := s.Messages.PurgeUser(ctx, userID); err != nil {
		return err
	}
	if err := s.Files.PurgeUser(ctx, userID); err != nil {
		return err
	}
	return s.UIState.PurgeUser(ctx, userID)
}
