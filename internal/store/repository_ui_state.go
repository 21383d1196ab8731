package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atharva-again/samvaad/internal/logger"
)

type uiStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewUIStateRepository(db *DB, logger *logger.Logger) UIStateRepository {
	return &uiStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *uiStateRepository) Get(ctx context.Context, userID string) (UIState, error) {
	log := logger.FromContext(ctx)

	var state UIState
	var activeID sql.NullString
	var syncedAt sql.NullTime

	row := r.DB.QueryRowContext(ctx, getUIState, userID)
	if err := row.Scan(&activeID, &syncedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UIState{}, nil
		}
		log.Err(err).
			Str("func", "uiStateRepository.Get").
			Str("user_id", userID).
			Msg("failed to scan ui state row")
		return UIState{}, fmt.Errorf("failed to scan ui state row: %w", err)
	}

	if activeID.Valid {
		state.ActiveConversationID = activeID.String
	}
	if syncedAt.Valid {
		state.FilesSyncedAt = syncedAt.Time
	}

	return state, nil
}

func (r *uiStateRepository) Save(ctx context.Context, userID string, state UIState) error {
	log := logger.FromContext(ctx)

	var syncedAt any
	if !state.FilesSyncedAt.IsZero() {
		syncedAt = state.FilesSyncedAt
	}

	_, err := r.DB.ExecContext(ctx, upsertUIState, userID, state.ActiveConversationID, syncedAt)
	if err != nil {
		log.Err(err).
			Str("func", "uiStateRepository.Save").
			Str("user_id", userID).
			Msg("failed to execute upsert for ui state")
		return fmt.Errorf("failed to save ui state: %w", err)
	}

	return nil
}

func (r *uiStateRepository) PurgeUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteUIState, userID); err != nil {
		log.Err(err).
			Str("func", "uiStateRepository.PurgeUser").
			Str("user_id", userID).
			Msg("failed to purge ui state row")
		return fmt.Errorf("failed to purge ui state: %w", err)
	}

	return nil
}
