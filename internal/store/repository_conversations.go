package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/atharva-again/samvaad/models"
)

type conversationRepository struct {
	*DB
	logger *logger.Logger
}

func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	return &conversationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *conversationRepository) Save(ctx context.Context, userID string, conversations ...models.Conversation) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	for _, conv := range conversations {
		_, err := r.DB.ExecContext(ctx, upsertConversation,
			userID,
			conv.ID,
			conv.Title,
			conv.Mode,
			conv.IsPinned,
			conv.MessageCount,
			conv.CreatedAt,
			conv.UpdatedAt,
			now,
		)
		if err != nil {
			log.Err(err).
				Str("func", "conversationRepository.Save").
				Str("user_id", userID).
				Str("conversation_id", conv.ID).
				Msg("failed to execute upsert for conversation")
			return fmt.Errorf("failed to save conversation (id=%s): %w", conv.ID, err)
		}
	}

	return nil
}

func (r *conversationRepository) GetAll(ctx context.Context, userID string) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllConversations, userID)
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.GetAll").
			Str("user_id", userID).
			Msg("failed to execute query for getting all conversations")
		return nil, fmt.Errorf("failed to query all conversations: %w", err)
	}
	defer rows.Close()

	var items []models.Conversation

	for rows.Next() {
		var item models.Conversation

		scanErr := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Mode,
			&item.IsPinned,
			&item.MessageCount,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "conversationRepository.GetAll").
				Str("user_id", userID).
				Msg("failed to scan conversation row")
			return nil, fmt.Errorf("failed to scan conversation row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "conversationRepository.GetAll").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating conversation rows: %w", rowsErr)
	}

	return items, nil
}

func (r *conversationRepository) ReplaceAll(ctx context.Context, userID string, conversations []models.Conversation) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	err := r.DB.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteAllConversations, userID); err != nil {
			return fmt.Errorf("clear conversations: %w", err)
		}

		for _, conv := range conversations {
			_, err := tx.ExecContext(ctx, upsertConversation,
				userID,
				conv.ID,
				conv.Title,
				conv.Mode,
				conv.IsPinned,
				conv.MessageCount,
				conv.CreatedAt,
				conv.UpdatedAt,
				now,
			)
			if err != nil {
				return fmt.Errorf("insert conversation (id=%s): %w", conv.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.ReplaceAll").
			Str("user_id", userID).
			Msg("failed to replace conversation rows")
		return fmt.Errorf("failed to replace conversations: %w", err)
	}

	return nil
}

func (r *conversationRepository) ReconcileID(ctx context.Context, userID, provisionalID, serverID string) error {
	log := logger.FromContext(ctx)

	err := r.DB.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, renameConversationID, serverID, userID, provisionalID); err != nil {
			return fmt.Errorf("rename conversation row: %w", err)
		}
		if _, err := tx.ExecContext(ctx, reparentMessages, serverID, userID, provisionalID); err != nil {
			return fmt.Errorf("reparent messages: %w", err)
		}
		if _, err := tx.ExecContext(ctx, reparentActivePointer, serverID, userID, provisionalID); err != nil {
			return fmt.Errorf("reparent active pointer: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.ReconcileID").
			Str("user_id", userID).
			Str("provisional_id", provisionalID).
			Str("server_id", serverID).
			Msg("failed to reconcile conversation id")
		return fmt.Errorf("failed to reconcile conversation id: %w", err)
	}

	return nil
}

func (r *conversationRepository) Patch(ctx context.Context, userID, id string, patch models.ConversationPatch) error {
	log := logger.FromContext(ctx)

	clauses := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		clauses["title"] = *patch.Title
	}
	if patch.IsPinned != nil {
		clauses["is_pinned"] = *patch.IsPinned
	}

	query, args, err := sq.Update("conversations").
		SetMap(clauses).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build patch query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "conversationRepository.Patch").
			Str("user_id", userID).
			Str("conversation_id", id).
			Msg("failed to execute patch for conversation")
		return fmt.Errorf("failed to patch conversation (id=%s): %w", id, err)
	}

	return nil
}

func (r *conversationRepository) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	err := r.DB.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteConversation, userID, id); err != nil {
			return fmt.Errorf("delete conversation row: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteMessagesForConversation, userID, id); err != nil {
			return fmt.Errorf("delete conversation messages: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.Delete").
			Str("user_id", userID).
			Str("conversation_id", id).
			Msg("failed to delete conversation")
		return fmt.Errorf("failed to delete conversation (id=%s): %w", id, err)
	}

	return nil
}

func (r *conversationRepository) DeleteBatch(ctx context.Context, userID string, ids []string) error {
	log := logger.FromContext(ctx)

	err := r.DB.inTx(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, deleteConversation, userID, id); err != nil {
				return fmt.Errorf("delete conversation row (id=%s): %w", id, err)
			}
			if _, err := tx.ExecContext(ctx, deleteMessagesForConversation, userID, id); err != nil {
				return fmt.Errorf("delete conversation messages (id=%s): %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "conversationRepository.DeleteBatch").
			Str("user_id", userID).
			Int("count", len(ids)).
			Msg("failed to batch delete conversations")
		return fmt.Errorf("failed to batch delete conversations: %w", err)
	}

	return nil
}

func (r *conversationRepository) PurgeUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteAllConversations, userID); err != nil {
		log.Err(err).
			Str("func", "conversationRepository.PurgeUser").
			Str("user_id", userID).
			Msg("failed to purge conversation rows")
		return fmt.Errorf("failed to purge conversations: %w", err)
	}

	return nil
}
