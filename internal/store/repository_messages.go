package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/atharva-again/samvaad/models"
)

type messageRepository struct {
	*DB
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *messageRepository) Append(ctx context.Context, userID string, msg models.Message) error {
	log := logger.FromContext(ctx)

	sources, err := marshalSources(msg.Sources)
	if err != nil {
		return fmt.Errorf("failed to encode message sources (id=%s): %w", msg.ID, err)
	}

	_, err = r.DB.ExecContext(ctx, insertMessage,
		userID,
		msg.ID,
		msg.ConversationID,
		msg.Role,
		msg.Content,
		sources,
		msg.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.Append").
			Str("user_id", userID).
			Str("message_id", msg.ID).
			Msg("failed to execute insert for message")
		return fmt.Errorf("failed to append message (id=%s): %w", msg.ID, err)
	}

	return nil
}

func (r *messageRepository) GetForConversation(ctx context.Context, userID, conversationID string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getMessagesForConversation, userID, conversationID)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.GetForConversation").
			Str("user_id", userID).
			Str("conversation_id", conversationID).
			Msg("failed to execute query for getting messages")
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var items []models.Message

	for rows.Next() {
		var item models.Message
		var sources sql.NullString

		scanErr := rows.Scan(
			&item.ID,
			&item.ConversationID,
			&item.Role,
			&item.Content,
			&sources,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "messageRepository.GetForConversation").
				Str("user_id", userID).
				Msg("failed to scan message row")
			return nil, fmt.Errorf("failed to scan message row: %w", scanErr)
		}

		if sources.Valid && sources.String != "" {
			if err = json.Unmarshal([]byte(sources.String), &item.Sources); err != nil {
				return nil, fmt.Errorf("failed to decode message sources (id=%s): %w", item.ID, err)
			}
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "messageRepository.GetForConversation").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating message rows: %w", rowsErr)
	}

	return items, nil
}

func (r *messageRepository) ReplaceForConversation(ctx context.Context, userID, conversationID string, msgs []models.Message) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	err := r.DB.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteMessagesForConversation, userID, conversationID); err != nil {
			return fmt.Errorf("clear messages: %w", err)
		}

		for _, msg := range msgs {
			sources, err := marshalSources(msg.Sources)
			if err != nil {
				return fmt.Errorf("encode sources (id=%s): %w", msg.ID, err)
			}

			_, err = tx.ExecContext(ctx, insertMessage,
				userID,
				msg.ID,
				conversationID,
				msg.Role,
				msg.Content,
				sources,
				msg.CreatedAt,
				now,
			)
			if err != nil {
				return fmt.Errorf("insert message (id=%s): %w", msg.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.ReplaceForConversation").
			Str("user_id", userID).
			Str("conversation_id", conversationID).
			Msg("failed to replace message rows")
		return fmt.Errorf("failed to replace messages: %w", err)
	}

	return nil
}

func (r *messageRepository) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteMessage, userID, id); err != nil {
		log.Err(err).
			Str("func", "messageRepository.Delete").
			Str("user_id", userID).
			Str("message_id", id).
			Msg("failed to delete message row")
		return fmt.Errorf("failed to delete message (id=%s): %w", id, err)
	}

	return nil
}

func (r *messageRepository) DeleteForConversation(ctx context.Context, userID, conversationID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteMessagesForConversation, userID, conversationID); err != nil {
		log.Err(err).
			Str("func", "messageRepository.DeleteForConversation").
			Str("user_id", userID).
			Str("conversation_id", conversationID).
			Msg("failed to delete message rows")
		return fmt.Errorf("failed to delete messages: %w", err)
	}

	return nil
}

func (r *messageRepository) PurgeUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteAllMessages, userID); err != nil {
		log.Err(err).
			Str("func", "messageRepository.PurgeUser").
			Str("user_id", userID).
			Msg("failed to purge message rows")
		return fmt.Errorf("failed to purge messages: %w", err)
	}

	return nil
}

func marshalSources(sources []models.Source) (string, error) {
	if len(sources) == 0 {
		return "", nil
	}
	payload, err := json.Marshal(sources)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
