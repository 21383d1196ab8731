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

type fileRepository struct {
	*DB
	logger *logger.Logger
}

func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *fileRepository) Save(ctx context.Context, userID string, file models.FileRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertFile,
		userID,
		file.ID,
		file.Filename,
		file.FileType,
		file.SizeBytes,
		file.ContentHash,
		file.Status,
		file.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.Save").
			Str("user_id", userID).
			Str("file_id", file.ID).
			Msg("failed to execute upsert for file record")
		return fmt.Errorf("failed to save file record (id=%s): %w", file.ID, err)
	}

	return nil
}

func (r *fileRepository) GetAll(ctx context.Context, userID string) ([]models.FileRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllFiles, userID)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.GetAll").
			Str("user_id", userID).
			Msg("failed to execute query for getting all file records")
		return nil, fmt.Errorf("failed to query all file records: %w", err)
	}
	defer rows.Close()

	var items []models.FileRecord

	for rows.Next() {
		var item models.FileRecord

		scanErr := rows.Scan(
			&item.ID,
			&item.Filename,
			&item.FileType,
			&item.SizeBytes,
			&item.ContentHash,
			&item.Status,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "fileRepository.GetAll").
				Str("user_id", userID).
				Msg("failed to scan file record row")
			return nil, fmt.Errorf("failed to scan file record row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "fileRepository.GetAll").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating file record rows: %w", rowsErr)
	}

	return items, nil
}

func (r *fileRepository) ReplaceAll(ctx context.Context, userID string, files []models.FileRecord) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	err := r.DB.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteAllFiles, userID); err != nil {
			return fmt.Errorf("clear file records: %w", err)
		}

		for _, file := range files {
			_, err := tx.ExecContext(ctx, upsertFile,
				userID,
				file.ID,
				file.Filename,
				file.FileType,
				file.SizeBytes,
				file.ContentHash,
				file.Status,
				file.CreatedAt,
				now,
			)
			if err != nil {
				return fmt.Errorf("insert file record (id=%s): %w", file.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.ReplaceAll").
			Str("user_id", userID).
			Msg("failed to replace file record rows")
		return fmt.Errorf("failed to replace file records: %w", err)
	}

	return nil
}

func (r *fileRepository) Patch(ctx context.Context, userID, id string, fields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("files").
		SetMap(fields).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build patch query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "fileRepository.Patch").
			Str("user_id", userID).
			Str("file_id", id).
			Msg("failed to execute patch for file record")
		return fmt.Errorf("failed to patch file record (id=%s): %w", id, err)
	}

	return nil
}

func (r *fileRepository) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteFile, userID, id); err != nil {
		log.Err(err).
			Str("func", "fileRepository.Delete").
			Str("user_id", userID).
			Str("file_id", id).
			Msg("failed to delete file record")
		return fmt.Errorf("failed to delete file record (id=%s): %w", id, err)
	}

	return nil
}

func (r *fileRepository) DeleteBatch(ctx context.Context, userID string, ids []string) error {
	log := logger.FromContext(ctx)

	err := r.DB.inTx(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, deleteFile, userID, id); err != nil {
				return fmt.Errorf("delete file record (id=%s): %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.DeleteBatch").
			Str("user_id", userID).
			Int("count", len(ids)).
			Msg("failed to batch delete file records")
		return fmt.Errorf("failed to batch delete file records: %w", err)
	}

	return nil
}

func (r *fileRepository) PurgeUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteAllFiles, userID); err != nil {
		log.Err(err).
			Str("func", "fileRepository.PurgeUser").
			Str("user_id", userID).
			Msg("failed to purge file record rows")
		return fmt.Errorf("failed to purge file records: %w", err)
	}

	return nil
}
