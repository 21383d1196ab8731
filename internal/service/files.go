package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atharva-again/samvaad/internal/adapter"
	"github.com/atharva-again/samvaad/internal/config"
	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/atharva-again/samvaad/internal/state"
	"github.com/atharva-again/samvaad/internal/store"
	"github.com/atharva-again/samvaad/models"
)

type fileService struct {
	container *state.Container
	storages  *store.ClientStorages
	gateway   adapter.Gateway
	ids       IDGenerator
	hasher    Hasher
	log       *logger.Logger

	maxUploadBytes int64
	staleAfter     time.Duration

	mu         sync.Mutex
	refreshing bool
	lastSyncAt time.Time
}

// NewFileService wires a FileService for the container's user. The logger is
// used for background refreshes, which outlive the caller's context.
func NewFileService(container *state.Container, storages *store.ClientStorages, gateway adapter.Gateway, ids IDGenerator, hasher Hasher, cfg config.Files, log *logger.Logger) FileService {
	maxBytes := cfg.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultMaxUploadBytes
	}
	staleAfter := cfg.StaleAfter
	if staleAfter <= 0 {
		staleAfter = config.DefaultStaleAfter
	}

	return &fileService{
		container:      container,
		storages:       storages,
		gateway:        gateway,
		ids:            ids,
		hasher:         hasher,
		log:            log,
		maxUploadBytes: maxBytes,
		staleAfter:     staleAfter,
	}
}

func (s *fileService) LoadFiles(ctx context.Context) error {
	userID := s.container.UserID()

	cached, err := s.storages.Files.GetAll(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cached files: %w", err)
	}

	if uiState, uerr := s.storages.UIState.Get(ctx, userID); uerr == nil {
		s.mu.Lock()
		s.lastSyncAt = uiState.FilesSyncedAt
		s.mu.Unlock()
	}

	if len(cached) == 0 {
		return s.Refresh(ctx)
	}

	// Cached rows are served immediately; the network answer lands through
	// a detached refresh so closing the caller's context cannot strand the
	// list half-updated.
	s.container.SetFiles(cached)
	go func() {
		refreshCtx := s.log.WithContext(context.Background())
		if rerr := s.Refresh(refreshCtx); rerr != nil {
			s.log.Warn().Err(rerr).Msg("background file refresh failed")
		}
	}()

	return nil
}

func (s *fileService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return nil
	}
	s.refreshing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	s.container.UpdateFlags(func(f *state.Flags) {
		f.LoadingFiles = true
		f.FilesError = ""
	})

	items, err := s.gateway.ListFiles(ctx)
	if err != nil {
		s.container.UpdateFlags(func(f *state.Flags) {
			f.LoadingFiles = false
			f.FilesError = err.Error()
		})
		return fmt.Errorf("list files: %w", err)
	}

	s.container.SetFiles(items)
	s.container.UpdateFlags(func(f *state.Flags) { f.LoadingFiles = false })

	now := time.Now().UTC()
	s.mu.Lock()
	s.lastSyncAt = now
	s.mu.Unlock()

	userID := s.container.UserID()
	log := logger.FromContext(ctx)
	if err = s.storages.Files.ReplaceAll(ctx, userID, items); err != nil {
		log.Warn().Err(err).Msg("failed to refresh file cache")
	}

	uiState, err := s.storages.UIState.Get(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read persisted ui state")
		return nil
	}
	uiState.FilesSyncedAt = now
	if err = s.storages.UIState.Save(ctx, userID, uiState); err != nil {
		log.Warn().Err(err).Msg("failed to persist file sync time")
	}

	return nil
}

func (s *fileService) RefreshIfStale(ctx context.Context, threshold time.Duration) error {
	if threshold <= 0 {
		threshold = s.staleAfter
	}

	s.mu.Lock()
	last := s.lastSyncAt
	s.mu.Unlock()

	if !last.IsZero() && time.Since(last) < threshold {
		return nil
	}
	return s.Refresh(ctx)
}

// stagedUpload pairs an upload candidate with the provisional record already
// placed in the container for it.
type stagedUpload struct {
	upload      models.FileUpload
	provisional models.FileRecord
}

func (s *fileService) UploadFiles(ctx context.Context, uploads []models.FileUpload) (BatchSummary, error) {
	var summary BatchSummary
	var staged []stagedUpload
	var rejected error

	for _, upload := range uploads {
		if int64(len(upload.Data)) > s.maxUploadBytes {
			summary.Rejected = append(summary.Rejected, upload.Filename)
			rejected = errors.Join(rejected, fmt.Errorf("%s: %w", upload.Filename, ErrFileTooLarge))
			continue
		}

		digest := s.hasher.Digest(upload.Data)

		// Name collisions take precedence over content collisions: a file
		// re-uploaded under its own name is a name collision even when the
		// bytes also match an existing record. Provisional records staged
		// earlier in this batch participate, so two identical candidates in
		// one batch classify the same as across batches.
		if existing, ok := s.container.FindFileByName(upload.Filename); ok {
			s.container.QueueDuplicate(state.PendingDuplicate{
				Upload:     upload,
				Digest:     digest,
				Kind:       state.CollisionName,
				ExistingID: existing.ID,
			})
			summary.Duplicates++
			continue
		}
		if existing, ok := s.container.FindFileByDigest(digest); ok {
			s.container.QueueDuplicate(state.PendingDuplicate{
				Upload:     upload,
				Digest:     digest,
				Kind:       state.CollisionContent,
				ExistingID: existing.ID,
			})
			summary.Duplicates++
			continue
		}

		staged = append(staged, stagedUpload{
			upload:      upload,
			provisional: s.stageUpload(ctx, upload, digest),
		})
	}

	if len(staged) == 0 {
		return summary, rejected
	}

	var (
		wg       sync.WaitGroup
		countsMu sync.Mutex
	)
	for i := range staged {
		wg.Add(1)
		go func(st stagedUpload) {
			defer wg.Done()
			err := s.finishUpload(ctx, st.upload, st.provisional)

			countsMu.Lock()
			defer countsMu.Unlock()
			if err != nil {
				summary.Failed++
			} else {
				summary.Uploaded++
			}
		}(staged[i])
	}
	wg.Wait()

	return summary, rejected
}

// stageUpload places the provisional uploading record in the container and
// the local cache.
func (s *fileService) stageUpload(ctx context.Context, upload models.FileUpload, digest string) models.FileRecord {
	provisional := models.FileRecord{
		ID:          s.ids.Generate(),
		Filename:    upload.Filename,
		FileType:    upload.FileType,
		SizeBytes:   int64(len(upload.Data)),
		ContentHash: digest,
		Status:      models.StatusUploading,
		CreatedAt:   time.Now().UTC(),
	}
	s.container.UpsertFile(provisional)
	if err := s.storages.Files.Save(ctx, s.container.UserID(), provisional); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("file_id", provisional.ID).Msg("failed to cache provisional file")
	}
	return provisional
}

// uploadOne stages a provisional record and immediately runs it through the
// network phase. Single-file path used by duplicate resolution.
func (s *fileService) uploadOne(ctx context.Context, upload models.FileUpload, digest string) error {
	return s.finishUpload(ctx, upload, s.stageUpload(ctx, upload, digest))
}

// finishUpload completes a staged record's lifecycle: synced on
// confirmation, error status on server-side processing failure, removed
// entirely on transport failure.
func (s *fileService) finishUpload(ctx context.Context, upload models.FileUpload, provisional models.FileRecord) error {
	log := logger.FromContext(ctx)
	userID := s.container.UserID()

	resp, err := s.gateway.UploadFile(ctx, upload)
	if err != nil {
		// Transport failure: the server never recorded anything, so the
		// provisional record disappears rather than lingering in error.
		s.container.RemoveFiles(provisional.ID)
		if derr := s.storages.Files.Delete(ctx, userID, provisional.ID); derr != nil {
			log.Warn().Err(derr).Str("file_id", provisional.ID).Msg("failed to remove provisional file row")
		}
		return fmt.Errorf("upload %s: %w", upload.Filename, err)
	}

	if resp.Error != "" {
		failed := provisional
		failed.Status = models.StatusError
		s.container.UpsertFile(failed)
		if perr := s.storages.Files.Patch(ctx, userID, failed.ID, map[string]any{"status": string(models.StatusError)}); perr != nil {
			log.Warn().Err(perr).Str("file_id", failed.ID).Msg("failed to mark file row failed")
		}
		return fmt.Errorf("upload %s: %w: %s", upload.Filename, ErrProcessingFailed, resp.Error)
	}

	confirmed := models.FileRecord{
		ID:          resp.FileID,
		Filename:    upload.Filename,
		FileType:    upload.FileType,
		SizeBytes:   resp.SizeBytes,
		ContentHash: resp.ContentHash,
		Status:      models.StatusSynced,
		CreatedAt:   resp.CreatedAt,
	}
	if confirmed.ContentHash == "" {
		confirmed.ContentHash = provisional.ContentHash
	}
	if confirmed.SizeBytes == 0 {
		confirmed.SizeBytes = provisional.SizeBytes
	}

	s.container.ReplaceFile(provisional.ID, confirmed)
	if derr := s.storages.Files.Delete(ctx, userID, provisional.ID); derr != nil {
		log.Warn().Err(derr).Str("file_id", provisional.ID).Msg("failed to drop provisional file row")
	}
	if serr := s.storages.Files.Save(ctx, userID, confirmed); serr != nil {
		log.Warn().Err(serr).Str("file_id", confirmed.ID).Msg("failed to cache confirmed file")
	}

	return nil
}

func (s *fileService) ResolveDuplicate(ctx context.Context, filename string, replace bool) error {
	dup, ok := s.container.TakeDuplicate(filename)
	if !ok {
		return ErrNoPendingDuplicate
	}

	if !replace && dup.Kind == state.CollisionContent {
		// Keep both: same bytes under a new name is a plain upload.
		if err := s.uploadOne(ctx, dup.Upload, dup.Digest); err != nil {
			return err
		}
		return nil
	}
	if !replace {
		// Keeping both under one filename is impossible; the candidate is
		// simply discarded.
		return nil
	}

	// Replace: the new version must be uploaded and confirmed before the
	// old record is deleted, so a failed upload can never lose the
	// original.
	if err := s.uploadOne(ctx, dup.Upload, dup.Digest); err != nil {
		return err
	}
	return s.DeleteFiles(ctx, dup.ExistingID)
}

func (s *fileService) RenameFile(ctx context.Context, id, name string) error {
	var previous models.FileRecord
	found := false
	for _, rec := range s.container.Files() {
		if rec.ID == id {
			previous = rec
			found = true
			break
		}
	}
	if !found {
		return adapter.ErrNotFound
	}

	renamed := previous
	renamed.Filename = name
	s.container.UpsertFile(renamed)

	if err := s.gateway.RenameFile(ctx, id, name); err != nil {
		s.container.UpsertFile(previous)
		return errors.Join(ErrRolledBack, err)
	}

	userID := s.container.UserID()
	if err := s.storages.Files.Patch(ctx, userID, id, map[string]any{"filename": name}); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("file_id", id).Msg("failed to write rename through to cache")
	}
	return nil
}

func (s *fileService) DeleteFiles(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	s.container.RemoveFiles(ids...)

	var err error
	if len(ids) == 1 {
		err = s.gateway.DeleteFile(ctx, ids[0])
	} else {
		err = s.gateway.DeleteFiles(ctx, ids)
	}
	if err != nil {
		return fmt.Errorf("delete files: %w", err)
	}

	userID := s.container.UserID()
	if derr := s.storages.Files.DeleteBatch(ctx, userID, ids); derr != nil {
		logger.FromContext(ctx).Warn().Err(derr).Msg("failed to delete file rows")
	}
	return nil
}
