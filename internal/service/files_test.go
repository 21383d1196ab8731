package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atharva-again/samvaad/internal/config"
	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/atharva-again/samvaad/internal/mock"
	"github.com/atharva-again/samvaad/internal/state"
	"github.com/atharva-again/samvaad/internal/store"
	"github.com/atharva-again/samvaad/internal/utils"
	"github.com/atharva-again/samvaad/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFileSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg config.Files,
) (
	FileService,
	*state.Container,
	*mock.MockFileRepository,
	*mock.MockUIStateRepository,
	*mock.MockGateway,
) {
	t.Helper()
	mockFiles := mock.NewMockFileRepository(ctrl)
	mockUI := mock.NewMockUIStateRepository(ctrl)
	mockGateway := mock.NewMockGateway(ctrl)

	container := state.NewContainer("user-1")
	storages := &store.ClientStorages{
		Files:   mockFiles,
		UIState: mockUI,
	}
	svc := NewFileService(container, storages, mockGateway, &stubIDGen{}, utils.NewContentHasher(), cfg, logger.Nop())
	return svc, container, mockFiles, mockUI, mockGateway
}

// expectRefresh wires the calls one full server-side refresh makes.
func expectRefresh(mockFiles *mock.MockFileRepository, mockUI *mock.MockUIStateRepository, mockGateway *mock.MockGateway, items []models.FileRecord) {
	mockGateway.EXPECT().ListFiles(gomock.Any()).Return(items, nil)
	mockFiles.EXPECT().ReplaceAll(gomock.Any(), "user-1", items).Return(nil)
	mockUI.EXPECT().Get(gomock.Any(), "user-1").Return(store.UIState{}, nil)
	mockUI.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil)
}

// ── Loading ──────────────────────────────────────────────────────────────────

func TestFileService_LoadFiles_EmptyCacheFetchesSynchronously(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, mockUI, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	remote := []models.FileRecord{{ID: "f1", Filename: "notes.pdf", Status: models.StatusSynced}}

	mockFiles.EXPECT().GetAll(ctx, "user-1").Return(nil, nil)
	mockUI.EXPECT().Get(ctx, "user-1").Return(store.UIState{}, nil)
	expectRefresh(mockFiles, mockUI, mockGateway, remote)

	require.NoError(t, svc.LoadFiles(ctx))

	files := container.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "notes.pdf", files[0].Filename)
}

func TestFileService_LoadFiles_CachedRowsServedImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, mockUI, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	cached := []models.FileRecord{{ID: "f1", Filename: "cached.pdf", Status: models.StatusSynced}}
	fresh := []models.FileRecord{
		{ID: "f1", Filename: "cached.pdf", Status: models.StatusSynced},
		{ID: "f2", Filename: "fresh.pdf", Status: models.StatusSynced},
	}

	refreshed := make(chan struct{})
	mockFiles.EXPECT().GetAll(ctx, "user-1").Return(cached, nil)
	mockUI.EXPECT().Get(ctx, "user-1").Return(store.UIState{}, nil)
	mockGateway.EXPECT().ListFiles(gomock.Any()).Return(fresh, nil)
	mockFiles.EXPECT().ReplaceAll(gomock.Any(), "user-1", fresh).Return(nil)
	mockUI.EXPECT().Get(gomock.Any(), "user-1").Return(store.UIState{}, nil)
	mockUI.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(context.Context, string, store.UIState) error {
			close(refreshed)
			return nil
		})

	require.NoError(t, svc.LoadFiles(ctx))

	// The cached rows are visible before the background refresh lands.
	assert.Len(t, container.Files(), 1)

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("background refresh never completed")
	}
	assert.Eventually(t, func() bool { return len(container.Files()) == 2 }, time.Second, 10*time.Millisecond)
}

func TestFileService_Refresh_ErrorSetsFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, _, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	mockGateway.EXPECT().ListFiles(gomock.Any()).Return(nil, errors.New("down"))

	err := svc.Refresh(ctx)
	require.Error(t, err)

	flags := container.Flags()
	assert.False(t, flags.LoadingFiles)
	assert.Contains(t, flags.FilesError, "down")
}

func TestFileService_RefreshIfStale_SkipsFreshSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockFiles, mockUI, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	// Only one refresh hits the network: the second call sees a fresh sync.
	expectRefresh(mockFiles, mockUI, mockGateway, nil)

	require.NoError(t, svc.Refresh(ctx))
	require.NoError(t, svc.RefreshIfStale(ctx, time.Hour))
}

func TestFileService_RefreshIfStale_RefreshesWhenStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockFiles, mockUI, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	// Never synced, so any threshold counts as stale.
	expectRefresh(mockFiles, mockUI, mockGateway, nil)

	require.NoError(t, svc.RefreshIfStale(ctx, time.Hour))
}

// ── Uploads ──────────────────────────────────────────────────────────────────

func TestFileService_UploadFiles_OversizedRejectedBeforeUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, _, _, _ := newTestFileSvc(t, ctrl, config.Files{MaxUploadBytes: 8})
	ctx := context.Background()

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{
		{Filename: "huge.bin", Data: []byte("way more than eight bytes")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Contains(t, err.Error(), "huge.bin")

	assert.Equal(t, []string{"huge.bin"}, summary.Rejected)
	assert.Zero(t, summary.Uploaded)
	assert.Empty(t, container.Files())
}

func TestFileService_UploadFiles_UniqueFileLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	upload := models.FileUpload{Filename: "essay.txt", FileType: "text/plain", Data: []byte("hello")}

	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, rec models.FileRecord) error {
			assert.Equal(t, models.StatusUploading, rec.Status)
			assert.NotEmpty(t, rec.ContentHash)
			return nil
		})
	mockGateway.EXPECT().UploadFile(gomock.Any(), upload).
		Return(models.UploadFileResponse{FileID: "srv-f1", SizeBytes: 5, CreatedAt: time.Now()}, nil)
	mockFiles.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, rec models.FileRecord) error {
			assert.Equal(t, "srv-f1", rec.ID)
			assert.Equal(t, models.StatusSynced, rec.Status)
			return nil
		})

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{upload})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Uploaded)
	files := container.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "srv-f1", files[0].ID)
	assert.Equal(t, models.StatusSynced, files[0].Status)
}

func TestFileService_UploadFiles_TransportFailureRemovesProvisional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().UploadFile(gomock.Any(), gomock.Any()).
		Return(models.UploadFileResponse{}, errors.New("connection reset"))
	mockFiles.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).Return(nil)

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{
		{Filename: "doc.pdf", Data: []byte("x")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Empty(t, container.Files())
}

func TestFileService_UploadFiles_ProcessingFailureMarksError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().UploadFile(gomock.Any(), gomock.Any()).
		Return(models.UploadFileResponse{Error: "unsupported format"}, nil)
	mockFiles.EXPECT().Patch(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).Return(nil)

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{
		{Filename: "weird.xyz", Data: []byte("x")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	files := container.Files()
	require.Len(t, files, 1)
	assert.Equal(t, models.StatusError, files[0].Status)
}

func TestFileService_UploadFiles_NameCollisionQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, _, _, _ := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	container.SetFiles([]models.FileRecord{
		{ID: "f1", Filename: "notes.pdf", ContentHash: "aaa", Status: models.StatusSynced},
	})

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{
		{Filename: "notes.pdf", Data: []byte("different bytes")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Duplicates)
	assert.Zero(t, summary.Uploaded)

	dups := container.PendingDuplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, state.CollisionName, dups[0].Kind)
	assert.Equal(t, "f1", dups[0].ExistingID)
}

func TestFileService_UploadFiles_ContentCollisionQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, _, _, _ := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	data := []byte("same bytes")
	digest := utils.NewContentHasher().Digest(data)
	container.SetFiles([]models.FileRecord{
		{ID: "f1", Filename: "original.txt", ContentHash: digest, Status: models.StatusSynced},
	})

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{
		{Filename: "copy.txt", Data: data},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Duplicates)

	dups := container.PendingDuplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, state.CollisionContent, dups[0].Kind)
}

func TestFileService_UploadFiles_NameCollisionWinsOverContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, _, _, _ := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	data := []byte("identical")
	digest := utils.NewContentHasher().Digest(data)
	container.SetFiles([]models.FileRecord{
		{ID: "f1", Filename: "report.pdf", ContentHash: digest, Status: models.StatusSynced},
	})

	_, err := svc.UploadFiles(ctx, []models.FileUpload{
		{Filename: "report.pdf", Data: data},
	})
	require.NoError(t, err)

	dups := container.PendingDuplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, state.CollisionName, dups[0].Kind)
}

func TestFileService_UploadFiles_MixedBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{MaxUploadBytes: 100})
	ctx := context.Background()

	container.SetFiles([]models.FileRecord{
		{ID: "f1", Filename: "existing.txt", ContentHash: "zzz", Status: models.StatusSynced},
	})

	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil).Times(2)
	mockGateway.EXPECT().UploadFile(gomock.Any(), gomock.Any()).
		Return(models.UploadFileResponse{FileID: "srv-new"}, nil)
	mockFiles.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).Return(nil)

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{
		{Filename: "fresh.txt", Data: []byte("ok")},
		{Filename: "existing.txt", Data: []byte("collides")},
		{Filename: "huge.bin", Data: make([]byte, 200)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	assert.Equal(t, 1, summary.Uploaded)
	assert.Equal(t, 1, summary.Duplicates)
	assert.Equal(t, []string{"huge.bin"}, summary.Rejected)
}

func TestFileService_UploadFiles_SameBatchContentTwinQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	// Two candidates with identical bytes in one batch: only the first is
	// uploaded, the second is a content collision against it.
	data := []byte("identical bytes")
	first := models.FileUpload{Filename: "a.txt", Data: data}
	second := models.FileUpload{Filename: "b.txt", Data: data}

	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil).Times(2)
	mockFiles.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().UploadFile(gomock.Any(), first).
		Return(models.UploadFileResponse{FileID: "srv-f1"}, nil)

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{first, second})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Uploaded)
	assert.Equal(t, 1, summary.Duplicates)

	dups := container.PendingDuplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, state.CollisionContent, dups[0].Kind)
	assert.Equal(t, "b.txt", dups[0].Upload.Filename)
	// The collision follows its twin through id reconciliation.
	assert.Equal(t, "srv-f1", dups[0].ExistingID)

	files := container.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "srv-f1", files[0].ID)
}

func TestFileService_UploadFiles_SameBatchNameTwinQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	first := models.FileUpload{Filename: "notes.txt", Data: []byte("version one")}
	second := models.FileUpload{Filename: "notes.txt", Data: []byte("version two")}

	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil).Times(2)
	mockFiles.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().UploadFile(gomock.Any(), first).
		Return(models.UploadFileResponse{FileID: "srv-f1"}, nil)

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{first, second})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Uploaded)
	assert.Equal(t, 1, summary.Duplicates)

	dups := container.PendingDuplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, state.CollisionName, dups[0].Kind)
	assert.Len(t, container.Files(), 1)
}

func TestFileService_UploadFiles_CollidesWithInFlightUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, _, _, _ := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	// A record still in uploading status holds both its name and digest.
	data := []byte("shared content")
	digest := utils.NewContentHasher().Digest(data)
	container.SetFiles([]models.FileRecord{
		{ID: "prov", Filename: "inflight.txt", ContentHash: digest, Status: models.StatusUploading},
	})

	summary, err := svc.UploadFiles(ctx, []models.FileUpload{
		{Filename: "latecomer.txt", Data: data},
	})
	require.NoError(t, err)

	assert.Zero(t, summary.Uploaded)
	assert.Equal(t, 1, summary.Duplicates)

	dups := container.PendingDuplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, state.CollisionContent, dups[0].Kind)
	assert.Equal(t, "prov", dups[0].ExistingID)
}

// ── Duplicate resolution ─────────────────────────────────────────────────────

func TestFileService_ResolveDuplicate_ReplaceUploadsBeforeDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	container.SetFiles([]models.FileRecord{
		{ID: "f-old", Filename: "notes.pdf", ContentHash: "old", Status: models.StatusSynced},
	})
	container.QueueDuplicate(state.PendingDuplicate{
		Upload:     models.FileUpload{Filename: "notes.pdf", Data: []byte("new version")},
		Digest:     "new",
		Kind:       state.CollisionName,
		ExistingID: "f-old",
	})

	uploaded := false
	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil).Times(2)
	mockFiles.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().UploadFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.FileUpload) (models.UploadFileResponse, error) {
			uploaded = true
			return models.UploadFileResponse{FileID: "f-new"}, nil
		})
	mockGateway.EXPECT().DeleteFile(gomock.Any(), "f-old").
		DoAndReturn(func(context.Context, string) error {
			// Strict ordering: the old record only goes after the new
			// version is confirmed.
			assert.True(t, uploaded)
			return nil
		})
	mockFiles.EXPECT().DeleteBatch(gomock.Any(), "user-1", []string{"f-old"}).Return(nil)

	require.NoError(t, svc.ResolveDuplicate(ctx, "notes.pdf", true))

	files := container.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "f-new", files[0].ID)
	assert.Empty(t, container.PendingDuplicates())
}

func TestFileService_ResolveDuplicate_ReplaceUploadFailureKeepsOriginal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	container.SetFiles([]models.FileRecord{
		{ID: "f-old", Filename: "notes.pdf", Status: models.StatusSynced},
	})
	container.QueueDuplicate(state.PendingDuplicate{
		Upload:     models.FileUpload{Filename: "notes.pdf", Data: []byte("new")},
		Kind:       state.CollisionName,
		ExistingID: "f-old",
	})

	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().UploadFile(gomock.Any(), gomock.Any()).
		Return(models.UploadFileResponse{}, errors.New("network"))
	mockFiles.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).Return(nil)

	err := svc.ResolveDuplicate(ctx, "notes.pdf", true)
	require.Error(t, err)

	// The existing record was never deleted.
	files := container.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "f-old", files[0].ID)
}

func TestFileService_ResolveDuplicate_KeepBothContentCollisionUploads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	container.SetFiles([]models.FileRecord{
		{ID: "f1", Filename: "original.txt", Status: models.StatusSynced},
	})
	container.QueueDuplicate(state.PendingDuplicate{
		Upload:     models.FileUpload{Filename: "copy.txt", Data: []byte("same")},
		Kind:       state.CollisionContent,
		ExistingID: "f1",
	})

	mockFiles.EXPECT().Save(gomock.Any(), "user-1", gomock.Any()).Return(nil).Times(2)
	mockFiles.EXPECT().Delete(gomock.Any(), "user-1", gomock.Any()).Return(nil)
	mockGateway.EXPECT().UploadFile(gomock.Any(), gomock.Any()).
		Return(models.UploadFileResponse{FileID: "f2"}, nil)

	require.NoError(t, svc.ResolveDuplicate(ctx, "copy.txt", false))

	assert.Len(t, container.Files(), 2)
}

func TestFileService_ResolveDuplicate_KeepNameCollisionDiscards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, _, _, _ := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	container.QueueDuplicate(state.PendingDuplicate{
		Upload: models.FileUpload{Filename: "notes.pdf", Data: []byte("x")},
		Kind:   state.CollisionName,
	})

	require.NoError(t, svc.ResolveDuplicate(ctx, "notes.pdf", false))
	assert.Empty(t, container.PendingDuplicates())
}

func TestFileService_ResolveDuplicate_NothingQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestFileSvc(t, ctrl, config.Files{})

	err := svc.ResolveDuplicate(context.Background(), "ghost.pdf", true)
	assert.ErrorIs(t, err, ErrNoPendingDuplicate)
}

// ── Rename and delete ────────────────────────────────────────────────────────

func TestFileService_RenameFile_RollsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, _, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	container.SetFiles([]models.FileRecord{
		{ID: "f1", Filename: "before.txt", Status: models.StatusSynced},
	})

	mockGateway.EXPECT().RenameFile(gomock.Any(), "f1", "after.txt").Return(errors.New("500"))

	err := svc.RenameFile(ctx, "f1", "after.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRolledBack)
	assert.Equal(t, "before.txt", container.Files()[0].Filename)
}

func TestFileService_RenameFile_WritesThroughOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	container.SetFiles([]models.FileRecord{
		{ID: "f1", Filename: "before.txt", Status: models.StatusSynced},
	})

	mockGateway.EXPECT().RenameFile(gomock.Any(), "f1", "after.txt").Return(nil)
	mockFiles.EXPECT().Patch(gomock.Any(), "user-1", "f1", map[string]any{"filename": "after.txt"}).Return(nil)

	require.NoError(t, svc.RenameFile(ctx, "f1", "after.txt"))
	assert.Equal(t, "after.txt", container.Files()[0].Filename)
}

func TestFileService_DeleteFiles_Batch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, container, mockFiles, _, mockGateway := newTestFileSvc(t, ctrl, config.Files{})
	ctx := context.Background()

	container.SetFiles([]models.FileRecord{
		{ID: "f1", Status: models.StatusSynced},
		{ID: "f2", Status: models.StatusSynced},
		{ID: "f3", Status: models.StatusSynced},
	})

	mockGateway.EXPECT().DeleteFiles(gomock.Any(), []string{"f1", "f3"}).Return(nil)
	mockFiles.EXPECT().DeleteBatch(gomock.Any(), "user-1", []string{"f1", "f3"}).Return(nil)

	require.NoError(t, svc.DeleteFiles(ctx, "f1", "f3"))

	files := container.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "f2", files[0].ID)
}

func TestFileService_DeleteFiles_NoIDsIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestFileSvc(t, ctrl, config.Files{})

	require.NoError(t, svc.DeleteFiles(context.Background()))
}
