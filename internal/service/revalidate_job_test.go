package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/atharva-again/samvaad/models"
	"github.com/stretchr/testify/require"
)

// stubFileService satisfies FileService for the job tests; only
// RefreshIfStale does anything.
type stubFileService struct {
	refreshed atomic.Int64
	onRefresh func()
}

func (s *stubFileService) RefreshIfStale(ctx context.Context, threshold time.Duration) error {
	s.refreshed.Add(1)
	if s.onRefresh != nil {
		s.onRefresh()
	}
	return nil
}

func (s *stubFileService) LoadFiles(ctx context.Context) error { return nil }
func (s *stubFileService) Refresh(ctx context.Context) error   { return nil }
func (s *stubFileService) UploadFiles(ctx context.Context, uploads []models.FileUpload) (BatchSummary, error) {
	return BatchSummary{}, nil
}
func (s *stubFileService) ResolveDuplicate(ctx context.Context, filename string, replace bool) error {
	return nil
}
func (s *stubFileService) RenameFile(ctx context.Context, id, name string) error { return nil }
func (s *stubFileService) DeleteFiles(ctx context.Context, ids ...string) error  { return nil }

func TestRevalidateJob_RefreshesOnTick(t *testing.T) {
	ticked := make(chan struct{}, 1)
	files := &stubFileService{onRefresh: func() {
		select {
		case ticked <- struct{}{}:
		default:
		}
	}}

	job := NewRevalidateJob(files, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("job never ticked")
	}
}

func TestRevalidateJob_StopTerminatesLoop(t *testing.T) {
	files := &stubFileService{}

	job := NewRevalidateJob(files, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestRevalidateJob_StopWithoutStart(t *testing.T) {
	job := NewRevalidateJob(&stubFileService{}, logger.Nop())

	require.NotPanics(t, func() { job.Stop() })
}

func TestRevalidateJob_RestartReplacesPreviousRun(t *testing.T) {
	files := &stubFileService{}

	job := NewRevalidateJob(files, logger.Nop())
	job.Start(context.Background(), time.Minute)
	job.Start(context.Background(), time.Minute)
	job.Stop()
}
