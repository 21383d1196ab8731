package service

import (
	"context"
	"sync"
	"time"

	"github.com/atharva-again/samvaad/internal/config"
	"github.com/atharva-again/samvaad/internal/logger"
)

type revalidateJob struct {
	files FileService
	log   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRevalidateJob returns a background job that keeps the cached file list
// fresh by refreshing it on a fixed interval.
func NewRevalidateJob(files FileService, log *logger.Logger) RevalidateJob {
	return &revalidateJob{files: files, log: log}
}

func (j *revalidateJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultRevalidateInterval
	}

	j.Stop()

	jobCtx, cancel := context.WithCancel(ctx)

	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run(jobCtx, interval)
}

func (j *revalidateJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *revalidateJob) run(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	log := j.log.GetChildLogger()
	log.Info().Dur("interval", interval).Msg("file revalidation job started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("file revalidation job stopped")
			return
		case <-ticker.C:
			tickCtx := log.WithContext(ctx)
			if err := j.files.RefreshIfStale(tickCtx, 0); err != nil {
				log.Warn().Err(err).Msg("periodic file refresh failed")
			}
		}
	}
}
