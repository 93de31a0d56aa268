package scheduler

import (
	"context"
	"fmt"
	"time"

	"media-downloader/internal/usecases"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Janitor periodically removes expired downloads.
type Janitor struct {
	cron      *cron.Cron
	cleanupUC usecases.CleanupService
	retention time.Duration
	logger    *zap.Logger
}

func NewJanitor(cleanupUC usecases.CleanupService, interval, retention time.Duration, logger *zap.Logger) (*Janitor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cl := cronLogger{logger: logger.Named("cron")}
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	j := &Janitor{
		cron:      c,
		cleanupUC: cleanupUC,
		retention: retention,
		logger:    logger,
	}
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), j.Sweep); err != nil {
		return nil, fmt.Errorf("invalid cleanup interval %s: %w", interval, err)
	}
	return j, nil
}

// Sweep runs one cleanup pass.
func (j *Janitor) Sweep() {
	removed := j.cleanupUC.CleanupOldFiles(j.retention)
	j.logger.Debug("sweep finished", zap.Int("removed", removed))
}

func (j *Janitor) Start() {
	j.cron.Start() // cron job'u başlatır
}

// Stop halts scheduling and waits for a running sweep, or until ctx is done.
func (j *Janitor) Stop(ctx context.Context) error {
	done := j.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
