package usecases

import (
	"time"

	"media-downloader/internal/domain/repositories"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type CleanupService interface {
	CleanupOldFiles(maxAge time.Duration) int
}

type cleanupService struct {
	store  repositories.FileStore
	logger *zap.Logger
	now    func() time.Time
}

func NewCleanupService(store repositories.FileStore, logger *zap.Logger) CleanupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cleanupService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CleanupOldFiles removes files older than maxAge that are not being served.
// Failures are logged and never returned; the sweep is best effort.
func (s *cleanupService) CleanupOldFiles(maxAge time.Duration) int {
	infos, err := s.store.List()
	if err != nil {
		s.logger.Debug("cleanup: cannot list download dir", zap.Error(err))
		return 0
	}

	now := s.now()
	removed := 0
	var errs error
	for _, info := range infos {
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		if s.store.InUse(info.Name()) {
			s.logger.Debug("cleanup: skipping file in use", zap.String("file", info.Name()))
			continue
		}
		if err := s.store.Delete(info.Name()); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		removed++
	}

	if errs != nil {
		s.logger.Debug("cleanup: some files could not be removed", zap.Error(errs))
	}
	if removed > 0 {
		s.logger.Info("cleanup: removed old files", zap.Int("count", removed))
	}
	return removed
}
