package main

import (
	"context"
	"net"

	"media-downloader/internal/delivery/http/handlers"
	"media-downloader/internal/delivery/http/routers"
	"media-downloader/internal/domain/repositories"
	"media-downloader/internal/infrastructure/scheduler"
	"media-downloader/internal/infrastructure/storage"
	"media-downloader/internal/infrastructure/ytdlp"
	"media-downloader/internal/pkg/config"
	"media-downloader/internal/usecases"
	"media-downloader/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func loadConfig() (*config.Config, error) {
	return config.LoadConfig()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.App.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

func loadLocale(cfg *config.Config, l *zap.Logger) {
	if err := i18n.Load(cfg.App.Locale); err != nil {
		l.Warn("locale not available, falling back to en", zap.String("locale", cfg.App.Locale), zap.Error(err))
		if err := i18n.Load("en"); err != nil {
			l.Error("default locale failed to load", zap.Error(err))
		}
	}
}

func newFileStore(cfg *config.Config, l *zap.Logger) (repositories.FileStore, error) {
	store, err := storage.NewLocalStorage(cfg.Storage.DownloadDir, cfg.Storage.ServeGrace)
	if err != nil {
		return nil, err
	}
	l.Info("download directory ready", zap.String("dir", store.Dir()))
	return store, nil
}

func newExtractor(cfg *config.Config, l *zap.Logger) (repositories.MediaExtractor, error) {
	headers, err := ytdlp.ParseHeaders(cfg.YTDLP.Headers)
	if err != nil {
		return nil, err
	}
	return ytdlp.NewRunner(ytdlp.Config{
		Binary:        cfg.YTDLP.Binary,
		UserAgent:     cfg.YTDLP.UserAgent,
		Headers:       headers,
		CookiesFile:   cfg.YTDLP.CookiesFile,
		ExtractorArgs: cfg.YTDLP.ExtractorArgs,
		Proxy:         cfg.YTDLP.Proxy,
		SocketTimeout: cfg.YTDLP.SocketTimeout,
	}, ytdlp.NewExecRunner(), l.Named("ytdlp")), nil
}

func newMediaService(extractor repositories.MediaExtractor, store repositories.FileStore, l *zap.Logger) usecases.MediaService {
	return usecases.NewMediaService(extractor, store, l.Named("media"))
}

func newCleanupService(store repositories.FileStore, l *zap.Logger) usecases.CleanupService {
	return usecases.NewCleanupService(store, l.Named("cleanup"))
}

func newJanitor(cfg *config.Config, cleanupUC usecases.CleanupService, l *zap.Logger) (*scheduler.Janitor, error) {
	return scheduler.NewJanitor(cleanupUC, cfg.Storage.CleanupInterval, cfg.Storage.FileRetention, l.Named("janitor"))
}

func newHTTPServer(cfg *config.Config, mediaService usecases.MediaService, store repositories.FileStore) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Server.MaxBodySize,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routers.SetupMediaRoutes(app, handlers.NewMediaHandler(mediaService), handlers.NewFileHandler(store))
	routers.SetupCommonRoutes(app, cfg.Server.StaticDir)
	return app
}

func registerJanitor(lc fx.Lifecycle, j *scheduler.Janitor) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			j.Start()
			return nil
		},
		OnStop: j.Stop,
	})
}

func registerHTTPServer(lc fx.Lifecycle, cfg *config.Config, app *fiber.App, l *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", cfg.Addr())
			if err != nil {
				return err
			}
			l.Info("server starting", zap.String("addr", cfg.Addr()))
			go func() {
				if err := app.Listener(ln); err != nil {
					l.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			l.Info("shutdown signal received, stopping server")
			return app.ShutdownWithContext(ctx)
		},
	})
}
