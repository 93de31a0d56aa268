package main

import (
	"log"

	_ "media-downloader/docs"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// @title        Media Downloader API
// @version      1.0
// @description  Extracts media metadata, downloads video or MP3 audio and serves the result.
// @host         localhost:5000
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			loadConfig,
			newLogger,
			newFileStore,
			newExtractor,
			newMediaService,
			newCleanupService,
			newJanitor,
			newHTTPServer,
		),
		fx.Invoke(
			loadLocale,
			registerJanitor,
			registerHTTPServer,
		),
	).Run()
}
