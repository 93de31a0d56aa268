package routers

import (
	"os"

	"media-downloader/internal/delivery/http/handlers"
	consts "media-downloader/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

func SetupMediaRoutes(app *fiber.App, mediaHandler *handlers.MediaHandler, fileHandler *handlers.FileHandler) {
	app.Post("/get-info", mediaHandler.GetInfo)
	app.Post("/download", mediaHandler.Download)
	app.Get("/serve-file/:name", fileHandler.ServeFile)
}

// SetupCommonRoutes registers health, swagger and the static landing page.
func SetupCommonRoutes(app *fiber.App, staticDir string) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		app.Static("/", staticDir, fiber.Static{Index: "index.html"})
	}
}
