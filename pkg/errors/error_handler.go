package errors

import (
	stderrors "errors"

	"media-downloader/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusFor returns the HTTP status for an error code.
func StatusFor(code string) int {
	switch code {
	case CodeMissingURL, CodeInvalidBody:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// UserMessage returns the message shown to the client. Fixed messages can be
// localized; extraction failures carry the extractor text verbatim.
func (e *MediaError) UserMessage() string {
	if e.Code == CodeExtraction {
		return e.Message
	}
	if msg, ok := i18n.Lookup(e.Code); ok {
		return msg
	}
	return e.Message
}

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	log := zap.L()

	var me *MediaError
	if stderrors.As(err, &me) {
		status := StatusFor(me.Code)
		if me.Err != nil {
			log.Warn("request failed",
				zap.String("code", me.Code),
				zap.Int("status", status),
				zap.Error(me.Err),
			)
		}

		if me.Code == CodeNotFound {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(status).SendString(me.UserMessage())
		}
		// Client’a sadece mesaj gönderilir
		return c.Status(status).JSON(fiber.Map{"error": me.UserMessage()})
	}

	log.Error("unexpected error", zap.Error(err))
	// Yakalanmayan hatalar için fallback
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": ErrInternal(err).UserMessage(),
	})
}
