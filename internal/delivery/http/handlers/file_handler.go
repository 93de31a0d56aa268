package handlers

import (
	"media-downloader/internal/domain/repositories"
	"media-downloader/pkg/errors"
	"media-downloader/pkg/helper"

	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	store repositories.FileStore
}

func NewFileHandler(store repositories.FileStore) *FileHandler {
	return &FileHandler{store: store}
}

// ServeFile
//
// @Summary      Serve Downloaded File
// @Description  Streams a downloaded file as an attachment
// @Tags         Files
// @Produce      octet-stream
// @Param        name   path      string true  "Stored file name"
// @Param        name   query     string false "Download name shown to the client"
// @Success      200    {file}    file
// @Failure      404    {string}  string "File not found"
// @Router       /serve-file/{name} [get]
func (h *FileHandler) ServeFile(c *fiber.Ctx) error {
	name := c.Params("name")

	rc, info, err := h.store.Open(name)
	if err != nil {
		return errors.HandleError(c, errors.ErrNotFound(nil))
	}

	display := c.Query("name")
	if display == "" {
		display = name
	}

	c.Set(fiber.HeaderContentType, helper.GetMimeTypeFromExtension(name))
	c.Set(fiber.HeaderContentDisposition, helper.AttachmentHeader(display))
	// rc, gövde gönderildikten sonra fasthttp tarafından kapatılır
	return c.SendStream(rc, int(info.Size()))
}
