package handlers

import (
	"media-downloader/internal/domain/dto"
	"media-downloader/internal/usecases"
	"media-downloader/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type MediaHandler struct {
	service usecases.MediaService
}

func NewMediaHandler(service usecases.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// GetInfo
//
// @Summary      Get Media Info
// @Description  Extracts metadata for a media page URL and returns the downloadable offers
// @Tags         Media
// @Accept       json
// @Produce      json
// @Param        request  body      dto.InfoRequestDTO true "Media page URL"
// @Success      200      {object}  dto.InfoResponse
// @Failure      400      {object}  dto.ErrorResponse "No URL provided"
// @Failure      500      {object}  dto.ErrorResponse "Extraction failed"
// @Router       /get-info [post]
func (h *MediaHandler) GetInfo(c *fiber.Ctx) error {
	var req dto.InfoRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidBody(err))
	}

	response, err := h.service.GetInfo(c.UserContext(), req.URL)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(response)
}

// Download
//
// @Summary      Download Media
// @Description  Downloads the selected format (or MP3 audio) and returns a link to fetch it
// @Tags         Media
// @Accept       json
// @Produce      json
// @Param        request  body      dto.DownloadRequestDTO true "Download request"
// @Success      200      {object}  dto.DownloadResponse
// @Failure      400      {object}  dto.ErrorResponse "No URL provided"
// @Failure      500      {object}  dto.ErrorResponse "Download failed"
// @Router       /download [post]
func (h *MediaHandler) Download(c *fiber.Ctx) error {
	var req dto.DownloadRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidBody(err))
	}

	response, err := h.service.Download(c.UserContext(), req)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(response)
}
