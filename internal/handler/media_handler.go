package handler

import (
	"github.com/gofiber/fiber/v2"

	"chisan-market/internal/middleware"
	"chisan-market/internal/service/media"
)

const maxUploadSize = 10 << 20 // 10 MiB

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing file upload")
	}
	if fileHeader.Size > maxUploadSize {
		return middleware.BadRequest("File exceeds the 10MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read uploaded file")
	}
	defer file.Close()

	url, err := h.mediaService.Upload(c.Context(), fileHeader.Filename, fileHeader.Size, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
