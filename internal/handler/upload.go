package handler

import (
	"io"
	"net/http"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) upload(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgImageRequired))
		return
	}
	defer file.Close()

	url, err := h.services.Upload.UploadImage(c.Request.Context(), file, fileHeader)
	if err != nil {
		h.respondError(c, err, "Failed to upload image")
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Message: "File uploaded successfully",
		URL:     url,
	})
}

func (h *Handler) analyze(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgImageRequired))
		return
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, file)
	if err != nil {
		h.logger.Sugar().Errorf("failed to read image(%s): %s", fileHeader.Filename, err.Error())
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to read file"))
		return
	}

	h.logger.Sugar().Infof("Received image: %s (%d bytes)", fileHeader.Filename, size)

	c.JSON(http.StatusOK, dto.AnalyzeResponse{
		Message: "Image received for analysis",
		Details: dto.AnalyzeDetails{
			Filename: fileHeader.Filename,
			Size:     int(size),
		},
	})
}
