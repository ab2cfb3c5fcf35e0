package handler

import (
	"errors"
	"net/http"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/FantomCode25/Quaternary/internal/service"
	"github.com/gin-gonic/gin"
)

// Messages returned to clients.
const (
	msgAuthenticationRequired = "Authentication required"
	msgCommentTextRequired    = "Comment text is required"
	msgPostNotFound           = "Post not found"
	msgInvalidRequestBody     = "Invalid request body"
	msgImageRequired          = "Failed to get file from request"
)

// respondError writes the status matching err. Anything unexpected is
// reported with the generic message only.
func (h *Handler) respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(msgPostNotFound))
	case errors.Is(err, service.ErrEmptyComment):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgCommentTextRequired))
	case errors.Is(err, service.ErrUnknownAction),
		errors.Is(err, service.ErrInvalidPostField),
		errors.Is(err, service.ErrFileMustBeImage),
		errors.Is(err, service.ErrFileMustHaveAValidExtension),
		errors.Is(err, service.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrUploadDisabled):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message))
	}
}
