package handler

import (
	"net/http"
	"strings"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)
	postID := strings.TrimSpace(c.Param("postID"))

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgCommentTextRequired))
		return
	}

	comment, err := h.services.Post.AddComment(c.Request.Context(), postID, identity, "", input.Text)
	if err != nil {
		h.respondError(c, err, "Failed to post comment")
		return
	}

	c.JSON(http.StatusOK, comment)
}
