package handler

import (
	"net/http"
	"strings"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/FantomCode25/Quaternary/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsList(c *gin.Context) {
	posts, err := h.services.Post.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCreate(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgInvalidRequestBody))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), identity, payload)
	if err != nil {
		h.respondError(c, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusOK, createdPost)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsPatch(c *gin.Context) {
	identity := h.getIdentityFromRequest(c)
	postID := strings.TrimSpace(c.Param("postID"))

	var input dto.PatchPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgInvalidRequestBody))
		return
	}

	action, err := service.ParseAction(input, identity)
	if err != nil {
		h.respondError(c, err, "Failed to update post")
		return
	}

	if err := h.services.Post.Apply(c.Request.Context(), postID, action); err != nil {
		h.respondError(c, err, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) postsLike(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	post, err := h.services.Post.Like(c.Request.Context(), postID)
	if err != nil {
		h.respondError(c, err, "Failed to like post")
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{
		ID:    post.ID,
		Likes: post.Likes,
	})
}
