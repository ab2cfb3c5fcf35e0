package handler

import (
	"net/http"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) healthz(c *gin.Context) {
	if err := h.services.Health.Ping(c.Request.Context()); err != nil {
		h.logger.Sugar().Errorf("health check failed: %s", err.Error())
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("database unavailable"))
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
