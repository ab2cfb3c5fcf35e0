package handler

import (
	"net/http"
	"strings"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/FantomCode25/Quaternary/internal/model"
	"github.com/FantomCode25/Quaternary/pkg/utils"
	"github.com/gin-gonic/gin"
)

const (
	IDENTITY_CTX_KEY = "identity"
	TOKEN_COOKIE     = "token"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	token := tokenFromRequest(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgAuthenticationRequired))
		return
	}

	identity, err := h.identityFromToken(token)
	if err != nil {
		h.logger.Sugar().Debugf("invalid token: %s", err.Error())
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgAuthenticationRequired))
		return
	}

	c.Set(IDENTITY_CTX_KEY, *identity)

	c.Next()
}

// optionalAuthMiddleware attaches the identity when a valid token is present
// and lets anonymous requests through otherwise.
func (h *Handler) optionalAuthMiddleware(c *gin.Context) {
	token := tokenFromRequest(c)
	if token == "" {
		c.Next()
		return
	}

	identity, err := h.identityFromToken(token)
	if err != nil {
		h.logger.Sugar().Debugf("ignoring invalid token: %s", err.Error())
		c.Next()
		return
	}

	c.Set(IDENTITY_CTX_KEY, *identity)

	c.Next()
}

func (h *Handler) identityFromToken(token string) (*model.Identity, error) {
	claims, err := utils.DecodeJWT(token, h.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	name, _ := claims["name"].(string)

	return &model.Identity{Name: name}, nil
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(TOKEN_COOKIE); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
