package handler

import (
	"time"

	"github.com/FantomCode25/Quaternary/internal/model"
	"github.com/FantomCode25/Quaternary/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Config struct {
	JWTSecret    []byte
	ClientOrigin string
}

type Handler struct {
	services *service.Service
	logger   *zap.Logger
	cfg      Config
}

func New(services *service.Service, logger *zap.Logger, cfg Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		cfg:      cfg,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), h.requestLogger)

	if h.cfg.ClientOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{h.cfg.ClientOrigin},
			AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	api := r.Group("/api")
	{
		api.GET("/healthz", h.healthz)

		posts := api.Group("/posts")
		{
			posts.GET("", h.postsList)
			posts.POST("", h.optionalAuthMiddleware, h.postsCreate)

			post := posts.Group("/:postID")
			{
				post.GET("", h.postsGetByID)
				post.PATCH("", h.optionalAuthMiddleware, h.postsPatch)
				post.POST("/like", h.postsLike)
				post.POST("/comment", h.authMiddleware, h.commentsCreate)
			}
		}

		api.POST("/upload", h.upload)
		api.POST("/analyze", h.analyze)
	}

	return r
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	c.Next()

	h.logger.Info("request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
	)
}

func (h *Handler) getIdentityFromRequest(c *gin.Context) *model.Identity {
	identityReq, exists := c.Get(IDENTITY_CTX_KEY)
	if !exists {
		return nil
	}

	identity, ok := identityReq.(model.Identity)
	if !ok {
		return nil
	}

	return &identity
}
