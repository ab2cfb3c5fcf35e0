package service

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/FantomCode25/Quaternary/internal/model"
	"github.com/FantomCode25/Quaternary/internal/repository"
	"go.uber.org/zap"
)

const (
	DEFAULT_CACHE_TTL       = time.Minute
	DEFAULT_MAX_UPLOAD_SIZE = 10 << 20
)

type Config struct {
	// ClampLikes keeps unlike from taking a counter below zero.
	ClampLikes    bool
	CacheTTL      time.Duration
	MaxUploadSize int64
}

type Publisher interface {
	PublishJSON(ctx context.Context, queue string, v interface{}) error
}

type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// Post is the only entry point for reading and mutating posts; every route
// that likes or comments goes through it.
type Post interface {
	List(ctx context.Context) ([]*model.Post, error)
	Create(ctx context.Context, identity *model.Identity, payload map[string]interface{}) (*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	Like(ctx context.Context, id string) (*model.Post, error)
	Unlike(ctx context.Context, id string) (*model.Post, error)
	AddComment(ctx context.Context, id string, identity *model.Identity, fallbackAuthor string, text string) (*model.Comment, error)
	Apply(ctx context.Context, id string, action Action) error
}

type Upload interface {
	UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type Health interface {
	Ping(ctx context.Context) error
}

type Service struct {
	Post
	Upload
	Health
}

func New(logger *zap.Logger, repo *repository.Repository, publisher Publisher, uploader Uploader, cfg Config) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DEFAULT_CACHE_TTL
	}
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = DEFAULT_MAX_UPLOAD_SIZE
	}

	return &Service{
		Post:   newPostService(logger, repo, publisher, cfg),
		Upload: newUploadService(logger, uploader, cfg),
		Health: repo.Mongo.Pinger,
	}
}
