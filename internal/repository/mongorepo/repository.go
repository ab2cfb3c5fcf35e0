package mongorepo

import (
	"context"
	"errors"

	"github.com/FantomCode25/Quaternary/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrNotFound = errors.New("post not found")

type Post interface {
	FindAll(ctx context.Context) ([]*model.Post, error)
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	IncrLikes(ctx context.Context, id bson.ObjectID, delta int64) (*model.Post, error)
	DecrLikesAboveZero(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	PushComment(ctx context.Context, id bson.ObjectID, comment model.Comment) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type MongoRepository struct {
	Post
	Pinger
}

func New(store *Store) *MongoRepository {
	return &MongoRepository{
		Post:   newPostRepo(store),
		Pinger: store,
	}
}

// NewMemory backs the repository with process memory. Used when no MongoDB
// URI is configured and in tests.
func NewMemory() *MongoRepository {
	return &MongoRepository{
		Post:   NewMemoryPost(),
		Pinger: noopPinger{},
	}
}

type noopPinger struct{}

func (noopPinger) Ping(ctx context.Context) error {
	return ctx.Err()
}
