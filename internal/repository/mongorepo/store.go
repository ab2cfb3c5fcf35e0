package mongorepo

import (
	"context"
	"sync"

	"github.com/FantomCode25/Quaternary/internal/config"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	DEFAULT_DATABASE = "3rvision"
	POSTS_COLLECTION = "posts"
)

// Store owns the process-wide MongoDB client. Create it once with Connect
// and hand it to repositories; Close releases the pool on shutdown.
type Store struct {
	client    *mongo.Client
	db        *mongo.Database
	closeOnce sync.Once
	closeErr  error
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	database := cfg.Database
	if database == "" {
		database = DEFAULT_DATABASE
	}

	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (s *Store) Posts() *mongo.Collection {
	return s.db.Collection(POSTS_COLLECTION)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		s.closeErr = s.client.Disconnect(ctx)
	})
	return s.closeErr
}
