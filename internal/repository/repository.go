package repository

import (
	"github.com/FantomCode25/Quaternary/internal/repository/mongorepo"
	"github.com/FantomCode25/Quaternary/internal/repository/redisrepo"
)

// Repository groups the store-specific repositories. Redis is optional; a nil
// Redis disables caching.
type Repository struct {
	Mongo *mongorepo.MongoRepository
	Redis *redisrepo.RedisRepository
}

func New(mongo *mongorepo.MongoRepository, redis *redisrepo.RedisRepository) *Repository {
	return &Repository{
		Mongo: mongo,
		Redis: redis,
	}
}
