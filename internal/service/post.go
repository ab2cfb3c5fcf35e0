package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/FantomCode25/Quaternary/internal/model"
	"github.com/FantomCode25/Quaternary/internal/rabbitmq"
	"github.com/FantomCode25/Quaternary/internal/repository"
	"github.com/FantomCode25/Quaternary/internal/repository/mongorepo"
	"github.com/FantomCode25/Quaternary/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

type postService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	publisher Publisher
	cfg       Config
}

func newPostService(logger *zap.Logger, repo *repository.Repository, publisher Publisher, cfg Config) Post {
	return &postService{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *postService) List(ctx context.Context) ([]*model.Post, error) {
	var (
		generation string
		fillable   bool
	)
	if cache := s.cache(); cache != nil {
		cachedPosts, err := redisrepo.GetMany[model.Post](cache, ctx, redisrepo.PostsKey())
		if err == nil && cachedPosts != nil {
			return cachedPosts, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			s.logger.Sugar().Errorf("failed to get posts from redis: %s", err.Error())
		}
		generation, fillable = s.generation(ctx, cache)
	}

	posts, err := s.repo.Mongo.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts in mongo: %s", err.Error())
		return nil, ErrInternal
	}

	if fillable {
		s.fill(ctx, redisrepo.PostsKey(), posts, generation)
	}

	return posts, nil
}

func (s *postService) Create(ctx context.Context, identity *model.Identity, payload map[string]interface{}) (*model.Post, error) {
	if fields := model.MistypedFields(payload); len(fields) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPostField, strings.Join(fields, ", "))
	}

	payloadAuthor, _ := payload["author"].(string)

	post := model.NormalizePost(payload)
	post.ID = bson.ObjectID{}
	post.Author = model.ResolveAuthor(identity, payloadAuthor)
	post.Timestamp = model.Now()
	post.Likes = 0
	post.Comments = []model.Comment{}

	createdPost, err := s.repo.Mongo.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post by author(%s): %s", post.Author, err.Error())
		return nil, ErrInternal
	}

	s.invalidate(ctx, "")

	s.publish(ctx, rabbitmq.POST_CREATED_QUEUE, dto.MQPostCreatedMsg{
		PostID:    createdPost.ID,
		Author:    createdPost.Author,
		PostTitle: createdPost.Title,
		Tags:      createdPost.Tags,
		CreatedAt: createdPost.Timestamp,
	})

	return createdPost, nil
}

func (s *postService) FindByID(ctx context.Context, id string) (*model.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var (
		generation string
		fillable   bool
	)
	if cache := s.cache(); cache != nil {
		cachedPost, err := redisrepo.Get[model.Post](cache, ctx, redisrepo.PostKey(oid.Hex()))
		if err == nil && cachedPost != nil {
			return cachedPost, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			s.logger.Sugar().Errorf("failed to get post(%s) from redis: %s", oid.Hex(), err.Error())
		}
		generation, fillable = s.generation(ctx, cache)
	}

	post, err := s.repo.Mongo.Post.FindByID(ctx, oid)
	if err != nil {
		return nil, s.storeError(err, "failed to find post(%s) in mongo", oid)
	}

	if fillable {
		s.fill(ctx, redisrepo.PostKey(oid.Hex()), post, generation)
	}

	return post, nil
}

func (s *postService) Like(ctx context.Context, id string) (*model.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.Mongo.Post.IncrLikes(ctx, oid, 1)
	if err != nil {
		return nil, s.storeError(err, "failed to like post(%s)", oid)
	}

	s.invalidate(ctx, oid.Hex())

	return post, nil
}

func (s *postService) Unlike(ctx context.Context, id string) (*model.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var post *model.Post
	if s.cfg.ClampLikes {
		post, err = s.repo.Mongo.Post.DecrLikesAboveZero(ctx, oid)
	} else {
		post, err = s.repo.Mongo.Post.IncrLikes(ctx, oid, -1)
	}
	if err != nil {
		return nil, s.storeError(err, "failed to unlike post(%s)", oid)
	}

	s.invalidate(ctx, oid.Hex())

	return post, nil
}

func (s *postService) cache() redisrepo.Default {
	if s.repo.Redis == nil {
		return nil
	}
	return s.repo.Redis.Default
}

// generation reads the invalidation counter. A missing counter is the empty
// generation; ok is false when the counter cannot be read.
func (s *postService) generation(ctx context.Context, cache redisrepo.Default) (string, bool) {
	generation, err := cache.Get(ctx, redisrepo.PostsGenerationKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", true
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to get cache generation from redis: %s", err.Error())
		return "", false
	}
	return generation, true
}

// fill caches value read under generation. If a write bumped the generation
// meanwhile, the entry may predate that write and is dropped again.
func (s *postService) fill(ctx context.Context, key string, value interface{}, generation string) {
	cache := s.cache()

	if err := cache.SetJSON(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set key(%s) in redis: %s", key, err.Error())
		return
	}

	if current, ok := s.generation(ctx, cache); ok && current == generation {
		return
	}

	if err := cache.Del(ctx, key).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete key(%s) from redis: %s", key, err.Error())
	}
}

// invalidate bumps the generation, then drops the cached list and, when
// postID is set, the cached post.
func (s *postService) invalidate(ctx context.Context, postID string) {
	cache := s.cache()
	if cache == nil {
		return
	}

	if err := cache.Incr(ctx, redisrepo.PostsGenerationKey()).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to bump cache generation in redis: %s", err.Error())
	}

	keys := []string{redisrepo.PostsKey()}
	if postID != "" {
		keys = append(keys, redisrepo.PostKey(postID))
	}

	if err := cache.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete keys %v from redis: %s", keys, err.Error())
	}
}

func (s *postService) publish(ctx context.Context, queue string, msg interface{}) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishJSON(ctx, queue, msg); err != nil {
		s.logger.Sugar().Errorf("failed to publish message to queue(%s): %s", queue, err.Error())
	}
}

// storeError hides store failures behind ErrInternal after logging them.
func (s *postService) storeError(err error, format string, id bson.ObjectID) error {
	if errors.Is(err, mongorepo.ErrNotFound) {
		return ErrNotFound
	}

	s.logger.Sugar().Errorf(format+": %s", id.Hex(), err.Error())
	return ErrInternal
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, ErrInvalidID
	}
	return oid, nil
}
