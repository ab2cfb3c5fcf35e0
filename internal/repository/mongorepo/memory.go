package mongorepo

import (
	"context"
	"sort"
	"sync"

	"github.com/FantomCode25/Quaternary/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type memoryPostRepo struct {
	mu    sync.Mutex
	posts map[bson.ObjectID]*model.Post
}

func NewMemoryPost() Post {
	return &memoryPostRepo{
		posts: make(map[bson.ObjectID]*model.Post),
	}
}

func (r *memoryPostRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	posts := make([]*model.Post, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post.Clone())
	}

	sort.SliceStable(posts, func(i, j int) bool {
		ti := model.ParseTimestamp(posts[i].Timestamp)
		tj := model.ParseTimestamp(posts[j].Timestamp)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return posts[i].ID.Hex() > posts[j].ID.Hex()
	})

	return posts, nil
}

func (r *memoryPostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = bson.NewObjectID()
	r.posts[post.ID] = post.Clone()

	return post.Clone(), nil
}

func (r *memoryPostRepo) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}

	return post.Clone(), nil
}

func (r *memoryPostRepo) IncrLikes(ctx context.Context, id bson.ObjectID, delta int64) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	post.Likes += delta

	return post.Clone(), nil
}

func (r *memoryPostRepo) DecrLikesAboveZero(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if post.Likes > 0 {
		post.Likes--
	}

	return post.Clone(), nil
}

func (r *memoryPostRepo) PushComment(ctx context.Context, id bson.ObjectID, comment model.Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return ErrNotFound
	}
	post.Comments = append(post.Comments, comment)

	return nil
}
