package mongorepo

import (
	"context"
	"testing"

	"github.com/FantomCode25/Quaternary/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMemoryPost_FindAllSortsByTimestampDesc(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPost()

	for _, ts := range []string{"2025-01-02T00:00:00.000Z", "2025-01-03T00:00:00.000Z", "2025-01-01T00:00:00.000Z"} {
		_, err := repo.Create(ctx, model.Post{Title: ts, Timestamp: ts})
		require.NoError(t, err)
	}

	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "2025-01-03T00:00:00.000Z", posts[0].Timestamp)
	assert.Equal(t, "2025-01-02T00:00:00.000Z", posts[1].Timestamp)
	assert.Equal(t, "2025-01-01T00:00:00.000Z", posts[2].Timestamp)
}

func TestMemoryPost_Likes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPost()

	created, err := repo.Create(ctx, model.Post{Title: "Chair"})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	post, err := repo.IncrLikes(ctx, created.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), post.Likes)

	post, err = repo.DecrLikesAboveZero(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), post.Likes)

	_, err = repo.IncrLikes(ctx, bson.NewObjectID(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPost_PushComment(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPost()

	created, err := repo.Create(ctx, model.Post{Title: "Chair", Comments: []model.Comment{}})
	require.NoError(t, err)

	require.NoError(t, repo.PushComment(ctx, created.ID, model.Comment{ID: "c1", Text: "nice"}))
	assert.ErrorIs(t, repo.PushComment(ctx, bson.NewObjectID(), model.Comment{}), ErrNotFound)

	post, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "nice", post.Comments[0].Text)
}

func TestMemoryPost_FindAllComparesParsedTime(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPost()

	for _, ts := range []string{"2025-01-01T12:00:00+05:30", "2025-01-01T09:00:00.000Z"} {
		_, err := repo.Create(ctx, model.Post{Title: ts, Timestamp: ts})
		require.NoError(t, err)
	}

	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "2025-01-01T09:00:00.000Z", posts[0].Timestamp)
}
