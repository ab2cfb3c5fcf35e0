package service

import (
	"context"
	"testing"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/FantomCode25/Quaternary/internal/model"
	"github.com/FantomCode25/Quaternary/internal/rabbitmq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestAddComment(t *testing.T) {
	env := newTestEnv(t, Config{})
	ctx := context.Background()
	created := env.createPost(t, model.Post{Title: "Chair"})

	comment, err := env.service.Post.AddComment(ctx, created.ID.Hex(), &model.Identity{Name: "Alice"}, "", "  Looks sturdy  ")
	require.NoError(t, err)
	assert.Equal(t, "Looks sturdy", comment.Text)
	assert.Equal(t, "Alice", comment.Author)
	assert.NotEmpty(t, comment.ID)
	assert.NotEmpty(t, comment.Timestamp)

	post, err := env.service.Post.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, *comment, post.Comments[0])

	require.Len(t, env.publisher.msgs, 1)
	assert.Equal(t, rabbitmq.POST_COMMENTED_QUEUE, env.publisher.msgs[0].queue)
}

func TestAddComment_EmptyTextLeavesPostUnchanged(t *testing.T) {
	env := newTestEnv(t, Config{})
	ctx := context.Background()
	created := env.createPost(t, model.Post{Title: "Chair"})

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := env.service.Post.AddComment(ctx, created.ID.Hex(), &model.Identity{Name: "Alice"}, "", text)
		assert.ErrorIs(t, err, ErrEmptyComment)
	}

	post, err := env.repo.Mongo.Post.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, post.Comments)
}

func TestAddComment_NotFound(t *testing.T) {
	env := newTestEnv(t, Config{})

	_, err := env.service.Post.AddComment(context.Background(), bson.NewObjectID().Hex(), nil, "", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseAction(t *testing.T) {
	identity := &model.Identity{Name: "Alice"}

	action, err := ParseAction(dto.PatchPostRequest{Action: "like"}, nil)
	require.NoError(t, err)
	assert.Equal(t, LikeAction{}, action)

	action, err = ParseAction(dto.PatchPostRequest{Action: "unlike"}, nil)
	require.NoError(t, err)
	assert.Equal(t, UnlikeAction{}, action)

	action, err = ParseAction(dto.PatchPostRequest{Action: "addComment", Text: "hi", UserID: "user123"}, identity)
	require.NoError(t, err)
	assert.Equal(t, AddCommentAction{Text: "hi", UserID: "user123", Identity: identity}, action)

	for _, kind := range []string{"", "share", "LIKE", "delete"} {
		_, err := ParseAction(dto.PatchPostRequest{Action: kind}, nil)
		assert.ErrorIs(t, err, ErrUnknownAction, kind)
	}
}

func TestApply(t *testing.T) {
	env := newTestEnv(t, Config{})
	ctx := context.Background()
	created := env.createPost(t, model.Post{Title: "Chair"})
	id := created.ID.Hex()

	require.NoError(t, env.service.Post.Apply(ctx, id, LikeAction{}))
	require.NoError(t, env.service.Post.Apply(ctx, id, LikeAction{}))
	require.NoError(t, env.service.Post.Apply(ctx, id, UnlikeAction{}))
	require.NoError(t, env.service.Post.Apply(ctx, id, AddCommentAction{Text: "nice", UserID: "user123"}))

	assert.ErrorIs(t, env.service.Post.Apply(ctx, id, nil), ErrUnknownAction)
	assert.ErrorIs(t, env.service.Post.Apply(ctx, id, AddCommentAction{Text: " "}), ErrEmptyComment)
	assert.ErrorIs(t, env.service.Post.Apply(ctx, bson.NewObjectID().Hex(), LikeAction{}), ErrNotFound)

	post, err := env.service.Post.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.Likes)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "user123", post.Comments[0].Author)
	assert.Equal(t, "nice", post.Comments[0].Text)
	assert.Nil(t, post.Extra, "no legacy commentList or counter fields")
}
