package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestNormalizePost_Defaults(t *testing.T) {
	post := NormalizePost(map[string]any{})

	assert.True(t, post.ID.IsZero())
	assert.Equal(t, "", post.Title)
	assert.Equal(t, "", post.Description)
	assert.Equal(t, ANONYMOUS_AUTHOR, post.Author)
	assert.NotEmpty(t, post.Timestamp)
	assert.Equal(t, int64(0), post.Likes)
	assert.NotNil(t, post.Comments)
	assert.Empty(t, post.Comments)
	assert.NotNil(t, post.Tags)
	assert.Empty(t, post.Tags)
	assert.Equal(t, POST_TYPE_TEXT, post.PostType)
	assert.Empty(t, post.PollOptions)
	assert.Nil(t, post.UserVote)
	assert.Nil(t, post.Extra)
}

func TestNormalizePost_WrongTypes(t *testing.T) {
	post := NormalizePost(map[string]any{
		"title":       42,
		"author":      map[string]any{"name": "Alice"},
		"likes":       "many",
		"comments":    "none",
		"tags":        []any{"furniture", 3, "wood"},
		"postType":    "video",
		"pollOptions": []any{map[string]any{"text": 1, "votes": "x"}, "bad"},
		"totalVotes":  true,
	})

	assert.Equal(t, "", post.Title)
	assert.Equal(t, ANONYMOUS_AUTHOR, post.Author)
	assert.Equal(t, int64(0), post.Likes)
	assert.Empty(t, post.Comments)
	assert.Equal(t, []string{"furniture", "wood"}, post.Tags)
	assert.Equal(t, POST_TYPE_TEXT, post.PostType)
	require.Len(t, post.PollOptions, 1)
	assert.Equal(t, PollOption{Text: "", Votes: 0}, post.PollOptions[0])
	assert.Equal(t, int64(0), post.TotalVotes)
}

func TestNormalizePost_FromJSON(t *testing.T) {
	id := bson.NewObjectID()
	data := `{
		"_id": "` + id.Hex() + `",
		"title": "Chair",
		"description": "Wooden",
		"author": "Alice",
		"timestamp": "2025-04-01T10:00:00.000Z",
		"likes": 3,
		"comments": [{"id": "c1", "text": "nice", "timestamp": "2025-04-01T11:00:00.000Z"}],
		"tags": ["furniture"],
		"postType": "poll",
		"pollOptions": [{"text": "yes", "votes": 2}],
		"totalVotes": 2,
		"userVote": 0,
		"location": "Bengaluru"
	}`

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &doc))

	post := NormalizePost(doc)

	assert.Equal(t, id, post.ID)
	assert.Equal(t, "Chair", post.Title)
	assert.Equal(t, "Alice", post.Author)
	assert.Equal(t, int64(3), post.Likes)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, Comment{ID: "c1", Text: "nice", Author: ANONYMOUS_AUTHOR, Timestamp: "2025-04-01T11:00:00.000Z"}, post.Comments[0])
	assert.Equal(t, POST_TYPE_POLL, post.PostType)
	assert.Equal(t, []PollOption{{Text: "yes", Votes: 2}}, post.PollOptions)
	assert.Equal(t, int64(2), post.TotalVotes)
	require.NotNil(t, post.UserVote)
	assert.Equal(t, int64(0), *post.UserVote)
	assert.Equal(t, bson.M{"location": "Bengaluru"}, post.Extra)
}

func TestNormalizePost_FromBSON(t *testing.T) {
	id := bson.NewObjectID()
	post := NormalizePost(bson.M{
		"_id":      id,
		"likes":    int32(7),
		"comments": bson.A{bson.D{{Key: "id", Value: "c1"}, {Key: "text", Value: "hi"}, {Key: "author", Value: "Bob"}}},
		"tags":     bson.A{"garden"},
	})

	assert.Equal(t, id, post.ID)
	assert.Equal(t, int64(7), post.Likes)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "Bob", post.Comments[0].Author)
	assert.Equal(t, []string{"garden"}, post.Tags)
}

func TestResolveAuthor(t *testing.T) {
	assert.Equal(t, "Alice", ResolveAuthor(&Identity{Name: "Alice"}, "Bob"))
	assert.Equal(t, "Bob", ResolveAuthor(&Identity{}, "", "Bob"))
	assert.Equal(t, "Bob", ResolveAuthor(nil, "Bob"))
	assert.Equal(t, ANONYMOUS_AUTHOR, ResolveAuthor(nil, ""))
	assert.Equal(t, ANONYMOUS_AUTHOR, ResolveAuthor(nil))
}

func TestNormalizePost_MissingTimestampUsesIDTime(t *testing.T) {
	created := time.Date(2024, 11, 5, 8, 30, 0, 0, time.UTC)
	id := bson.NewObjectIDFromTimestamp(created)
	doc := map[string]any{"_id": id, "title": "legacy"}

	first := NormalizePost(doc)
	second := NormalizePost(doc)

	assert.Equal(t, "2024-11-05T08:30:00.000Z", first.Timestamp)
	assert.Equal(t, first.Timestamp, second.Timestamp)
}

func TestMistypedFields(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want []string
	}{
		{"well typed", map[string]any{
			"title":       "Chair",
			"description": "Wooden",
			"tags":        []any{"furniture"},
			"postType":    "poll",
			"pollOptions": []any{map[string]any{"text": "yes", "votes": float64(2)}},
			"totalVotes":  float64(2),
			"userVote":    nil,
			"condition":   42,
		}, nil},
		{"server owned fields are not checked", map[string]any{
			"_id": "x", "author": 7, "timestamp": true, "likes": "many", "comments": "none",
		}, nil},
		{"mistyped", map[string]any{
			"title": float64(2024), "postType": "video", "likes": float64(5), "totalVotes": "3",
		}, []string{"title", "postType", "totalVotes"}},
		{"bad elements", map[string]any{
			"tags":        []any{"ok", 1},
			"pollOptions": []any{"yes"},
		}, []string{"tags", "pollOptions"}},
		{"bad poll option fields", map[string]any{
			"pollOptions": []any{map[string]any{"text": 1}},
			"userVote":    "first",
		}, []string{"pollOptions", "userVote"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MistypedFields(tt.doc))
		})
	}
}
