package dto

import "go.mongodb.org/mongo-driver/v2/bson"

type MQPostCreatedMsg struct {
	PostID    bson.ObjectID `json:"post_id"`
	Author    string        `json:"author"`
	PostTitle string        `json:"post_title"`
	Tags      []string      `json:"tags"`
	CreatedAt string        `json:"created_at"`
}

type MQPostCommentedMsg struct {
	PostID    bson.ObjectID `json:"post_id"`
	CommentID string        `json:"comment_id"`
	Author    string        `json:"author"`
	CreatedAt string        `json:"created_at"`
}
