package service

import (
	"context"
	"strings"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/FantomCode25/Quaternary/internal/model"
	"github.com/FantomCode25/Quaternary/internal/rabbitmq"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (s *postService) AddComment(ctx context.Context, id string, identity *model.Identity, fallbackAuthor string, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		ID:        bson.NewObjectID().Hex(),
		Text:      text,
		Author:    model.ResolveAuthor(identity, fallbackAuthor),
		Timestamp: model.Now(),
	}

	if err := s.repo.Mongo.Post.PushComment(ctx, oid, comment); err != nil {
		return nil, s.storeError(err, "failed to add comment to post(%s)", oid)
	}

	s.invalidate(ctx, oid.Hex())

	s.publish(ctx, rabbitmq.POST_COMMENTED_QUEUE, dto.MQPostCommentedMsg{
		PostID:    oid,
		CommentID: comment.ID,
		Author:    comment.Author,
		CreatedAt: comment.Timestamp,
	})

	return &comment, nil
}
