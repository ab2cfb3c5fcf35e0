package service

import (
	"context"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/FantomCode25/Quaternary/internal/model"
)

const (
	ACTION_LIKE        = "like"
	ACTION_UNLIKE      = "unlike"
	ACTION_ADD_COMMENT = "addComment"
)

// Action is a post mutation requested through PATCH. The set of variants is
// closed: LikeAction, UnlikeAction and AddCommentAction.
type Action interface {
	action()
}

type LikeAction struct{}

type UnlikeAction struct{}

type AddCommentAction struct {
	Text     string
	UserID   string
	Identity *model.Identity
}

func (LikeAction) action()       {}
func (UnlikeAction) action()     {}
func (AddCommentAction) action() {}

func ParseAction(input dto.PatchPostRequest, identity *model.Identity) (Action, error) {
	switch input.Action {
	case ACTION_LIKE:
		return LikeAction{}, nil
	case ACTION_UNLIKE:
		return UnlikeAction{}, nil
	case ACTION_ADD_COMMENT:
		return AddCommentAction{
			Text:     input.Text,
			UserID:   input.UserID,
			Identity: identity,
		}, nil
	default:
		return nil, ErrUnknownAction
	}
}

func (s *postService) Apply(ctx context.Context, id string, action Action) error {
	switch a := action.(type) {
	case LikeAction:
		_, err := s.Like(ctx, id)
		return err
	case UnlikeAction:
		_, err := s.Unlike(ctx, id)
		return err
	case AddCommentAction:
		_, err := s.AddComment(ctx, id, a.Identity, a.UserID, a.Text)
		return err
	default:
		return ErrUnknownAction
	}
}
