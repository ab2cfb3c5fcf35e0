package client

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/FantomCode25/Quaternary/internal/dto"
	"github.com/FantomCode25/Quaternary/internal/model"
	"go.uber.org/zap"
)

const (
	SORT_LATEST  = "latest"
	SORT_POPULAR = "popular"
)

type API interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	CreatePost(ctx context.Context, payload map[string]any) (*model.Post, error)
	LikePost(ctx context.Context, id string) (int64, error)
	PatchPost(ctx context.Context, id string, req dto.PatchPostRequest) error
	AddComment(ctx context.Context, id string, text string) (*model.Comment, error)
}

type Query struct {
	Search string
	Tags   []string
	// Sort is SORT_LATEST or SORT_POPULAR. Anything else sorts by latest.
	Sort string
}

// Feed mirrors the server's post list. Local state only changes after the
// server accepts a mutation.
type Feed struct {
	api    API
	logger *zap.Logger

	mu     sync.RWMutex
	posts  []model.Post
	loaded bool
	stale  bool
}

// NewFeed builds an empty feed. A nil logger discards output.
func NewFeed(api API, logger *zap.Logger) *Feed {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Feed{
		api:    api,
		logger: logger,
	}
}

// Refresh replaces local state with the server's list. On failure the
// previous state is kept.
func (f *Feed) Refresh(ctx context.Context) error {
	posts, err := f.api.ListPosts(ctx)
	if err != nil {
		f.logger.Sugar().Errorf("failed to fetch posts: %s", err.Error())
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.posts = posts
	f.loaded = true
	f.stale = false
	return nil
}

// Sync refreshes only when the feed has never loaded or was marked stale.
func (f *Feed) Sync(ctx context.Context) error {
	f.mu.RLock()
	needed := !f.loaded || f.stale
	f.mu.RUnlock()

	if !needed {
		return nil
	}
	return f.Refresh(ctx)
}

func (f *Feed) Stale() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.stale
}

func (f *Feed) Posts() []model.Post {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return clonePosts(f.posts)
}

// Tags returns every distinct tag in the feed, sorted.
func (f *Feed) Tags() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	seen := make(map[string]struct{})
	tags := []string{}
	for _, post := range f.posts {
		for _, tag := range post.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

func (f *Feed) View(q Query) []model.Post {
	f.mu.RLock()
	posts := clonePosts(f.posts)
	f.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(q.Search))

	view := make([]model.Post, 0, len(posts))
	for _, post := range posts {
		if search != "" &&
			!strings.Contains(strings.ToLower(post.Title), search) &&
			!strings.Contains(strings.ToLower(post.Description), search) {
			continue
		}
		if len(q.Tags) > 0 && !hasAnyTag(post.Tags, q.Tags) {
			continue
		}
		view = append(view, post)
	}

	if q.Sort == SORT_POPULAR {
		sort.SliceStable(view, func(i, j int) bool {
			if view[i].Likes != view[j].Likes {
				return view[i].Likes > view[j].Likes
			}
			return newer(view[i], view[j])
		})
	} else {
		sort.SliceStable(view, func(i, j int) bool {
			return newer(view[i], view[j])
		})
	}

	return view
}

func (f *Feed) CreatePost(ctx context.Context, payload map[string]any) (*model.Post, error) {
	post, err := f.api.CreatePost(ctx, payload)
	if err != nil {
		f.logger.Sugar().Errorf("failed to create post: %s", err.Error())
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.posts = append([]model.Post{*post.Clone()}, f.posts...)
	return post, nil
}

// LikePost stores the count the server returned, not a local increment.
func (f *Feed) LikePost(ctx context.Context, id string) (int64, error) {
	likes, err := f.api.LikePost(ctx, id)
	if err != nil {
		f.logger.Sugar().Errorf("failed to like post(%s): %s", id, err.Error())
		return 0, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if i := f.indexOf(id); i >= 0 {
		f.posts[i].Likes = likes
	} else {
		f.stale = true
	}
	return likes, nil
}

// UnlikePost applies the decrement locally. The server does not return a
// count for it, so the feed is marked stale until the next Sync.
func (f *Feed) UnlikePost(ctx context.Context, id string) error {
	if err := f.api.PatchPost(ctx, id, dto.PatchPostRequest{Action: "unlike"}); err != nil {
		f.logger.Sugar().Errorf("failed to unlike post(%s): %s", id, err.Error())
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if i := f.indexOf(id); i >= 0 {
		f.posts[i].Likes--
	}
	f.stale = true
	return nil
}

func (f *Feed) Comment(ctx context.Context, id string, text string) (*model.Comment, error) {
	comment, err := f.api.AddComment(ctx, id, text)
	if err != nil {
		f.logger.Sugar().Errorf("failed to comment on post(%s): %s", id, err.Error())
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if i := f.indexOf(id); i >= 0 {
		f.posts[i].Comments = append(f.posts[i].Comments, *comment)
	} else {
		f.stale = true
	}
	return comment, nil
}

func (f *Feed) indexOf(id string) int {
	for i, post := range f.posts {
		if post.ID.Hex() == id {
			return i
		}
	}
	return -1
}

// newer compares parsed times, so offsets and precision in stored
// timestamps do not affect the order.
func newer(a model.Post, b model.Post) bool {
	return model.ParseTimestamp(a.Timestamp).After(model.ParseTimestamp(b.Timestamp))
}

func hasAnyTag(postTags []string, selected []string) bool {
	for _, want := range selected {
		for _, tag := range postTags {
			if tag == want {
				return true
			}
		}
	}
	return false
}

func clonePosts(posts []model.Post) []model.Post {
	cloned := make([]model.Post, 0, len(posts))
	for i := range posts {
		cloned = append(cloned, *posts[i].Clone())
	}
	return cloned
}
