package redisrepo

import "fmt"

const (
	POST_KEY  = "post:%s" // <postID>
	POSTS_KEY = "posts:all"

	// Bumped before every invalidation; readers compare it around a fill.
	POSTS_GENERATION_KEY = "posts:generation"
)

func PostKey(postID string) string {
	return fmt.Sprintf(POST_KEY, postID)
}

func PostsKey() string {
	return POSTS_KEY
}

func PostsGenerationKey() string {
	return POSTS_GENERATION_KEY
}
