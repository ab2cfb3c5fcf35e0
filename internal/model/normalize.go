package model

import (
	"math"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NormalizePost builds a Post from a loosely typed document, as decoded from
// JSON or BSON. Missing or wrong-typed fields fall back to safe defaults, so
// a malformed record never breaks a reader.
func NormalizePost(doc map[string]any) Post {
	post := Post{
		ID:          asObjectID(doc["_id"]),
		Title:       asString(doc["title"]),
		Description: asString(doc["description"]),
		Image:       asString(doc["image"]),
		Author:      ANONYMOUS_AUTHOR,
		Timestamp:   asString(doc["timestamp"]),
		Comments:    []Comment{},
		Tags:        []string{},
		PostType:    POST_TYPE_TEXT,
		PollOptions: []PollOption{},
	}

	if author, ok := doc["author"].(string); ok {
		post.Author = author
	}
	if post.Timestamp == "" {
		if !post.ID.IsZero() {
			post.Timestamp = FormatTimestamp(post.ID.Timestamp())
		} else {
			post.Timestamp = Now()
		}
	}
	if likes, ok := asInt64(doc["likes"]); ok {
		post.Likes = likes
	}

	for _, item := range asSlice(doc["comments"]) {
		if fields, ok := asMap(item); ok {
			post.Comments = append(post.Comments, NormalizeComment(fields))
		}
	}

	for _, item := range asSlice(doc["tags"]) {
		if tag, ok := item.(string); ok {
			post.Tags = append(post.Tags, tag)
		}
	}

	if postType := PostType(asString(doc["postType"])); postType.Valid() {
		post.PostType = postType
	}

	for _, item := range asSlice(doc["pollOptions"]) {
		fields, ok := asMap(item)
		if !ok {
			continue
		}
		votes, _ := asInt64(fields["votes"])
		post.PollOptions = append(post.PollOptions, PollOption{
			Text:  asString(fields["text"]),
			Votes: votes,
		})
	}

	if totalVotes, ok := asInt64(doc["totalVotes"]); ok {
		post.TotalVotes = totalVotes
	}
	if userVote, ok := asInt64(doc["userVote"]); ok {
		post.UserVote = &userVote
	}

	for k, v := range doc {
		if isPostField(k) {
			continue
		}
		if post.Extra == nil {
			post.Extra = make(bson.M)
		}
		post.Extra[k] = v
	}

	return post
}

func NormalizeComment(doc map[string]any) Comment {
	comment := Comment{
		ID:        asString(doc["id"]),
		Text:      asString(doc["text"]),
		Author:    ANONYMOUS_AUTHOR,
		Timestamp: asString(doc["timestamp"]),
	}

	if author, ok := doc["author"].(string); ok {
		comment.Author = author
	}
	if comment.Timestamp == "" {
		comment.Timestamp = Now()
	}

	return comment
}

// MistypedFields lists the caller-supplied schema fields of doc whose value
// NormalizePost would not keep. Null counts as absent. Fields the server
// stamps itself (_id, author, timestamp, likes, comments) are not checked.
func MistypedFields(doc map[string]any) []string {
	var fields []string
	for _, name := range postFields {
		v, ok := doc[name]
		if !ok || v == nil {
			continue
		}
		if !keepsValue(name, v) {
			fields = append(fields, name)
		}
	}
	return fields
}

func keepsValue(name string, v any) bool {
	switch name {
	case "title", "description", "image":
		_, ok := v.(string)
		return ok
	case "postType":
		postType, ok := v.(string)
		return ok && PostType(postType).Valid()
	case "totalVotes", "userVote":
		_, ok := asInt64(v)
		return ok
	case "tags":
		items, ok := v.([]any)
		if !ok {
			items, ok = v.(bson.A)
		}
		if !ok {
			return false
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	case "pollOptions":
		items, ok := v.([]any)
		if !ok {
			items, ok = v.(bson.A)
		}
		if !ok {
			return false
		}
		for _, item := range items {
			fields, ok := asMap(item)
			if !ok {
				return false
			}
			if text, ok := fields["text"]; ok && text != nil {
				if _, ok := text.(string); !ok {
					return false
				}
			}
			if votes, ok := fields["votes"]; ok && votes != nil {
				if _, ok := asInt64(votes); !ok {
					return false
				}
			}
		}
		return true
	}
	return true
}

func isPostField(name string) bool {
	for _, field := range postFields {
		if field == name {
			return true
		}
	}
	return false
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asObjectID(v any) bson.ObjectID {
	switch id := v.(type) {
	case bson.ObjectID:
		return id
	case string:
		if oid, err := bson.ObjectIDFromHex(id); err == nil {
			return oid
		}
	}
	return bson.ObjectID{}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func asSlice(v any) []any {
	switch items := v.(type) {
	case []any:
		return items
	case bson.A:
		return items
	}
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch fields := v.(type) {
	case map[string]any:
		return fields, true
	case bson.M:
		return fields, true
	case bson.D:
		m := make(map[string]any, len(fields))
		for _, e := range fields {
			m[e.Key] = e.Value
		}
		return m, true
	}
	return nil, false
}
