package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PostType string

const (
	POST_TYPE_TEXT  PostType = "text"
	POST_TYPE_IMAGE PostType = "image"
	POST_TYPE_POLL  PostType = "poll"
)

func (t PostType) Valid() bool {
	switch t {
	case POST_TYPE_TEXT, POST_TYPE_IMAGE, POST_TYPE_POLL:
		return true
	}
	return false
}

type PollOption struct {
	Text  string `json:"text" bson:"text"`
	Votes int64  `json:"votes" bson:"votes"`
}

// Post is a document of the posts collection. Fields the schema does not
// know about are kept in Extra and written back verbatim.
type Post struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Image       string        `json:"image" bson:"image,omitempty"`
	Author      string        `json:"author" bson:"author"`
	Timestamp   string        `json:"timestamp" bson:"timestamp"`
	Likes       int64         `json:"likes" bson:"likes"`
	Comments    []Comment     `json:"comments" bson:"comments"`
	Tags        []string      `json:"tags" bson:"tags"`
	PostType    PostType      `json:"postType" bson:"postType,omitempty"`
	PollOptions []PollOption  `json:"pollOptions" bson:"pollOptions,omitempty"`
	TotalVotes  int64         `json:"totalVotes" bson:"totalVotes,omitempty"`
	UserVote    *int64        `json:"userVote" bson:"userVote,omitempty"`
	Extra       bson.M        `json:"-" bson:",inline"`
}

var postFields = []string{
	"_id",
	"title",
	"description",
	"image",
	"author",
	"timestamp",
	"likes",
	"comments",
	"tags",
	"postType",
	"pollOptions",
	"totalVotes",
	"userVote",
}

type postAlias Post

func (p Post) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(postAlias(p))
	if err != nil || len(p.Extra) == 0 {
		return known, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(fields)+len(p.Extra))
	for k, v := range p.Extra {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return json.Marshal(merged)
}

func (p *Post) UnmarshalJSON(data []byte) error {
	var alias postAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, field := range postFields {
		delete(raw, field)
	}

	*p = Post(alias)
	p.Extra = nil
	if len(raw) > 0 {
		p.Extra = bson.M(raw)
	}

	return nil
}

func (p *Post) Clone() *Post {
	clone := *p
	clone.Comments = append([]Comment{}, p.Comments...)
	clone.Tags = append([]string{}, p.Tags...)
	clone.PollOptions = append([]PollOption{}, p.PollOptions...)
	if p.UserVote != nil {
		vote := *p.UserVote
		clone.UserVote = &vote
	}
	if p.Extra != nil {
		clone.Extra = make(bson.M, len(p.Extra))
		for k, v := range p.Extra {
			clone.Extra[k] = v
		}
	}
	return &clone
}
