package model

type Comment struct {
	ID        string `json:"id" bson:"id"`
	Text      string `json:"text" bson:"text"`
	Author    string `json:"author" bson:"author"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}
