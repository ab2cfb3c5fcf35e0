package dto

import "go.mongodb.org/mongo-driver/v2/bson"

type LikeResponse struct {
	ID    bson.ObjectID `json:"_id"`
	Likes int64         `json:"likes"`
}
