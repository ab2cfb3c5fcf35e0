package mongorepo

import (
	"context"
	"errors"

	"github.com/FantomCode25/Quaternary/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type postRepo struct {
	coll *mongo.Collection
}

func newPostRepo(store *Store) Post {
	return &postRepo{
		coll: store.Posts(),
	}
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []*model.Post{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}

		post := model.NormalizePost(doc)
		posts = append(posts, &post)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.ID = bson.ObjectID{}

	result, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, errors.New("unexpected inserted id type")
	}
	post.ID = id

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		return nil, notFoundOr(err)
	}

	post := model.NormalizePost(doc)
	return &post, nil
}

func (r *postRepo) IncrLikes(ctx context.Context, id bson.ObjectID, delta int64) (*model.Post, error) {
	return r.findOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "likes", Value: delta}}}},
	)
}

func (r *postRepo) DecrLikesAboveZero(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	post, err := r.findOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "likes", Value: bson.D{{Key: "$gt", Value: 0}}}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "likes", Value: -1}}}},
	)
	if errors.Is(err, ErrNotFound) {
		// either missing or already at zero
		return r.FindByID(ctx, id)
	}

	return post, err
}

func (r *postRepo) PushComment(ctx context.Context, id bson.ObjectID, comment model.Comment) error {
	result, err := r.coll.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "comments", Value: comment}}}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *postRepo) findOneAndUpdate(ctx context.Context, filter bson.D, update bson.D) (*model.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bson.M
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, notFoundOr(err)
	}

	post := model.NormalizePost(doc)
	return &post, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
