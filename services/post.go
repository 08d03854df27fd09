package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NIAZpy/fashionfinds/models"
	"github.com/NIAZpy/fashionfinds/store"
)

// PostService performs blog post CRUD against the document store. Same
// shape as ProductService, but over five required fields plus an
// optional date; no numeric coercion anywhere.
type PostService struct {
	store      *store.Store
	collection string
}

func NewPostService(st *store.Store, collection string) *PostService {
	return &PostService{store: st, collection: collection}
}

// List returns all posts, newest identifier first. An unavailable store
// yields an empty slice, not an error.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	coll := s.store.Collection(s.collection)
	if coll == nil {
		return []*models.Post{}, nil
	}

	cursor, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, fail("list posts", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fail("list posts", err)
	}

	out := make([]*models.Post, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.PostFromDoc(doc))
	}
	return out, nil
}

// Get returns a single post by identifier.
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	coll := s.store.Collection(s.collection)
	if coll == nil {
		return nil, ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fail("fetch post", err)
	}
	return models.PostFromDoc(doc), nil
}

// Create validates the five required fields, inserts the post and
// returns the stored document re-read from the store.
func (s *PostService) Create(ctx context.Context, in models.PostInput) (*models.Post, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	coll := s.store.Collection(s.collection)
	if coll == nil {
		return nil, ErrStoreUnavailable
	}

	doc := bson.M{
		"title":    in.Title,
		"category": in.Category,
		"date":     in.Date,
		"image":    in.Image,
		"excerpt":  in.Excerpt,
		"content":  in.Content,
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fail("insert post", err)
	}

	var saved bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&saved); err != nil {
		return nil, fail("fetch inserted post", err)
	}
	return models.PostFromDoc(saved), nil
}

// Update replaces the post fields of the identified document.
func (s *PostService) Update(ctx context.Context, id string, in models.PostInput) (*models.Post, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	coll := s.store.Collection(s.collection)
	if coll == nil {
		return nil, ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"title":    in.Title,
		"category": in.Category,
		"date":     in.Date,
		"image":    in.Image,
		"excerpt":  in.Excerpt,
		"content":  in.Content,
	}}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fail("update post", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var updated bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated); err != nil {
		return nil, fail("fetch updated post", err)
	}
	return models.PostFromDoc(updated), nil
}

// Delete removes the identified post.
func (s *PostService) Delete(ctx context.Context, id string) error {
	coll := s.store.Collection(s.collection)
	if coll == nil {
		return ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fail("delete post", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored posts, zero when the store is
// unavailable.
func (s *PostService) Count(ctx context.Context) (int64, error) {
	coll := s.store.Collection(s.collection)
	if coll == nil {
		return 0, nil
	}
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fail("count posts", err)
	}
	return n, nil
}

func (s *PostService) validate(in models.PostInput) error {
	if in.Title == "" || in.Category == "" || in.Image == "" ||
		in.Excerpt == "" || in.Content == "" {
		return &ValidationError{Message: "All fields are required"}
	}
	return nil
}
