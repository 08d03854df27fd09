package services

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NIAZpy/fashionfinds/models"
	"github.com/NIAZpy/fashionfinds/store"
)

// ProductService performs product CRUD against the document store.
type ProductService struct {
	store      *store.Store
	collection string
}

func NewProductService(st *store.Store, collection string) *ProductService {
	return &ProductService{store: st, collection: collection}
}

// List returns all products, newest identifier first. An unavailable
// store yields an empty slice, not an error.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	coll := s.store.Collection(s.collection)
	if coll == nil {
		return []*models.Product{}, nil
	}

	cursor, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, fail("list products", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fail("list products", err)
	}

	out := make([]*models.Product, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.ProductFromDoc(doc))
	}
	return out, nil
}

// ListByCategory returns products whose category matches exactly.
func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	coll := s.store.Collection(s.collection)
	if coll == nil {
		return []*models.Product{}, nil
	}

	cursor, err := coll.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, fail("list products by category", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fail("list products by category", err)
	}

	out := make([]*models.Product, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.ProductFromDoc(doc))
	}
	return out, nil
}

// Create validates the six required fields, inserts the product and
// returns the stored document re-read from the store.
func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	rating, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	coll := s.store.Collection(s.collection)
	if coll == nil {
		return nil, ErrStoreUnavailable
	}

	doc := bson.M{
		"name":           in.Name,
		"category":       in.Category,
		"price":          in.Price,
		"rating":         rating,
		"image":          in.Image,
		"affiliate_link": in.AffiliateLink,
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fail("insert product", err)
	}

	var saved bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&saved); err != nil {
		return nil, fail("fetch inserted product", err)
	}
	return models.ProductFromDoc(saved), nil
}

// Update replaces the six product fields of the identified document.
// Rating is coerced to float64 here too, so create and update store
// the same numeric type.
func (s *ProductService) Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	rating, err := s.validate(in)
	if err != nil {
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
		"name":           in.Name,
		"category":       in.Category,
		"price":          in.Price,
		"rating":         rating,
		"image":          in.Image,
		"affiliate_link": in.AffiliateLink,
	}}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fail("update product", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var updated bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated); err != nil {
		return nil, fail("fetch updated product", err)
	}
	return models.ProductFromDoc(updated), nil
}

// Delete removes the identified product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
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
		return fail("delete product", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored products, zero when the store is
// unavailable.
func (s *ProductService) Count(ctx context.Context) (int64, error) {
	coll := s.store.Collection(s.collection)
	if coll == nil {
		return 0, nil
	}
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fail("count products", err)
	}
	return n, nil
}

func (s *ProductService) validate(in models.ProductInput) (float64, error) {
	if in.Name == "" || in.Category == "" || in.Image == "" || in.AffiliateLink == "" ||
		!truthy(in.Price) || !truthy(in.Rating) {
		return 0, &ValidationError{Message: "All fields are required"}
	}
	rating, ok := toFloat64(in.Rating)
	if !ok {
		return 0, &ValidationError{Message: "Rating must be a number"}
	}
	return rating, nil
}

// truthy mirrors the admin UI's contract: zero numbers, empty strings
// and nulls all count as missing.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	}
	return true
}

func toFloat64(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	case int:
		return float64(t), true
	}
	return 0, false
}
