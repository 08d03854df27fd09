package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the wire shape of a stored product. The identifier is the
// hex form of the store's ObjectID; price is echoed exactly as stored,
// with no currency normalization.
type Product struct {
	ID            string      `json:"_id"`
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	Price         interface{} `json:"price"`
	Rating        float64     `json:"rating"`
	Image         string      `json:"image"`
	AffiliateLink string      `json:"affiliate_link"`
}

// ProductInput is the JSON payload for product create/update. Price and
// rating are untyped so clients may send numbers or numeric strings;
// ImageBase64 optionally carries an inline image to upload.
type ProductInput struct {
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	Price         interface{} `json:"price"`
	Rating        interface{} `json:"rating"`
	Image         string      `json:"image"`
	AffiliateLink string      `json:"affiliate_link"`
	ImageBase64   string      `json:"image_base64,omitempty"`
}

// ProductFromDoc maps a raw stored document to its wire shape. A nil
// document maps to nil; missing keys default to zero values.
func ProductFromDoc(doc bson.M) *Product {
	if doc == nil {
		return nil
	}
	p := &Product{
		Name:          asString(doc["name"]),
		Category:      asString(doc["category"]),
		Price:         doc["price"],
		Rating:        asFloat(doc["rating"]),
		Image:         asString(doc["image"]),
		AffiliateLink: asString(doc["affiliate_link"]),
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return p
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
