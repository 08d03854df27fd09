package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the wire shape of a stored blog post.
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}

// PostInput is the JSON payload for post create/update. Date is
// optional free-form text; everything else is required.
type PostInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}

// PostFromDoc maps a raw stored document to its wire shape. A nil
// document maps to nil; a missing category defaults to "general".
func PostFromDoc(doc bson.M) *Post {
	if doc == nil {
		return nil
	}
	p := &Post{
		Title:    asString(doc["title"]),
		Category: asString(doc["category"]),
		Date:     asString(doc["date"]),
		Image:    asString(doc["image"]),
		Excerpt:  asString(doc["excerpt"]),
		Content:  asString(doc["content"]),
	}
	if p.Category == "" {
		p.Category = "general"
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return p
}
