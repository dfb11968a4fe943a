// internal/domain/models/book.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a single title in the catalog.
//
// ISBN is stored as a string: real ISBNs carry leading zeros and a possible
// trailing X, so a numeric type would be lossy. Cover and File are opaque
// references (URLs or storage keys) managed by the frontend.
type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Author      string             `bson:"author" json:"author"`
	ISBN        string             `bson:"isbn" json:"isbn"`
	Description string             `bson:"desc" json:"desc"`
	Genre       string             `bson:"genre" json:"genre"`
	Language    string             `bson:"language" json:"language"`
	PubYear     string             `bson:"pub_year" json:"pubYear"`
	Cover       string             `bson:"cover" json:"cover"`
	File        string             `bson:"file" json:"file"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
