// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a reader comment attached to a book.
//
// BookID is the hex form of the book's ObjectID. It is not referentially
// checked; comments for deleted books remain queryable by id.
type Comment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookID string             `bson:"book_id" json:"bookId"`
	Text   string             `bson:"text" json:"text"`
	User   string             `bson:"user" json:"user"` // display name of the author

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
