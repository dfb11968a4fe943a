package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/bookhaven/bookhaven/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateBook inserts a test book with the given title and author.
// Returns the created book with its generated ID.
func (f *Fixtures) CreateBook(ctx context.Context, title, author string) models.Book {
	f.t.Helper()

	book := models.Book{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Author:    author,
		ISBN:      "9780000000000",
		Genre:     "Fiction",
		Language:  "en",
		PubYear:   "2001",
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("books").InsertOne(ctx, book); err != nil {
		f.t.Fatalf("failed to create test book: %v", err)
	}
	return book
}

// CreateUser inserts a test user with the given identity fields.
// Returns the created user with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, firebaseUID, username string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:          primitive.NewObjectID(),
		FirebaseUID: firebaseUID,
		Username:    username,
		FavBooks:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateComment inserts a test comment for a book.
func (f *Fixtures) CreateComment(ctx context.Context, bookID, text, user string) models.Comment {
	f.t.Helper()

	c := models.Comment{
		ID:        primitive.NewObjectID(),
		BookID:    bookID,
		Text:      text,
		User:      user,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("comments").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	return c
}
