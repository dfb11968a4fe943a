// internal/app/store/comments/commentstore.go
package commentstore

import (
	"context"
	"strings"
	"time"

	"github.com/bookhaven/bookhaven/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c        *mongo.Collection
	sanitize *bluemonday.Policy
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:        db.Collection("comments"),
		sanitize: bluemonday.StrictPolicy(),
	}
}

// FindAll returns every comment, oldest first.
func (s *Store) FindAll(ctx context.Context) ([]models.Comment, error) {
	return s.find(ctx, bson.M{})
}

// FindByBookID returns the comments for one book, oldest first.
func (s *Store) FindByBookID(ctx context.Context, bookID string) ([]models.Comment, error) {
	return s.find(ctx, bson.M{"book_id": bookID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Comment, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a new comment and returns it with its assigned id.
// Comment text is user-supplied, so any HTML is stripped before persisting.
func (s *Store) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	c.ID = primitive.NewObjectID()
	c.Text = strings.TrimSpace(s.sanitize.Sanitize(c.Text))
	c.User = strings.TrimSpace(c.User)
	c.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}
