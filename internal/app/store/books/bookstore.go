// internal/app/store/books/bookstore.go
package bookstore

import (
	"context"
	"time"

	"github.com/bookhaven/bookhaven/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("books")}
}

// FindAll returns every book, oldest first.
func (s *Store) FindAll(ctx context.Context) ([]models.Book, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	books := []models.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetByID loads a book by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var b models.Book
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// FindAllByHexIDs resolves a list of hex ObjectIDs to books, preserving the
// order of ids. Ids that are malformed or no longer resolve are skipped, so
// a favorites list referencing a deleted book simply omits it.
func (s *Store) FindAllByHexIDs(ctx context.Context, hexIDs []string) ([]models.Book, error) {
	oids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		oid, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []models.Book{}, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	var found []models.Book
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}

	// $in gives no ordering guarantee; re-order to match the input list.
	byID := make(map[string]models.Book, len(found))
	for _, b := range found {
		byID[b.ID.Hex()] = b
	}
	books := make([]models.Book, 0, len(found))
	for _, h := range hexIDs {
		if b, ok := byID[h]; ok {
			books = append(books, b)
		}
	}
	return books, nil
}

// Create inserts a new book and returns it with its assigned id.
func (s *Store) Create(ctx context.Context, b models.Book) (models.Book, error) {
	b.ID = primitive.NewObjectID()
	b.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Book{}, err
	}
	return b, nil
}
