// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bookhaven/bookhaven/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrFirebaseUIDRequired is returned when provisioning is attempted without an identity token.
	ErrFirebaseUIDRequired = errors.New("firebaseUid is required")
	// ErrUsernameRequired is returned when a username is missing or blank.
	ErrUsernameRequired = errors.New("username is required")
	// ErrUsernameTaken is returned when the requested username already belongs to another user.
	ErrUsernameTaken = errors.New("username already taken")
)

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	u.EnsureFavBooks()
	return &u, nil
}

// GetByFirebaseUID looks up a user by Firebase UID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByFirebaseUID(ctx context.Context, uid string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"firebase_uid": uid}).Decode(&u); err != nil {
		return nil, err
	}
	u.EnsureFavBooks()
	return &u, nil
}

// Provision returns the account for a Firebase identity, creating it on
// first login. Repeated calls with the same UID are idempotent: the existing
// record is returned untouched, whatever username or email the caller sends.
//
// The existence check and the insert are not atomic. If two first-login
// calls race, the sparse unique index on firebase_uid rejects the loser and
// the record the winner created is returned instead.
func (s *Store) Provision(ctx context.Context, firebaseUID, username, email string) (models.User, error) {
	firebaseUID = strings.TrimSpace(firebaseUID)
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if firebaseUID == "" {
		return models.User{}, ErrFirebaseUIDRequired
	}
	if username == "" {
		return models.User{}, ErrUsernameRequired
	}

	existing, err := s.GetByFirebaseUID(ctx, firebaseUID)
	if err == nil {
		return *existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, err
	}

	taken, err := s.usernameOwnedByOther(ctx, username, primitive.NilObjectID)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	now := time.Now().UTC()
	u := models.User{
		ID:          primitive.NewObjectID(),
		FirebaseUID: firebaseUID,
		Username:    username,
		Email:       email,
		FavBooks:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			// Lost a race. If the duplicate was our own firebase_uid the
			// other writer provisioned the same identity, so return its
			// record to keep the call idempotent; otherwise the username
			// was claimed in the window.
			if winner, lookupErr := s.GetByFirebaseUID(ctx, firebaseUID); lookupErr == nil {
				return *winner, nil
			}
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return u, nil
}

// Rename changes a user's username, enforcing global uniqueness. Renaming a
// user to the name it already holds is not a conflict.
func (s *Store) Rename(ctx context.Context, id primitive.ObjectID, newUsername string) (models.User, error) {
	newUsername = strings.TrimSpace(newUsername)
	if newUsername == "" {
		return models.User{}, ErrUsernameRequired
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	taken, err := s.usernameOwnedByOther(ctx, newUsername, id)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	now := time.Now().UTC()
	_, err = s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"username": newUsername, "updated_at": now}})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}

	u.Username = newUsername
	u.UpdatedAt = now
	return *u, nil
}

// Delete removes a user by ID. Returns the number of documents deleted
// (0 or 1). Comments and favorites references elsewhere are not cleaned up.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// AddFavorite appends a book id to the user's favorites unless it is already
// present. $addToSet keeps the operation idempotent without a read-modify-
// write cycle. Book existence is deliberately not checked; stale ids are
// dropped at resolution time instead.
func (s *Store) AddFavorite(ctx context.Context, id primitive.ObjectID, bookID string) (models.User, error) {
	return s.updateFavorites(ctx, id, bson.M{
		"$addToSet": bson.M{"fav_books": bookID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
}

// RemoveFavorite removes every occurrence of a book id from the user's
// favorites. Removing an id that is not in the list is a successful no-op.
func (s *Store) RemoveFavorite(ctx context.Context, id primitive.ObjectID, bookID string) (models.User, error) {
	return s.updateFavorites(ctx, id, bson.M{
		"$pull": bson.M{"fav_books": bookID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (s *Store) updateFavorites(ctx context.Context, id primitive.ObjectID, update bson.M) (models.User, error) {
	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return models.User{}, err
	}
	u.EnsureFavBooks()
	return u, nil
}

// usernameOwnedByOther reports whether a username belongs to a user other
// than excludeID. Pass primitive.NilObjectID to exclude nobody.
func (s *Store) usernameOwnedByOther(ctx context.Context, username string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"username": username}
	if excludeID != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	err := s.c.FindOne(ctx, filter).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}
