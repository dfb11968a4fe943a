// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account provisioned from a Firebase login.
//
// NOTE:
//   - FirebaseUID is unique when present but may be absent; the index on it
//     is sparse so that multiple records without a UID do not collide.
//   - FavBooks holds hex Book ids in insertion order. The user store keeps
//     it duplicate-free; nothing repairs duplicates written out of band.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirebaseUID string             `bson:"firebase_uid,omitempty" json:"firebaseUid,omitempty"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	FavBooks    []string           `bson:"fav_books" json:"favBooks"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EnsureFavBooks returns the favorites list, never nil, so the field always
// serializes as [] rather than null.
func (u *User) EnsureFavBooks() []string {
	if u.FavBooks == nil {
		u.FavBooks = []string{}
	}
	return u.FavBooks
}
