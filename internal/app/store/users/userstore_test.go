package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/bookhaven/bookhaven/internal/app/store/users"
	"github.com/bookhaven/bookhaven/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestProvision_CreatesNewUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Provision(ctx, "fb1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("Provision failed: %v", err)
	}

	if u.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if u.FirebaseUID != "fb1" {
		t.Errorf("firebase uid: got %q, want %q", u.FirebaseUID, "fb1")
	}
	if u.Username != "alice" {
		t.Errorf("username: got %q, want %q", u.Username, "alice")
	}
	if u.FavBooks == nil || len(u.FavBooks) != 0 {
		t.Errorf("expected empty (non-nil) favorites, got %#v", u.FavBooks)
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestProvision_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Provision(ctx, "fb1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("first Provision failed: %v", err)
	}

	// Same identity, different username and email: existing record wins.
	second, err := store.Provision(ctx, "fb1", "completely-different", "other@example.com")
	if err != nil {
		t.Fatalf("second Provision failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected same record id, got %s and %s", first.ID.Hex(), second.ID.Hex())
	}
	if second.Username != "alice" {
		t.Errorf("existing username overwritten: got %q", second.Username)
	}
	if second.Email != "alice@example.com" {
		t.Errorf("existing email overwritten: got %q", second.Email)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly one record, got %d", n)
	}
}

func TestProvision_UsernameConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Provision(ctx, "fb1", "alice", ""); err != nil {
		t.Fatalf("first Provision failed: %v", err)
	}

	_, err := store.Provision(ctx, "fb2", "alice", "")
	if !errors.Is(err, userstore.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestProvision_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tests := []struct {
		name     string
		uid      string
		username string
		want     error
	}{
		{"blank uid", "", "alice", userstore.ErrFirebaseUIDRequired},
		{"whitespace uid", "   ", "alice", userstore.ErrFirebaseUIDRequired},
		{"blank username", "fb1", "", userstore.ErrUsernameRequired},
		{"whitespace username", "fb1", "  \t ", userstore.ErrUsernameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Provision(ctx, tt.uid, tt.username, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRename(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fixtures.CreateUser(ctx, "fb1", "alice")
	bob := fixtures.CreateUser(ctx, "fb2", "bob")

	t.Run("success", func(t *testing.T) {
		renamed, err := store.Rename(ctx, alice.ID, "alice2")
		if err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		if renamed.Username != "alice2" {
			t.Errorf("username: got %q, want %q", renamed.Username, "alice2")
		}
	})

	t.Run("self rename is not a conflict", func(t *testing.T) {
		renamed, err := store.Rename(ctx, alice.ID, "alice2")
		if err != nil {
			t.Fatalf("self-rename failed: %v", err)
		}
		if renamed.Username != "alice2" {
			t.Errorf("username: got %q, want %q", renamed.Username, "alice2")
		}
	})

	t.Run("conflict with other user", func(t *testing.T) {
		_, err := store.Rename(ctx, alice.ID, bob.Username)
		if !errors.Is(err, userstore.ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}

		// Alice's record must be unchanged after the failed rename.
		reloaded, err := store.GetByID(ctx, alice.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if reloaded.Username != "alice2" {
			t.Errorf("record changed by failed rename: got %q", reloaded.Username)
		}
	})

	t.Run("blank username", func(t *testing.T) {
		_, err := store.Rename(ctx, alice.ID, "   ")
		if !errors.Is(err, userstore.ErrUsernameRequired) {
			t.Errorf("expected ErrUsernameRequired, got %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := store.Rename(ctx, primitive.NewObjectID(), "whoever")
		if !errors.Is(err, mongo.ErrNoDocuments) {
			t.Errorf("expected ErrNoDocuments, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "fb1", "alice")

	deleted, err := store.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted count: got %d, want 1", deleted)
	}

	deleted, err = store.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted count on absent record: got %d, want 0", deleted)
	}
}

func TestAddFavorite_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "fb1", "alice")
	bookID := primitive.NewObjectID().Hex()

	if _, err := store.AddFavorite(ctx, u.ID, bookID); err != nil {
		t.Fatalf("first AddFavorite failed: %v", err)
	}
	after, err := store.AddFavorite(ctx, u.ID, bookID)
	if err != nil {
		t.Fatalf("second AddFavorite failed: %v", err)
	}

	count := 0
	for _, id := range after.FavBooks {
		if id == bookID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected book exactly once in favorites, got %d occurrences (%v)", count, after.FavBooks)
	}
}

func TestAddFavorite_PreservesOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "fb1", "alice")
	first := primitive.NewObjectID().Hex()
	second := primitive.NewObjectID().Hex()

	if _, err := store.AddFavorite(ctx, u.ID, first); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	after, err := store.AddFavorite(ctx, u.ID, second)
	if err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	if len(after.FavBooks) != 2 || after.FavBooks[0] != first || after.FavBooks[1] != second {
		t.Errorf("favorites order: got %v, want [%s %s]", after.FavBooks, first, second)
	}
}

func TestRemoveFavorite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "fb1", "alice")
	bookID := primitive.NewObjectID().Hex()

	if _, err := store.AddFavorite(ctx, u.ID, bookID); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	after, err := store.RemoveFavorite(ctx, u.ID, bookID)
	if err != nil {
		t.Fatalf("RemoveFavorite failed: %v", err)
	}
	if len(after.FavBooks) != 0 {
		t.Errorf("expected empty favorites, got %v", after.FavBooks)
	}

	// Removing an absent id is a successful no-op.
	after, err = store.RemoveFavorite(ctx, u.ID, "nonexistent")
	if err != nil {
		t.Fatalf("RemoveFavorite of absent id failed: %v", err)
	}
	if len(after.FavBooks) != 0 {
		t.Errorf("expected favorites unchanged, got %v", after.FavBooks)
	}
}

func TestFavorites_MissingUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.AddFavorite(ctx, primitive.NewObjectID(), "b1"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("AddFavorite: expected ErrNoDocuments, got %v", err)
	}
	if _, err := store.RemoveFavorite(ctx, primitive.NewObjectID(), "b1"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("RemoveFavorite: expected ErrNoDocuments, got %v", err)
	}
}
