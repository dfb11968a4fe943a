// internal/app/features/users/favorites.go
package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/bookhaven/bookhaven/internal/app/system/httpjson"
	"github.com/bookhaven/bookhaven/internal/app/system/timeouts"
	"github.com/bookhaven/bookhaven/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ListFavorites handles GET /users/{id}/favbooks: resolve the user's
// favorites list to full book records, in list order. Ids that no longer
// resolve to a book are dropped silently; a favorites entry for a deleted
// book is accepted drift, not an error.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("load user for favorites failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	books, err := h.Books.FindAllByHexIDs(ctx, user.FavBooks)
	if err != nil {
		h.Log.Error("resolve favorites failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.OK(w, books)
}

// AddFavorite handles POST /users/{id}/favbooks/{bookId}. Adding a book
// that is already a favorite is a no-op; the book id is not checked against
// the catalog.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, h.Users.AddFavorite)
}

// RemoveFavorite handles DELETE /users/{id}/favbooks/{bookId}. Removing an
// absent id is a successful no-op.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, h.Users.RemoveFavorite)
}

func (h *Handler) mutateFavorites(w http.ResponseWriter, r *http.Request,
	op func(context.Context, primitive.ObjectID, string) (models.User, error)) {

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w)
		return
	}
	bookID := chi.URLParam(r, "bookId")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := op(ctx, id, bookID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("mutate favorites failed",
			zap.String("id", id.Hex()),
			zap.String("book_id", bookID),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.OK(w, user)
}
