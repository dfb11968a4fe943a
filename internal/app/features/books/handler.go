// internal/app/features/books/handler.go
package books

import (
	"context"
	"errors"
	"net/http"

	bookstore "github.com/bookhaven/bookhaven/internal/app/store/books"
	"github.com/bookhaven/bookhaven/internal/app/system/httpjson"
	"github.com/bookhaven/bookhaven/internal/app/system/timeouts"
	"github.com/bookhaven/bookhaven/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the book catalog endpoints.
type Handler struct {
	Books *bookstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Books: bookstore.New(db),
		Log:   logger,
	}
}

// List handles GET /books.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	books, err := h.Books.FindAll(ctx)
	if err != nil {
		h.Log.Error("list books failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list books")
		return
	}
	httpjson.OK(w, books)
}

// Get handles GET /books/{id}. A malformed id is indistinguishable from a
// missing book as far as the caller is concerned, so both return 404.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	book, err := h.Books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("get book failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load book")
		return
	}
	httpjson.OK(w, book)
}

// Create handles POST /books. The store assigns the id; any id in the
// request body is ignored.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := httpjson.Decode(r, &book); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Books.Create(ctx, book)
	if err != nil {
		h.Log.Error("create book failed", zap.String("title", book.Title), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create book")
		return
	}
	httpjson.OK(w, created)
}
