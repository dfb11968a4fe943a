// internal/app/features/comments/handler.go
package comments

import (
	"context"
	"net/http"
	"strings"

	commentstore "github.com/bookhaven/bookhaven/internal/app/store/comments"
	"github.com/bookhaven/bookhaven/internal/app/system/httpjson"
	"github.com/bookhaven/bookhaven/internal/app/system/timeouts"
	"github.com/bookhaven/bookhaven/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the comment endpoints.
type Handler struct {
	Comments *commentstore.Store
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Comments: commentstore.New(db),
		Log:      logger,
	}
}

// List handles GET /coms.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comments, err := h.Comments.FindAll(ctx)
	if err != nil {
		h.Log.Error("list comments failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list comments")
		return
	}
	httpjson.OK(w, comments)
}

// ListByBook handles GET /coms/book/{bookid}. An unknown book id yields an
// empty list, not a 404; the book itself is not consulted.
func (h *Handler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookid")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comments, err := h.Comments.FindByBookID(ctx, bookID)
	if err != nil {
		h.Log.Error("list comments by book failed", zap.String("book_id", bookID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list comments")
		return
	}
	httpjson.OK(w, comments)
}

// Create handles POST /coms.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Comment
	if err := httpjson.Decode(r, &c); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(c.BookID) == "" {
		httpjson.Error(w, http.StatusBadRequest, "bookId is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Comments.Create(ctx, c)
	if err != nil {
		h.Log.Error("create comment failed", zap.String("book_id", c.BookID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create comment")
		return
	}
	httpjson.OK(w, created)
}
