// internal/app/features/users/handler.go
package users

import (
	"errors"
	"net/http"

	bookstore "github.com/bookhaven/bookhaven/internal/app/store/books"
	userstore "github.com/bookhaven/bookhaven/internal/app/store/users"
	"github.com/bookhaven/bookhaven/internal/app/system/httpjson"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves user provisioning, profile, and favorites endpoints.
type Handler struct {
	Users    *userstore.Store
	Books    *bookstore.Store
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Books:    bookstore.New(db),
		Validate: validator.New(),
		Log:      logger,
	}
}

// respondStoreError maps user-store errors onto the HTTP surface:
// validation and conflict failures are the caller's fault (400), a missing
// record is 404, and anything else is an internal error.
func (h *Handler) respondStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, userstore.ErrFirebaseUIDRequired),
		errors.Is(err, userstore.ErrUsernameRequired),
		errors.Is(err, userstore.ErrUsernameTaken):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.NotFound(w)
	default:
		h.Log.Error(op+" failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
	}
}
