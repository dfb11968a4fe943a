// internal/app/features/users/rename.go
package users

import (
	"context"
	"net/http"
	"strings"

	"github.com/bookhaven/bookhaven/internal/app/system/httpjson"
	"github.com/bookhaven/bookhaven/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type renameRequest struct {
	Username string `json:"username" validate:"required,max=64"`
}

// Rename handles PUT /users/{id}: change the username, enforcing global
// uniqueness. Renaming a user to the name it already holds succeeds.
func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w)
		return
	}

	var req renameRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := h.Validate.Struct(req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "username cannot be empty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Rename(ctx, id, req.Username)
	if err != nil {
		h.respondStoreError(w, "rename user", err)
		return
	}
	httpjson.OK(w, user)
}
