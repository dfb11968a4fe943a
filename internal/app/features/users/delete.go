// internal/app/features/users/delete.go
package users

import (
	"context"
	"net/http"

	"github.com/bookhaven/bookhaven/internal/app/system/httpjson"
	"github.com/bookhaven/bookhaven/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Delete handles DELETE /users/{id}. Deleting a user does not cascade:
// comments keep their author name and nothing else references the account.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Users.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete user failed", zap.String("id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w)
		return
	}
	httpjson.OK(w, map[string]string{"message": "user deleted"})
}
