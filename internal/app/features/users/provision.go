// internal/app/features/users/provision.go
package users

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bookhaven/bookhaven/internal/app/system/httpjson"
	"github.com/bookhaven/bookhaven/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// provisionRequest is the body of POST /users, sent by the frontend after a
// Firebase login.
type provisionRequest struct {
	FirebaseUID string `json:"firebaseUid" validate:"required"`
	Username    string `json:"username" validate:"required,max=64"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// Provision handles POST /users: return the account for the Firebase
// identity, creating it on first login. Repeating the call with the same
// UID returns the same record and never overwrites username or email.
func (h *Handler) Provision(w http.ResponseWriter, r *http.Request) {
	var req provisionRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.FirebaseUID = strings.TrimSpace(req.FirebaseUID)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.Validate.Struct(req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Provision(ctx, req.FirebaseUID, req.Username, req.Email)
	if err != nil {
		h.respondStoreError(w, "provision user", err)
		return
	}
	httpjson.OK(w, user)
}

// GetByFirebaseUID handles GET /users/firebase/{uid}.
func (h *Handler) GetByFirebaseUID(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByFirebaseUID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("get user by firebase uid failed", zap.String("uid", uid), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.OK(w, user)
}

// validationMessage flattens the first validator failure into the plain
// "<field> is required" style the frontend expects.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		switch f.Field() {
		case "FirebaseUID":
			return "firebaseUid is required"
		case "Username":
			if f.Tag() == "max" {
				return "username is too long"
			}
			return "username is required"
		case "Email":
			return "email is invalid"
		}
	}
	return "invalid request"
}
