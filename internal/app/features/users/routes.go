// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the user endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Provision) // mounted under /users
	r.Get("/firebase/{uid}", h.GetByFirebaseUID)
	r.Put("/{id}", h.Rename)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/favbooks", h.ListFavorites)
	r.Post("/{id}/favbooks/{bookId}", h.AddFavorite)
	r.Delete("/{id}/favbooks/{bookId}", h.RemoveFavorite)
	return r
}
