// internal/app/features/books/routes.go
package books

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the book endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)       // mounted under /books
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	return r
}
