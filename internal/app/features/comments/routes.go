// internal/app/features/comments/routes.go
package comments

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the comment endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)                 // mounted under /coms
	r.Post("/", h.Create)
	r.Get("/book/{bookid}", h.ListByBook)
	return r
}
