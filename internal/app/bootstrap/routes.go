// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	booksfeature "github.com/bookhaven/bookhaven/internal/app/features/books"
	commentsfeature "github.com/bookhaven/bookhaven/internal/app/features/comments"
	healthfeature "github.com/bookhaven/bookhaven/internal/app/features/health"
	usersfeature "github.com/bookhaven/bookhaven/internal/app/features/users"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, and schema setup
// have completed. The frontend is a separate origin, so CORS is applied
// router-wide; the API features mount under the configured prefix.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{appCfg.AllowOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// JSON API
	booksHandler := booksfeature.NewHandler(deps.MongoDatabase, logger)
	commentsHandler := commentsfeature.NewHandler(deps.MongoDatabase, logger)
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)

	r.Route(appCfg.APIPrefix, func(api chi.Router) {
		api.Mount("/books", booksfeature.Routes(booksHandler))
		api.Mount("/coms", commentsfeature.Routes(commentsHandler))
		api.Mount("/users", usersfeature.Routes(usersHandler))
	})

	return r, nil
}
