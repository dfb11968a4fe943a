// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP/HTTPS ports,
// TLS, logging level, request limits); AppConfig carries everything
// specific to this service. Values come from environment variables
// (BOOKHAVEN_*), configuration files, or command-line flags, loaded in
// LoadConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// HTTP surface configuration
	APIPrefix   string // Path prefix for the API routes (default: /api)
	AllowOrigin string // CORS Access-Control-Allow-Origin value (default: *)
}
