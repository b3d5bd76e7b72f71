package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AllowedOrigins lists the CORS origins of the admin console.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	// RateLimit is the number of requests a single client IP may issue per
	// minute.
	RateLimit int `env:"RATE_LIMIT" envDefault:"100"`
	// ShutdownTimeout bounds graceful shutdown, including in-flight
	// dispatches.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
