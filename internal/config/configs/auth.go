package configs

import (
	"errors"
	"time"
)

// Auth configures the bearer sessions issued by the identity adapter.
type Auth struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Validate requires a secret long enough for HS256.
func (c Auth) Validate() error {
	if len(c.JWTSecret) < 32 {
		return errors.New("AUTH_JWT_SECRET must be at least 32 bytes")
	}
	return nil
}

// Bootstrap holds credentials for the first admin. Both fields empty
// disables seeding.
type Bootstrap struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
}

// Enabled reports whether a bootstrap admin was configured.
func (c Bootstrap) Enabled() bool {
	return c.Email != "" && c.Password != ""
}
