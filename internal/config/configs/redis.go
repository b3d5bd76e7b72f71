package configs

import "time"

// Redis configures the optional Redis dispatch lock. When Addr is empty the
// Postgres advisory lock is used instead.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// LockTTL bounds how long a crashed dispatcher blocks a retry.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"10m"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
