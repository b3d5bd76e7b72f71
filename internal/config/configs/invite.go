package configs

import (
	"errors"
	"time"
)

// Invite configures admin invite issuance.
type Invite struct {
	// TTL is the validity window of a fresh invite.
	TTL time.Duration `env:"TTL" envDefault:"168h"`
	// BaseURL is the site origin used to build <origin>/invite/<token> links.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5173"`
}

// Validate rejects a validity window that would issue already expired
// invites.
func (c Invite) Validate() error {
	if c.TTL <= 0 {
		return errors.New("INVITE_TTL must be positive")
	}
	return nil
}
