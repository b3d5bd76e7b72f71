package configs

import (
	"errors"
	"strings"
	"time"
)

const (
	MailProviderResend = "resend"
	MailProviderLog    = "log"
)

// Mail configures the outbound mail transport. Provider "log" writes
// messages to the structured logger instead of sending them.
type Mail struct {
	Provider string        `env:"PROVIDER" envDefault:"log"`
	APIKey   string        `env:"API_KEY"`
	From     string        `env:"FROM" envDefault:"Croevo AI <onboarding@resend.dev>"`
	Endpoint string        `env:"ENDPOINT" envDefault:"https://api.resend.com/emails"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// NormalizedProvider returns the lower-cased provider name.
func (c Mail) NormalizedProvider() string {
	return strings.ToLower(strings.TrimSpace(c.Provider))
}

// Validate checks that the selected provider is usable.
func (c Mail) Validate() error {
	switch c.NormalizedProvider() {
	case MailProviderLog:
		return nil
	case MailProviderResend:
		if c.APIKey == "" {
			return errors.New("MAIL_API_KEY is required for the resend provider")
		}
		return nil
	default:
		return errors.New("MAIL_PROVIDER must be one of: resend, log")
	}
}
