package domain

import (
	"strings"
	"time"
)

// Subscriber is an opt-in newsletter recipient. Only active subscribers
// receive a dispatch.
type Subscriber struct {
	ID           string
	Email        string
	IsActive     bool
	SubscribedAt time.Time
}

// NormalizeEmail returns the canonical form used for uniqueness and for
// invite restriction checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
