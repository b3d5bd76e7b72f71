package domain

import "time"

// InviteState is derived from an invite's fields at read time. Expiry is
// never written; an unused invite past ExpiresAt is simply Expired.
type InviteState string

const (
	InviteActive  InviteState = "active"
	InviteUsed    InviteState = "used"
	InviteExpired InviteState = "expired"
)

// Invite is a single-use, time-boxed token granting the admin role. UsedBy
// and UsedAt are either both nil or both set; once set the invite is
// terminal.
type Invite struct {
	ID        string
	Token     string
	Email     *string // nil means any principal may claim
	CreatedBy string
	UsedBy    *string
	UsedAt    *time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
}

// State returns the invite state at the given instant. Used wins over
// Expired so an invite consumed before its deadline keeps reporting Used.
func (i Invite) State(now time.Time) InviteState {
	switch {
	case i.UsedAt != nil:
		return InviteUsed
	case !now.Before(i.ExpiresAt):
		return InviteExpired
	default:
		return InviteActive
	}
}

// AllowsEmail reports whether a principal with the given email satisfies the
// invite's restriction. Both sides are compared in normalized form.
func (i Invite) AllowsEmail(email string) bool {
	if i.Email == nil {
		return true
	}
	return NormalizeEmail(*i.Email) == NormalizeEmail(email)
}
