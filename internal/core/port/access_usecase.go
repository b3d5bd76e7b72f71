package port

import (
	"context"
	"time"

	"croevo-console/internal/core/domain"
)

// AccessUseCase covers invite issuance, the invite claim workflow and the
// admin role query surface.
type AccessUseCase interface {
	// CreateInvite issues a fresh invite. email restricts who may claim it.
	CreateInvite(ctx context.Context, issuerID string, email *string) (*InviteView, error)
	ListInvites(ctx context.Context) ([]InviteView, error)
	// RevokeInvite hard deletes an invite regardless of its state.
	RevokeInvite(ctx context.Context, id string) error

	// ResolveInvite returns the invite behind a token or ErrInviteNotFound.
	// Callers apply CheckClaimable themselves.
	ResolveInvite(ctx context.Context, token string) (*InviteView, error)
	// Claim grants the admin role to an established principal and consumes
	// the invite.
	Claim(ctx context.Context, inviteID string, principal domain.Principal) (*ClaimResult, error)
	// ClaimWithCredentials signs the claimant up or in through the identity
	// collaborator, then claims the invite behind token.
	ClaimWithCredentials(ctx context.Context, token string, creds Credentials) (*ClaimResult, error)

	HasRole(ctx context.Context, principalID string, role domain.Role) (bool, error)
}

// InviteView is an invite with its read-time state and shareable link.
type InviteView struct {
	domain.Invite
	State domain.InviteState
	Link  string
}

// Credentials are submitted on the invite page by a claimant who is not
// signed in yet.
type Credentials struct {
	Email    string
	Password string
	SignUp   bool
}

// ClaimResult reports a successful claim. Granted is false when the
// principal already held the admin role; the invite is consumed either way.
// Session is only set by ClaimWithCredentials.
type ClaimResult struct {
	InviteID    string
	PrincipalID string
	Granted     bool
	Session     string
}

// CheckClaimable maps an invite's state to the claim errors. It must be
// applied at every claim check since expiry is never written.
func CheckClaimable(inv domain.Invite, now time.Time) error {
	switch inv.State(now) {
	case domain.InviteUsed:
		return ErrInviteAlreadyUsed
	case domain.InviteExpired:
		return ErrInviteExpired
	default:
		return nil
	}
}
