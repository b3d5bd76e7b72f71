package port

import (
	"context"
	"time"

	"croevo-console/internal/core/domain"
)

// InviteRepository is the Invite Store.
type InviteRepository interface {
	// CreateInvite stores the invite and returns it with ID and CreatedAt set.
	CreateInvite(ctx context.Context, inv domain.Invite) (*domain.Invite, error)
	// FindInviteByToken returns nil when no invite carries the token.
	FindInviteByToken(ctx context.Context, token string) (*domain.Invite, error)
	// GetInvite returns nil when the invite does not exist.
	GetInvite(ctx context.Context, id string) (*domain.Invite, error)
	// ListInvites returns every invite, newest first.
	ListInvites(ctx context.Context) ([]domain.Invite, error)
	// DeleteInvite hard deletes an invite. ErrInviteNotFound when missing.
	DeleteInvite(ctx context.Context, id string) error
	// ClaimInvite atomically marks the invite used by principalID and grants
	// the admin role. The mark only applies while the invite is unused and
	// unexpired at now; otherwise ErrInviteAlreadyUsed, ErrInviteExpired or
	// ErrInviteNotFound is returned and nothing changes. granted is false
	// when the principal already held the role.
	ClaimInvite(ctx context.Context, id, principalID string, now time.Time) (granted bool, err error)
}

// RoleRepository is the Role Store query surface. Grants are only written
// by InviteRepository.ClaimInvite.
type RoleRepository interface {
	HasRole(ctx context.Context, principalID string, role domain.Role) (bool, error)
}

// PrincipalRepository stores credentials for the identity adapter.
type PrincipalRepository interface {
	// CreatePrincipal returns ErrEmailTaken for an existing normalized email.
	CreatePrincipal(ctx context.Context, email, passwordHash string) (*domain.Principal, error)
	// FindPrincipalByEmail returns nil when unknown.
	FindPrincipalByEmail(ctx context.Context, email string) (*domain.Principal, error)
	// GetPrincipal returns nil when unknown.
	GetPrincipal(ctx context.Context, id string) (*domain.Principal, error)
}
