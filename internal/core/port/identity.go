package port

import (
	"context"

	"croevo-console/internal/core/domain"
)

// Identity is the external identity collaborator. The invite workflow only
// uses it to establish a principal; it never manages credentials itself.
type Identity interface {
	SignUp(ctx context.Context, email, password string) (*domain.Principal, error)
	SignIn(ctx context.Context, email, password string) (*domain.Principal, error)
	// IssueSession returns a bearer token for the principal.
	IssueSession(p domain.Principal) (string, error)
	// Authenticate resolves a bearer token to the current principal.
	// ErrUnauthenticated for invalid or expired tokens.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}
