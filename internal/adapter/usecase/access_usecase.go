package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
	"croevo-console/internal/metrics"
)

const inviteTokenBytes = 32

// AccessUseCase issues admin invites and runs the claim workflow. It
// implements port.AccessUseCase.
type AccessUseCase struct {
	invites  port.InviteRepository
	roles    port.RoleRepository
	identity port.Identity
	cfg      configs.Invite
	logger   *slog.Logger

	now      func() time.Time
	newToken func() (string, error)
}

// NewAccessUseCase wires the use case. cfg is expected to be validated.
func NewAccessUseCase(
	invites port.InviteRepository,
	roles port.RoleRepository,
	identity port.Identity,
	cfg configs.Invite,
	logger *slog.Logger,
) *AccessUseCase {
	return &AccessUseCase{
		invites:  invites,
		roles:    roles,
		identity: identity,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		newToken: randomToken,
	}
}

// CreateInvite issues an invite valid for the configured TTL. A non-empty
// email restricts the invite to that address.
func (u *AccessUseCase) CreateInvite(ctx context.Context, issuerID string, email *string) (*port.InviteView, error) {
	var restrict *string
	if email != nil && strings.TrimSpace(*email) != "" {
		normalized, err := normalizeAddress(*email)
		if err != nil {
			return nil, err
		}
		restrict = &normalized
	}

	token, err := u.newToken()
	if err != nil {
		return nil, fmt.Errorf("generate invite token: %w", err)
	}

	now := u.now().UTC()
	inv, err := u.invites.CreateInvite(ctx, domain.Invite{
		Token:     token,
		Email:     restrict,
		CreatedBy: issuerID,
		ExpiresAt: now.Add(u.cfg.TTL),
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("invite created", slog.String("invite_id", inv.ID), slog.String("created_by", issuerID))
	view := u.view(*inv, now)
	return &view, nil
}

// ListInvites returns every invite with its current state.
func (u *AccessUseCase) ListInvites(ctx context.Context) ([]port.InviteView, error) {
	invites, err := u.invites.ListInvites(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	views := make([]port.InviteView, 0, len(invites))
	for _, inv := range invites {
		views = append(views, u.view(inv, now))
	}
	return views, nil
}

// RevokeInvite hard deletes an invite whatever its state.
func (u *AccessUseCase) RevokeInvite(ctx context.Context, id string) error {
	return u.invites.DeleteInvite(ctx, id)
}

// ResolveInvite looks an invite up by its token.
func (u *AccessUseCase) ResolveInvite(ctx context.Context, token string) (*port.InviteView, error) {
	if token == "" {
		return nil, port.ErrInviteNotFound
	}
	inv, err := u.invites.FindInviteByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, port.ErrInviteNotFound
	}
	view := u.view(*inv, u.now())
	return &view, nil
}

// Claim consumes the invite for principal and grants the admin role. The
// checks here give early, precise errors; the repository repeats the
// used and expiry conditions inside the write so concurrent claims yield a
// single winner.
func (u *AccessUseCase) Claim(ctx context.Context, inviteID string, principal domain.Principal) (*port.ClaimResult, error) {
	res, err := u.claim(ctx, inviteID, principal)
	if err != nil {
		metrics.RecordInviteClaim(errorLabel(err))
		return nil, err
	}
	if res.Granted {
		metrics.RecordInviteClaim("granted")
	} else {
		metrics.RecordInviteClaim("already_admin")
	}
	u.logger.Info("invite claimed",
		slog.String("invite_id", res.InviteID),
		slog.String("principal_id", res.PrincipalID),
		slog.Bool("granted", res.Granted),
	)
	return res, nil
}

func (u *AccessUseCase) claim(ctx context.Context, inviteID string, principal domain.Principal) (*port.ClaimResult, error) {
	inv, err := u.invites.GetInvite(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, port.ErrInviteNotFound
	}

	now := u.now()
	if err = port.CheckClaimable(*inv, now); err != nil {
		return nil, err
	}
	if !inv.AllowsEmail(principal.Email) {
		return nil, port.ErrEmailMismatch
	}

	granted, err := u.invites.ClaimInvite(ctx, inv.ID, principal.ID, now)
	if err != nil {
		return nil, err
	}
	return &port.ClaimResult{InviteID: inv.ID, PrincipalID: principal.ID, Granted: granted}, nil
}

// ClaimWithCredentials establishes the claimant through the identity
// collaborator and then claims. The invite is checked first so a dead or
// restricted invite never creates an account.
func (u *AccessUseCase) ClaimWithCredentials(ctx context.Context, token string, creds port.Credentials) (*port.ClaimResult, error) {
	view, err := u.ResolveInvite(ctx, token)
	if err != nil {
		metrics.RecordInviteClaim(errorLabel(err))
		return nil, err
	}
	if err = port.CheckClaimable(view.Invite, u.now()); err != nil {
		metrics.RecordInviteClaim(errorLabel(err))
		return nil, err
	}
	if !view.AllowsEmail(creds.Email) {
		metrics.RecordInviteClaim(errorLabel(port.ErrEmailMismatch))
		return nil, port.ErrEmailMismatch
	}

	var principal *domain.Principal
	if creds.SignUp {
		principal, err = u.identity.SignUp(ctx, creds.Email, creds.Password)
	} else {
		principal, err = u.identity.SignIn(ctx, creds.Email, creds.Password)
	}
	if err != nil {
		metrics.RecordInviteClaim(errorLabel(err))
		return nil, err
	}

	res, err := u.Claim(ctx, view.ID, *principal)
	if err != nil {
		return nil, err
	}
	if res.Session, err = u.identity.IssueSession(*principal); err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	return res, nil
}

// HasRole reports whether the principal holds role.
func (u *AccessUseCase) HasRole(ctx context.Context, principalID string, role domain.Role) (bool, error) {
	return u.roles.HasRole(ctx, principalID, role)
}

func (u *AccessUseCase) view(inv domain.Invite, now time.Time) port.InviteView {
	return port.InviteView{
		Invite: inv,
		State:  inv.State(now),
		Link:   strings.TrimRight(u.cfg.BaseURL, "/") + "/invite/" + url.PathEscape(inv.Token),
	}
}

func randomToken() (string, error) {
	b := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
