// Package identity is the local identity collaborator: bcrypt password
// credentials stored in Postgres and HS256 JWT bearer sessions.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 6
	issuer         = "croevo-console"
)

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service implements port.Identity.
type Service struct {
	principals port.PrincipalRepository
	secret     []byte
	ttl        time.Duration
	cost       int
	now        func() time.Time
}

func New(principals port.PrincipalRepository, cfg configs.Auth) *Service {
	return &Service{
		principals: principals,
		secret:     []byte(cfg.JWTSecret),
		ttl:        cfg.SessionTTL,
		cost:       bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// HashPassword hashes a plaintext password with the default bcrypt cost.
func HashPassword(password string) (string, error) {
	return hashPassword(password, bcrypt.DefaultCost)
}

func hashPassword(password string, cost int) (string, error) {
	if len(password) < minPasswordLen {
		return "", port.ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", port.ErrWeakPassword
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SignUp creates a principal. ErrEmailTaken when the email is registered.
func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.Principal, error) {
	email = domain.NormalizeEmail(email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, port.ErrInvalidEmail
	}
	hash, err := hashPassword(password, s.cost)
	if err != nil {
		return nil, err
	}
	return s.principals.CreatePrincipal(ctx, email, hash)
}

// SignIn checks credentials. Unknown email and wrong password are the same
// error.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Principal, error) {
	p, err := s.principals.FindPrincipalByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, port.ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, port.ErrInvalidCredentials
	}
	return p, nil
}

// IssueSession signs a bearer token whose subject is the principal ID.
func (s *Service) IssueSession(p domain.Principal) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Authenticate verifies a bearer token and loads its principal.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || c.Subject == "" {
		return nil, port.ErrUnauthenticated
	}

	p, err := s.principals.GetPrincipal(ctx, c.Subject)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, port.ErrUnauthenticated
	}
	return p, nil
}
