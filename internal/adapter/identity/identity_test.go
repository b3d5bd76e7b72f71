package identity

import (
	"context"
	"testing"
	"time"

	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
	"croevo-console/internal/core/port/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T) (*Service, *mocks.MockPrincipalRepository) {
	t.Helper()
	repo := mocks.NewMockPrincipalRepository(t)
	s := New(repo, configs.Auth{JWTSecret: testSecret, SessionTTL: time.Hour})
	s.cost = bcrypt.MinCost
	return s, repo
}

func TestSignUp(t *testing.T) {
	s, repo := newTestService(t)
	repo.EXPECT().
		CreatePrincipal(mock.Anything, "bob@example.com", mock.Anything).
		RunAndReturn(func(_ context.Context, email, hash string) (*domain.Principal, error) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")))
			return &domain.Principal{ID: "p1", Email: email, PasswordHash: hash}, nil
		})

	p, err := s.SignUp(context.Background(), " Bob@Example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestSignUpRejections(t *testing.T) {
	tests := []struct {
		name, email, password string
		want                  error
	}{
		{"five characters", "bob@example.com", "abc12", port.ErrWeakPassword},
		{"long password", "bob@example.com", string(make([]byte, 73)), port.ErrWeakPassword},
		{"bad email", "bob", "hunter22", port.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t)
			_, err := s.SignUp(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignUpAcceptsMinimumLength(t *testing.T) {
	s, repo := newTestService(t)
	repo.EXPECT().
		CreatePrincipal(mock.Anything, "bob@example.com", mock.Anything).
		Return(&domain.Principal{ID: "p1", Email: "bob@example.com"}, nil)

	_, err := s.SignUp(context.Background(), "bob@example.com", "abc123")
	require.NoError(t, err)
}

func TestSignIn(t *testing.T) {
	hash, err := hashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.Principal{ID: "p1", Email: "bob@example.com", PasswordHash: hash}

	t.Run("ok", func(t *testing.T) {
		s, repo := newTestService(t)
		repo.EXPECT().FindPrincipalByEmail(mock.Anything, "bob@example.com").Return(stored, nil)

		p, err := s.SignIn(context.Background(), "BOB@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		s, repo := newTestService(t)
		repo.EXPECT().FindPrincipalByEmail(mock.Anything, "bob@example.com").Return(stored, nil)

		_, err := s.SignIn(context.Background(), "bob@example.com", "hunter23")
		assert.ErrorIs(t, err, port.ErrInvalidCredentials)
	})
	t.Run("unknown email", func(t *testing.T) {
		s, repo := newTestService(t)
		repo.EXPECT().FindPrincipalByEmail(mock.Anything, "eve@example.com").Return(nil, nil)

		_, err := s.SignIn(context.Background(), "eve@example.com", "hunter22")
		assert.ErrorIs(t, err, port.ErrInvalidCredentials)
	})
}

func TestSessionRoundTrip(t *testing.T) {
	s, repo := newTestService(t)
	p := domain.Principal{ID: "p1", Email: "bob@example.com"}
	repo.EXPECT().GetPrincipal(mock.Anything, "p1").Return(&p, nil)

	token, err := s.IssueSession(p)
	require.NoError(t, err)

	got, err := s.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}

func TestAuthenticateRejects(t *testing.T) {
	p := domain.Principal{ID: "p1", Email: "bob@example.com"}

	t.Run("expired", func(t *testing.T) {
		s, _ := newTestService(t)
		s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := s.IssueSession(p)
		require.NoError(t, err)

		s.now = time.Now
		_, err = s.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, port.ErrUnauthenticated)
	})
	t.Run("wrong secret", func(t *testing.T) {
		s, _ := newTestService(t)
		other := New(nil, configs.Auth{JWTSecret: "ffffffffffffffffffffffffffffffff", SessionTTL: time.Hour})
		token, err := other.IssueSession(p)
		require.NoError(t, err)

		_, err = s.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, port.ErrUnauthenticated)
	})
	t.Run("unsigned", func(t *testing.T) {
		s, _ := newTestService(t)
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "p1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = s.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, port.ErrUnauthenticated)
	})
	t.Run("garbage", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.Authenticate(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, port.ErrUnauthenticated)
	})
	t.Run("principal deleted", func(t *testing.T) {
		s, repo := newTestService(t)
		repo.EXPECT().GetPrincipal(mock.Anything, "p1").Return(nil, nil)
		token, err := s.IssueSession(p)
		require.NoError(t, err)

		_, err = s.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, port.ErrUnauthenticated)
	})
}
