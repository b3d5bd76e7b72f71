package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
	"croevo-console/internal/core/port/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
	campaignID = "7f1b6c9e-3c55-4a8e-9d0a-6a1f0c2b9e11"
)

var (
	admin = domain.Principal{ID: "a0000000-0000-0000-0000-000000000001", Email: "admin@example.com"}
	user  = domain.Principal{ID: "u0000000-0000-0000-0000-000000000002", Email: "user@example.com"}
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type fixture struct {
	news     *mocks.MockNewsletterUseCase
	access   *mocks.MockAccessUseCase
	identity *mocks.MockIdentity
	pingErr  error
	h        http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		news:     mocks.NewMockNewsletterUseCase(t),
		access:   mocks.NewMockAccessUseCase(t),
		identity: mocks.NewMockIdentity(t),
	}
	f.identity.EXPECT().Authenticate(mock.Anything, adminToken).Return(&admin, nil).Maybe()
	f.identity.EXPECT().Authenticate(mock.Anything, userToken).Return(&user, nil).Maybe()
	f.identity.EXPECT().Authenticate(mock.Anything, "bogus").Return(nil, port.ErrUnauthenticated).Maybe()
	f.access.EXPECT().HasRole(mock.Anything, admin.ID, domain.RoleAdmin).Return(true, nil).Maybe()
	f.access.EXPECT().HasRole(mock.Anything, user.ID, domain.RoleAdmin).Return(false, nil).Maybe()

	f.h = NewHandler(
		configs.HTTP{AllowedOrigins: []string{"http://localhost:5173"}},
		f.news, f.access, f.identity,
		pingFunc(func(context.Context) error { return f.pingErr }),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	).Router()
	return f
}

func (f *fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealthAndReadiness(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/readyz", "", "").Code)

	f.pingErr = errors.New("db down")
	assert.Equal(t, http.StatusServiceUnavailable, f.do(http.MethodGet, "/readyz", "", "").Code)
}

func TestSubscribe(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		f.news.EXPECT().Subscribe(mock.Anything, "Bob@example.com").
			Return(&domain.Subscriber{ID: "s1", Email: "bob@example.com", IsActive: true}, nil)

		rec := f.do(http.MethodPost, "/api/v1/subscribers", "", `{"email":"Bob@example.com"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "bob@example.com", decode[subscriberResponse](t, rec).Email)
	})
	t.Run("duplicate", func(t *testing.T) {
		f := newFixture(t)
		f.news.EXPECT().Subscribe(mock.Anything, "bob@example.com").Return(nil, port.ErrAlreadySubscribed)

		rec := f.do(http.MethodPost, "/api/v1/subscribers", "", `{"email":"bob@example.com"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		body := decode[errorResponse](t, rec)
		assert.Equal(t, "already_subscribed", body.Error)
		assert.False(t, body.SideEffects)
	})
	t.Run("bad json", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/v1/subscribers", "", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminAccess(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"invalid token", "bogus", http.StatusUnauthorized},
		{"not admin", userToken, http.StatusForbidden},
		{"admin", adminToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.news.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{}, nil).Maybe()

			rec := f.do(http.MethodGet, "/api/v1/admin/campaigns", tt.token, "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestMe(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/v1/me", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	me := decode[principalResponse](t, rec)
	assert.Equal(t, admin.ID, me.ID)
	assert.True(t, me.IsAdmin)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/me", "", "").Code)
}

func TestSignIn(t *testing.T) {
	f := newFixture(t)
	f.identity.EXPECT().SignIn(mock.Anything, "user@example.com", "hunter22").Return(&user, nil)
	f.identity.EXPECT().IssueSession(user).Return("jwt", nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/signin", "", `{"email":"user@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jwt", decode[sessionResponse](t, rec).Token)
}

func TestCampaignRoutes(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/api/v1/admin/campaigns/42", adminToken, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_id", decode[errorResponse](t, rec).Error)
	})
	t.Run("edit sent campaign", func(t *testing.T) {
		f := newFixture(t)
		f.news.EXPECT().UpdateCampaign(mock.Anything, campaignID, "S", "C").Return(nil, port.ErrAlreadySent)

		rec := f.do(http.MethodPut, "/api/v1/admin/campaigns/"+campaignID, adminToken, `{"subject":"S","content":"C"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
	t.Run("preview", func(t *testing.T) {
		f := newFixture(t)
		f.news.EXPECT().PreviewCampaign(mock.Anything, campaignID).Return("<html>hi</html>", nil)

		rec := f.do(http.MethodGet, "/api/v1/admin/campaigns/"+campaignID+"/preview", adminToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Equal(t, "<html>hi</html>", rec.Body.String())
	})
}

func TestDispatch(t *testing.T) {
	path := "/api/v1/admin/campaigns/" + campaignID + "/dispatch"

	t.Run("partial", func(t *testing.T) {
		f := newFixture(t)
		f.news.EXPECT().Dispatch(mock.Anything, campaignID).Return(&port.DispatchReport{
			CampaignID: campaignID, Recipients: 23, Batches: 3, SuccessCount: 21, FailureCount: 2,
		}, nil)

		rec := f.do(http.MethodPost, path, adminToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[dispatchResponse](t, rec)
		assert.Equal(t, "partial", body.Outcome)
		assert.Equal(t, 21, body.SuccessCount)
		assert.Equal(t, 2, body.FailureCount)
	})

	preconditions := []struct {
		err    error
		status int
		code   string
	}{
		{port.ErrAlreadySent, http.StatusConflict, "already_sent"},
		{port.ErrNoRecipients, http.StatusUnprocessableEntity, "no_recipients"},
		{port.ErrDispatchInProgress, http.StatusConflict, "dispatch_in_progress"},
		{port.ErrCampaignNotFound, http.StatusNotFound, "campaign_not_found"},
		{port.ErrRender, http.StatusInternalServerError, "render_error"},
	}
	for _, tt := range preconditions {
		t.Run(tt.code, func(t *testing.T) {
			f := newFixture(t)
			f.news.EXPECT().Dispatch(mock.Anything, campaignID).Return(nil, tt.err)

			rec := f.do(http.MethodPost, path, adminToken, "")
			require.Equal(t, tt.status, rec.Code)
			body := decode[errorResponse](t, rec)
			assert.Equal(t, tt.code, body.Error)
			assert.False(t, body.SideEffects)
		})
	}

	t.Run("final write failed", func(t *testing.T) {
		f := newFixture(t)
		f.news.EXPECT().Dispatch(mock.Anything, campaignID).Return(
			&port.DispatchReport{CampaignID: campaignID, Recipients: 2, Batches: 1, SuccessCount: 2},
			errors.New("record campaign sent: conn reset"),
		)

		rec := f.do(http.MethodPost, path, adminToken, "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode[dispatchFailureResponse](t, rec)
		assert.Equal(t, "internal", body.Error)
		assert.True(t, body.SideEffects)
		require.NotNil(t, body.Report)
		assert.Equal(t, 2, body.Report.SuccessCount)
	})
}

func TestResolveInvite(t *testing.T) {
	expires := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		view   *port.InviteView
		err    error
		status int
	}{
		{"active", &port.InviteView{Invite: domain.Invite{ID: "i1", ExpiresAt: expires}, State: domain.InviteActive}, nil, http.StatusOK},
		{"expired", &port.InviteView{Invite: domain.Invite{ID: "i1", ExpiresAt: expires}, State: domain.InviteExpired}, nil, http.StatusGone},
		{"used", &port.InviteView{Invite: domain.Invite{ID: "i1", ExpiresAt: expires}, State: domain.InviteUsed}, nil, http.StatusGone},
		{"unknown", nil, port.ErrInviteNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.access.EXPECT().ResolveInvite(mock.Anything, "tok").Return(tt.view, tt.err)

			rec := f.do(http.MethodGet, "/api/v1/invites/tok", "", "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestClaimInvite(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		f := newFixture(t)
		f.access.EXPECT().ResolveInvite(mock.Anything, "tok").
			Return(&port.InviteView{Invite: domain.Invite{ID: "i1"}, State: domain.InviteActive}, nil)
		f.access.EXPECT().Claim(mock.Anything, "i1", user).
			Return(&port.ClaimResult{InviteID: "i1", PrincipalID: user.ID, Granted: true}, nil)

		rec := f.do(http.MethodPost, "/api/v1/invites/tok/claim", userToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[claimResponse](t, rec).Granted)
	})
	t.Run("with credentials", func(t *testing.T) {
		f := newFixture(t)
		f.access.EXPECT().ClaimWithCredentials(mock.Anything, "tok", port.Credentials{
			Email: "new@example.com", Password: "hunter22", SignUp: true,
		}).Return(&port.ClaimResult{InviteID: "i1", PrincipalID: "p9", Granted: true, Session: "jwt"}, nil)

		rec := f.do(http.MethodPost, "/api/v1/invites/tok/claim", "",
			`{"email":"new@example.com","password":"hunter22","mode":"signup"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jwt", decode[claimResponse](t, rec).Token)
	})
	t.Run("mismatch", func(t *testing.T) {
		f := newFixture(t)
		f.access.EXPECT().ResolveInvite(mock.Anything, "tok").
			Return(&port.InviteView{Invite: domain.Invite{ID: "i1"}, State: domain.InviteActive}, nil)
		f.access.EXPECT().Claim(mock.Anything, "i1", user).Return(nil, port.ErrEmailMismatch)

		rec := f.do(http.MethodPost, "/api/v1/invites/tok/claim", userToken, "")
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "email_mismatch", decode[errorResponse](t, rec).Error)
	})
}

func TestCreateInvite(t *testing.T) {
	f := newFixture(t)
	f.access.EXPECT().CreateInvite(mock.Anything, admin.ID, (*string)(nil)).
		Return(&port.InviteView{Invite: domain.Invite{ID: "i1", Token: "tok"}, State: domain.InviteActive, Link: "http://x/invite/tok"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/admin/invites", adminToken, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "http://x/invite/tok", decode[inviteResponse](t, rec).Link)
}
