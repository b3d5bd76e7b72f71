package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// principalFrom returns the authenticated principal or nil.
func principalFrom(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalKey{}).(*domain.Principal)
	return p
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// authenticate resolves an optional bearer token. A present but invalid
// token is rejected rather than treated as anonymous.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		p, err := h.identity.Authenticate(r.Context(), token)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
	})
}

func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principalFrom(r.Context()) == nil {
			h.respondError(w, r, port.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin must run after requireAuth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := principalFrom(r.Context())
		ok, err := h.access.HasRole(r.Context(), p.ID, domain.RoleAdmin)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		if !ok {
			h.respondError(w, r, port.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token     string            `json:"token"`
	Principal principalResponse `json:"principal"`
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	h.handleCredentials(w, r, h.identity.SignUp, http.StatusCreated)
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	h.handleCredentials(w, r, h.identity.SignIn, http.StatusOK)
}

func (h *Handler) handleCredentials(
	w http.ResponseWriter,
	r *http.Request,
	establish func(ctx context.Context, email, password string) (*domain.Principal, error),
	status int,
) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondBadRequest(w, "invalid JSON")
		return
	}
	p, err := establish(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	token, err := h.identity.IssueSession(*p)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, status, sessionResponse{Token: token, Principal: toPrincipalResponse(*p, false)})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	isAdmin, err := h.access.HasRole(r.Context(), p.ID, domain.RoleAdmin)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toPrincipalResponse(*p, isAdmin))
}
