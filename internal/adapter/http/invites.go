package httpadapter

import (
	"net/http"

	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"

	"github.com/go-chi/chi/v5"
)

type createInviteRequest struct {
	Email *string `json:"email"`
}

func (h *Handler) handleCreateInvite(w http.ResponseWriter, r *http.Request) {
	var req createInviteRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			h.respondBadRequest(w, "invalid JSON")
			return
		}
	}
	issuer := principalFrom(r.Context())
	view, err := h.access.CreateInvite(r.Context(), issuer.ID, req.Email)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toInviteResponse(*view))
}

func (h *Handler) handleListInvites(w http.ResponseWriter, r *http.Request) {
	views, err := h.access.ListInvites(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out := make([]inviteResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toInviteResponse(v))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) handleRevokeInvite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err = h.access.RevokeInvite(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleResolveInvite backs the invite page. Unknown tokens are 404, used
// and expired invites 410.
func (h *Handler) handleResolveInvite(w http.ResponseWriter, r *http.Request) {
	view, err := h.access.ResolveInvite(r.Context(), chi.URLParam(r, "token"))
	if err == nil {
		err = stateErr(view.State)
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, publicInviteResponse{
		Email:     view.Email,
		State:     string(view.State),
		ExpiresAt: view.ExpiresAt,
	})
}

// stateErr maps a resolved invite state to its claim error.
func stateErr(state domain.InviteState) error {
	switch state {
	case domain.InviteUsed:
		return port.ErrInviteAlreadyUsed
	case domain.InviteExpired:
		return port.ErrInviteExpired
	default:
		return nil
	}
}

type claimRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Mode     string `json:"mode"`
}

// handleClaimInvite claims with the bearer principal when present,
// otherwise with credentials from the body. Mode "signup" creates the
// account first; anything else signs in.
func (h *Handler) handleClaimInvite(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if p := principalFrom(r.Context()); p != nil {
		view, err := h.access.ResolveInvite(r.Context(), token)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		res, err := h.access.Claim(r.Context(), view.ID, *p)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, toClaimResponse(*res))
		return
	}

	var req claimRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondBadRequest(w, "credentials required")
		return
	}
	res, err := h.access.ClaimWithCredentials(r.Context(), token, port.Credentials{
		Email:    req.Email,
		Password: req.Password,
		SignUp:   req.Mode == "signup",
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toClaimResponse(*res))
}
