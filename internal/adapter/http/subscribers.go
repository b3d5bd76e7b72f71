package httpadapter

import (
	"net/http"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// handleSubscribe registers a public newsletter subscription. A duplicate
// email yields 409 already_subscribed.
func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondBadRequest(w, "invalid JSON")
		return
	}
	sub, err := h.news.Subscribe(r.Context(), req.Email)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toSubscriberResponse(*sub))
}

func (h *Handler) handleListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.news.ListSubscribers(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out := make([]subscriberResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, toSubscriberResponse(s))
	}
	respondJSON(w, http.StatusOK, out)
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

func (h *Handler) handleSetSubscriberActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req setActiveRequest
	if err = decodeJSON(w, r, &req); err != nil || req.IsActive == nil {
		h.respondBadRequest(w, "is_active is required")
		return
	}
	if err = h.news.SetSubscriberActive(r.Context(), id, *req.IsActive); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err = h.news.DeleteSubscriber(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
