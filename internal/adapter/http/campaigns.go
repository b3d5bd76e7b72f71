package httpadapter

import (
	"log/slog"
	"net/http"
)

type campaignRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.news.ListCampaigns(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignResponse(c))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondBadRequest(w, "invalid JSON")
		return
	}
	c, err := h.news.CreateCampaign(r.Context(), req.Subject, req.Content)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	c, err := h.news.GetCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req campaignRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.respondBadRequest(w, "invalid JSON")
		return
	}
	c, err := h.news.UpdateCampaign(r.Context(), id, req.Subject, req.Content)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err = h.news.DeleteCampaign(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePreviewCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	html, err := h.news.PreviewCampaign(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

type dispatchFailureResponse struct {
	errorResponse
	Report *dispatchResponse `json:"report,omitempty"`
}

// handleDispatch runs the Dispatch Engine synchronously. Precondition
// failures report side_effects false. When sends happened but the final
// write failed the partial report is returned with side_effects true.
func (h *Handler) handleDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	report, err := h.news.Dispatch(r.Context(), id)
	if err != nil && report == nil {
		h.respondError(w, r, err)
		return
	}
	if err != nil {
		h.logger.Error("dispatch finished without recording sent state",
			slog.String("campaign_id", id),
			slog.Int("sent", report.SuccessCount),
			slog.Any("error", err),
		)
		kind, _ := classify(err)
		out := toDispatchResponse(*report)
		respondJSON(w, kind.status, dispatchFailureResponse{
			errorResponse: errorResponse{Error: kind.code, Message: "mail was sent but the campaign state was not recorded", SideEffects: true},
			Report:        &out,
		})
		return
	}
	respondJSON(w, http.StatusOK, toDispatchResponse(*report))
}
