package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"croevo-console/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

var errInvalidID = errors.New("invalid id")

type errorResponse struct {
	Error       string `json:"error"`
	Message     string `json:"message"`
	SideEffects bool   `json:"side_effects"`
}

type errorKind struct {
	status int
	code   string
}

var errorKinds = []struct {
	err  error
	kind errorKind
}{
	{errInvalidID, errorKind{http.StatusBadRequest, "invalid_id"}},
	{port.ErrInvalidEmail, errorKind{http.StatusBadRequest, "invalid_email"}},
	{port.ErrInvalidCampaign, errorKind{http.StatusBadRequest, "invalid_campaign"}},
	{port.ErrWeakPassword, errorKind{http.StatusBadRequest, "weak_password"}},
	{port.ErrUnauthenticated, errorKind{http.StatusUnauthorized, "unauthenticated"}},
	{port.ErrInvalidCredentials, errorKind{http.StatusUnauthorized, "invalid_credentials"}},
	{port.ErrForbidden, errorKind{http.StatusForbidden, "forbidden"}},
	{port.ErrEmailMismatch, errorKind{http.StatusForbidden, "email_mismatch"}},
	{port.ErrSubscriberNotFound, errorKind{http.StatusNotFound, "subscriber_not_found"}},
	{port.ErrCampaignNotFound, errorKind{http.StatusNotFound, "campaign_not_found"}},
	{port.ErrInviteNotFound, errorKind{http.StatusNotFound, "invite_not_found"}},
	{port.ErrPrincipalNotFound, errorKind{http.StatusNotFound, "principal_not_found"}},
	{port.ErrAlreadySubscribed, errorKind{http.StatusConflict, "already_subscribed"}},
	{port.ErrEmailTaken, errorKind{http.StatusConflict, "email_taken"}},
	{port.ErrAlreadySent, errorKind{http.StatusConflict, "already_sent"}},
	{port.ErrDispatchInProgress, errorKind{http.StatusConflict, "dispatch_in_progress"}},
	{port.ErrInviteAlreadyUsed, errorKind{http.StatusGone, "invite_already_used"}},
	{port.ErrInviteExpired, errorKind{http.StatusGone, "invite_expired"}},
	{port.ErrNoRecipients, errorKind{http.StatusUnprocessableEntity, "no_recipients"}},
	{port.ErrRender, errorKind{http.StatusInternalServerError, "render_error"}},
}

func classify(err error) (errorKind, bool) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind, true
		}
	}
	return errorKind{http.StatusInternalServerError, "internal"}, false
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes the machine code for a known error. Anything else is
// logged and reported as internal without its message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind, known := classify(err)
	msg := err.Error()
	if !known {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		msg = "internal error"
	}
	respondJSON(w, kind.status, errorResponse{Error: kind.code, Message: msg})
}

func (h *Handler) respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

// pathID returns the {id} URL parameter once it parses as a UUID.
func pathID(r *http.Request) (string, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return "", errInvalidID
	}
	return id.String(), nil
}
