package usecase

import (
	"errors"

	"croevo-console/internal/core/port"
)

// errorLabel maps the use case errors to low-cardinality metric labels.
func errorLabel(err error) string {
	switch {
	case errors.Is(err, port.ErrAlreadySent):
		return "already_sent"
	case errors.Is(err, port.ErrNoRecipients):
		return "no_recipients"
	case errors.Is(err, port.ErrRender):
		return "render_error"
	case errors.Is(err, port.ErrDispatchInProgress):
		return "in_progress"
	case errors.Is(err, port.ErrCampaignNotFound):
		return "campaign_not_found"
	case errors.Is(err, port.ErrInviteNotFound):
		return "invite_not_found"
	case errors.Is(err, port.ErrInviteAlreadyUsed):
		return "invite_already_used"
	case errors.Is(err, port.ErrInviteExpired):
		return "invite_expired"
	case errors.Is(err, port.ErrEmailMismatch):
		return "email_mismatch"
	case errors.Is(err, port.ErrInvalidCredentials), errors.Is(err, port.ErrEmailTaken), errors.Is(err, port.ErrWeakPassword):
		return "auth_failed"
	default:
		return "error"
	}
}
