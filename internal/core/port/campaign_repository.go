package port

import (
	"context"
	"time"

	"croevo-console/internal/core/domain"
)

// CampaignRepository is the Campaign Store. Writes that depend on the
// campaign still being a draft are single conditional statements.
type CampaignRepository interface {
	// CreateCampaign inserts a draft.
	CreateCampaign(ctx context.Context, subject, content string) (*domain.Campaign, error)
	// GetCampaign returns nil when the campaign does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns returns every campaign, newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// UpdateDraft edits subject and content of a draft. ErrAlreadySent when
	// the campaign is no longer a draft, ErrCampaignNotFound when missing.
	UpdateDraft(ctx context.Context, id, subject, content string) error
	// MarkCampaignSent performs the draft to sent transition. It returns
	// ErrAlreadySent when the campaign was not a draft at write time.
	MarkCampaignSent(ctx context.Context, id string, sentCount int, sentAt time.Time) error
	// DeleteCampaign hard deletes a campaign.
	DeleteCampaign(ctx context.Context, id string) error
}

// DispatchLocker serialises dispatches of the same campaign. The returned
// release function must be called exactly once.
type DispatchLocker interface {
	// AcquireDispatch returns ErrDispatchInProgress when another dispatch of
	// the campaign holds the lock.
	AcquireDispatch(ctx context.Context, campaignID string) (release func(), err error)
}
