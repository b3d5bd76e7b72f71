package port

import (
	"context"

	"croevo-console/internal/core/domain"
)

// NewsletterUseCase covers subscriber management, campaign drafts and the
// Dispatch Engine. It is the primary port used by the HTTP adapter.
type NewsletterUseCase interface {
	// Subscribe registers an email. Duplicates by normalized email fail with
	// ErrAlreadySubscribed.
	Subscribe(ctx context.Context, email string) (*domain.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	SetSubscriberActive(ctx context.Context, id string, active bool) error
	DeleteSubscriber(ctx context.Context, id string) error

	CreateCampaign(ctx context.Context, subject, content string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id, subject, content string) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
	// PreviewCampaign renders the exact body Dispatch would send.
	PreviewCampaign(ctx context.Context, id string) (string, error)

	// Dispatch sends a draft campaign to every active subscriber in
	// sequential batches and records the draft to sent transition. Errors
	// other than a failed final write mean no recipient was contacted.
	Dispatch(ctx context.Context, campaignID string) (*DispatchReport, error)
}

// DispatchReport is the aggregate outcome of a completed dispatch.
type DispatchReport struct {
	CampaignID   string
	Recipients   int
	Batches      int
	SuccessCount int
	FailureCount int
}

// Outcome classifies the report for operators: every recipient reached,
// some reached, or none reached.
func (r DispatchReport) Outcome() string {
	switch {
	case r.FailureCount == 0:
		return "complete"
	case r.SuccessCount == 0:
		return "failed"
	default:
		return "partial"
	}
}
