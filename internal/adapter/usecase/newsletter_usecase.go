package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
)

// NewsletterUseCase provides subscriber management, campaign drafts and the
// Dispatch Engine. It implements port.NewsletterUseCase.
type NewsletterUseCase struct {
	subscribers port.SubscriberRepository
	campaigns   port.CampaignRepository
	locker      port.DispatchLocker
	renderer    port.Renderer
	transport   port.MailTransport
	cfg         configs.Dispatch
	logger      *slog.Logger

	now   func() time.Time
	sleep func(time.Duration)
}

// NewNewsletterUseCase wires the use case. cfg is expected to be validated.
func NewNewsletterUseCase(
	subscribers port.SubscriberRepository,
	campaigns port.CampaignRepository,
	locker port.DispatchLocker,
	renderer port.Renderer,
	transport port.MailTransport,
	cfg configs.Dispatch,
	logger *slog.Logger,
) *NewsletterUseCase {
	return &NewsletterUseCase{
		subscribers: subscribers,
		campaigns:   campaigns,
		locker:      locker,
		renderer:    renderer,
		transport:   transport,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// Subscribe registers a normalized email address.
func (u *NewsletterUseCase) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	email, err := normalizeAddress(email)
	if err != nil {
		return nil, err
	}
	return u.subscribers.CreateSubscriber(ctx, email)
}

// ListSubscribers returns every subscriber.
func (u *NewsletterUseCase) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return u.subscribers.ListSubscribers(ctx)
}

// SetSubscriberActive activates or deactivates a subscriber.
func (u *NewsletterUseCase) SetSubscriberActive(ctx context.Context, id string, active bool) error {
	return u.subscribers.SetSubscriberActive(ctx, id, active)
}

// DeleteSubscriber removes a subscriber.
func (u *NewsletterUseCase) DeleteSubscriber(ctx context.Context, id string) error {
	return u.subscribers.DeleteSubscriber(ctx, id)
}

// CreateCampaign stores a new draft. Subject and content must be non-blank.
func (u *NewsletterUseCase) CreateCampaign(ctx context.Context, subject, content string) (*domain.Campaign, error) {
	subject, err := validateCampaign(subject, content)
	if err != nil {
		return nil, err
	}
	return u.campaigns.CreateCampaign(ctx, subject, content)
}

// ListCampaigns returns every campaign.
func (u *NewsletterUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.campaigns.ListCampaigns(ctx)
}

// GetCampaign returns a campaign or port.ErrCampaignNotFound.
func (u *NewsletterUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// UpdateCampaign edits a draft and returns the stored result. Sent
// campaigns are rejected with port.ErrAlreadySent.
func (u *NewsletterUseCase) UpdateCampaign(ctx context.Context, id, subject, content string) (*domain.Campaign, error) {
	subject, err := validateCampaign(subject, content)
	if err != nil {
		return nil, err
	}
	if err = u.campaigns.UpdateDraft(ctx, id, subject, content); err != nil {
		return nil, err
	}
	return u.GetCampaign(ctx, id)
}

// DeleteCampaign removes a campaign.
func (u *NewsletterUseCase) DeleteCampaign(ctx context.Context, id string) error {
	return u.campaigns.DeleteCampaign(ctx, id)
}

// PreviewCampaign renders the campaign body without sending it.
func (u *NewsletterUseCase) PreviewCampaign(ctx context.Context, id string) (string, error) {
	c, err := u.GetCampaign(ctx, id)
	if err != nil {
		return "", err
	}
	html, err := u.renderer.RenderNewsletter(c.Subject, c.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", port.ErrRender, err)
	}
	return html, nil
}

func validateCampaign(subject, content string) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || strings.TrimSpace(content) == "" {
		return "", port.ErrInvalidCampaign
	}
	return subject, nil
}

// normalizeAddress accepts a bare address only, no display name.
func normalizeAddress(email string) (string, error) {
	email = domain.NormalizeEmail(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", port.ErrInvalidEmail
	}
	return email, nil
}
