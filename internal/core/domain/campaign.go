package domain

import "time"

// CampaignStatus is the lifecycle state of a newsletter campaign.
type CampaignStatus string

const (
	// CampaignDraft campaigns may be edited and dispatched.
	CampaignDraft CampaignStatus = "draft"
	// CampaignSent is terminal. A sent campaign is never edited or re-sent.
	CampaignSent CampaignStatus = "sent"
)

// Campaign represents a newsletter draft and, once dispatched, its sent record.
// SentAt is set if and only if Status is CampaignSent. SentCount holds the
// number of recipients the transport accepted and may be zero when every
// send failed.
type Campaign struct {
	ID        string
	Subject   string
	Content   string // plain body, newlines preserved when rendered
	Status    CampaignStatus
	SentAt    *time.Time
	SentCount int
	CreatedAt time.Time
}

// IsSent reports whether the campaign reached its terminal state.
func (c Campaign) IsSent() bool {
	return c.Status == CampaignSent
}
