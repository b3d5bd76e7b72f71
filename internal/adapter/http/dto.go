package httpadapter

import (
	"time"

	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
)

type principalResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func toPrincipalResponse(p domain.Principal, isAdmin bool) principalResponse {
	return principalResponse{ID: p.ID, Email: p.Email, IsAdmin: isAdmin}
}

type subscriberResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

func toSubscriberResponse(s domain.Subscriber) subscriberResponse {
	return subscriberResponse{ID: s.ID, Email: s.Email, IsActive: s.IsActive, SubscribedAt: s.SubscribedAt}
}

type campaignResponse struct {
	ID        string     `json:"id"`
	Subject   string     `json:"subject"`
	Content   string     `json:"content"`
	Status    string     `json:"status"`
	SentAt    *time.Time `json:"sent_at"`
	SentCount int        `json:"sent_count"`
	CreatedAt time.Time  `json:"created_at"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:        c.ID,
		Subject:   c.Subject,
		Content:   c.Content,
		Status:    string(c.Status),
		SentAt:    c.SentAt,
		SentCount: c.SentCount,
		CreatedAt: c.CreatedAt,
	}
}

type dispatchResponse struct {
	CampaignID   string `json:"campaign_id"`
	Outcome      string `json:"outcome"`
	Recipients   int    `json:"recipients"`
	Batches      int    `json:"batches"`
	SuccessCount int    `json:"success_count"`
	FailureCount int    `json:"failure_count"`
}

func toDispatchResponse(r port.DispatchReport) dispatchResponse {
	return dispatchResponse{
		CampaignID:   r.CampaignID,
		Outcome:      r.Outcome(),
		Recipients:   r.Recipients,
		Batches:      r.Batches,
		SuccessCount: r.SuccessCount,
		FailureCount: r.FailureCount,
	}
}

// inviteResponse is the admin view. Link carries the token.
type inviteResponse struct {
	ID        string     `json:"id"`
	Email     *string    `json:"email"`
	State     string     `json:"state"`
	Link      string     `json:"link"`
	CreatedBy string     `json:"created_by"`
	UsedBy    *string    `json:"used_by"`
	UsedAt    *time.Time `json:"used_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func toInviteResponse(v port.InviteView) inviteResponse {
	return inviteResponse{
		ID:        v.ID,
		Email:     v.Email,
		State:     string(v.State),
		Link:      v.Link,
		CreatedBy: v.CreatedBy,
		UsedBy:    v.UsedBy,
		UsedAt:    v.UsedAt,
		ExpiresAt: v.ExpiresAt,
		CreatedAt: v.CreatedAt,
	}
}

// publicInviteResponse is what the invite page sees before claiming.
type publicInviteResponse struct {
	Email     *string   `json:"email"`
	State     string    `json:"state"`
	ExpiresAt time.Time `json:"expires_at"`
}

type claimResponse struct {
	InviteID    string `json:"invite_id"`
	PrincipalID string `json:"principal_id"`
	Granted     bool   `json:"granted"`
	Token       string `json:"token,omitempty"`
}

func toClaimResponse(c port.ClaimResult) claimResponse {
	return claimResponse{InviteID: c.InviteID, PrincipalID: c.PrincipalID, Granted: c.Granted, Token: c.Session}
}
