package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInviteState(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	usedAt := now.Add(-time.Hour)
	usedBy := "p1"

	tests := []struct {
		name string
		inv  Invite
		want InviteState
	}{
		{"active", Invite{ExpiresAt: now.Add(time.Second)}, InviteActive},
		{"expires exactly now", Invite{ExpiresAt: now}, InviteExpired},
		{"past expiry", Invite{ExpiresAt: now.Add(-time.Second)}, InviteExpired},
		{"used", Invite{ExpiresAt: now.Add(time.Hour), UsedBy: &usedBy, UsedAt: &usedAt}, InviteUsed},
		{"used wins over expired", Invite{ExpiresAt: now.Add(-time.Minute), UsedBy: &usedBy, UsedAt: &usedAt}, InviteUsed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inv.State(now))
		})
	}
}

func TestInviteAllowsEmail(t *testing.T) {
	restricted := "Alice@Example.com"

	assert.True(t, Invite{}.AllowsEmail("anyone@example.com"))
	assert.True(t, Invite{Email: &restricted}.AllowsEmail(" alice@example.COM "))
	assert.False(t, Invite{Email: &restricted}.AllowsEmail("bob@example.com"))
}
