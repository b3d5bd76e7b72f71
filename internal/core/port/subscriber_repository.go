package port

import (
	"context"

	"croevo-console/internal/core/domain"
)

// SubscriberRepository is the Subscriber Store. Emails arrive normalized;
// the store enforces uniqueness and reports ErrAlreadySubscribed on a
// duplicate insert.
type SubscriberRepository interface {
	// CreateSubscriber inserts an active subscriber.
	CreateSubscriber(ctx context.Context, email string) (*domain.Subscriber, error)
	// ListSubscribers returns every subscriber, newest first.
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	// ListActiveSubscribers returns a point-in-time snapshot of the
	// subscribers eligible for dispatch.
	ListActiveSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	// SetSubscriberActive flips the active flag. ErrSubscriberNotFound when
	// no row matches.
	SetSubscriberActive(ctx context.Context, id string, active bool) error
	// DeleteSubscriber hard deletes a subscriber.
	DeleteSubscriber(ctx context.Context, id string) error
}
