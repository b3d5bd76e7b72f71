// Package metrics registers the Prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DispatchTotal counts dispatch attempts by outcome: complete, partial,
	// failed, or the precondition error code that stopped them.
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_dispatch_total",
			Help: "Newsletter dispatch attempts by outcome",
		},
		[]string{"outcome"},
	)

	// RecipientSends counts per-recipient transport results.
	RecipientSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_recipient_sends_total",
			Help: "Per-recipient newsletter sends by result",
		},
		[]string{"result"}, // success, failure
	)

	// DispatchDuration observes the wall time of dispatches that reached
	// the transport.
	DispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsletter_dispatch_duration_seconds",
			Help:    "Duration of newsletter dispatch fan-out",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
		},
	)

	// InviteClaims counts invite claim attempts by outcome.
	InviteClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_invite_claims_total",
			Help: "Admin invite claim attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordDispatch increments the dispatch counter.
func RecordDispatch(outcome string) {
	DispatchTotal.WithLabelValues(outcome).Inc()
}

// RecordRecipientSends adds a batch of per-recipient results.
func RecordRecipientSends(success, failure int) {
	RecipientSends.WithLabelValues("success").Add(float64(success))
	RecipientSends.WithLabelValues("failure").Add(float64(failure))
}

// ObserveDispatchDuration records the fan-out wall time.
func ObserveDispatchDuration(d time.Duration) {
	DispatchDuration.Observe(d.Seconds())
}

// RecordInviteClaim increments the claim counter.
func RecordInviteClaim(outcome string) {
	InviteClaims.WithLabelValues(outcome).Inc()
}
