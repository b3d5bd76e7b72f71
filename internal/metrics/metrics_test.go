package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRecipientSends(t *testing.T) {
	success := testutil.ToFloat64(RecipientSends.WithLabelValues("success"))
	failure := testutil.ToFloat64(RecipientSends.WithLabelValues("failure"))

	RecordRecipientSends(8, 2)

	assert.Equal(t, success+8, testutil.ToFloat64(RecipientSends.WithLabelValues("success")))
	assert.Equal(t, failure+2, testutil.ToFloat64(RecipientSends.WithLabelValues("failure")))
}

func TestRecordDispatchAndClaims(t *testing.T) {
	before := testutil.ToFloat64(DispatchTotal.WithLabelValues("partial"))
	RecordDispatch("partial")
	assert.Equal(t, before+1, testutil.ToFloat64(DispatchTotal.WithLabelValues("partial")))

	before = testutil.ToFloat64(InviteClaims.WithLabelValues("granted"))
	RecordInviteClaim("granted")
	assert.Equal(t, before+1, testutil.ToFloat64(InviteClaims.WithLabelValues("granted")))

	ObserveDispatchDuration(250 * time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(DispatchDuration))
}
