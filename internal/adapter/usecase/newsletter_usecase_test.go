package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
	"croevo-console/internal/core/port/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type newsletterFixture struct {
	subs      *mocks.MockSubscriberRepository
	campaigns *mocks.MockCampaignRepository
	locker    *mocks.MockDispatchLocker
	renderer  *mocks.MockRenderer
	transport *mocks.MockMailTransport

	uc       *NewsletterUseCase
	pauses   []time.Duration
	released int
}

func newNewsletterFixture(t *testing.T, batchSize int) *newsletterFixture {
	t.Helper()
	f := &newsletterFixture{
		subs:      mocks.NewMockSubscriberRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		locker:    mocks.NewMockDispatchLocker(t),
		renderer:  mocks.NewMockRenderer(t),
		transport: mocks.NewMockMailTransport(t),
	}
	f.uc = NewNewsletterUseCase(
		f.subs, f.campaigns, f.locker, f.renderer, f.transport,
		configs.Dispatch{BatchSize: batchSize, BatchPause: 100 * time.Millisecond},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	f.uc.sleep = func(d time.Duration) { f.pauses = append(f.pauses, d) }
	return f
}

func (f *newsletterFixture) expectLock(id string) {
	f.locker.EXPECT().
		AcquireDispatch(mock.Anything, id).
		Return(func() { f.released++ }, nil)
}

func draft(id string) *domain.Campaign {
	return &domain.Campaign{ID: id, Subject: "Hello", Content: "Body", Status: domain.CampaignDraft}
}

func subscribers(n int) []domain.Subscriber {
	subs := make([]domain.Subscriber, n)
	for i := range subs {
		subs[i] = domain.Subscriber{ID: strconv.Itoa(i), Email: fmt.Sprintf("user%02d@example.com", i), IsActive: true}
	}
	return subs
}

func recipientIndex(email string) int {
	n, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(email, "user"), "@example.com"))
	return n
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.subs.EXPECT().
		CreateSubscriber(mock.Anything, "bob@example.com").
		Return(&domain.Subscriber{ID: "s1", Email: "bob@example.com", IsActive: true}, nil)

	sub, err := f.uc.Subscribe(context.Background(), "  Bob@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", sub.Email)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	for _, email := range []string{"", "   ", "not-an-email", "Bob <bob@example.com>", "a@b@c"} {
		t.Run(email, func(t *testing.T) {
			f := newNewsletterFixture(t, 10)
			_, err := f.uc.Subscribe(context.Background(), email)
			assert.ErrorIs(t, err, port.ErrInvalidEmail)
		})
	}
}

func TestSubscribeDuplicate(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.subs.EXPECT().
		CreateSubscriber(mock.Anything, "bob@example.com").
		Return(nil, port.ErrAlreadySubscribed)

	_, err := f.uc.Subscribe(context.Background(), "BOB@example.com")
	assert.ErrorIs(t, err, port.ErrAlreadySubscribed)
}

func TestCreateCampaignValidation(t *testing.T) {
	tests := []struct {
		name             string
		subject, content string
	}{
		{"empty subject", "", "body"},
		{"blank subject", "  \t", "body"},
		{"empty content", "subject", ""},
		{"blank content", "subject", "\n  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNewsletterFixture(t, 10)
			_, err := f.uc.CreateCampaign(context.Background(), tt.subject, tt.content)
			assert.ErrorIs(t, err, port.ErrInvalidCampaign)
		})
	}
}

func TestCreateCampaignTrimsSubject(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.campaigns.EXPECT().
		CreateCampaign(mock.Anything, "Launch", "Content\n").
		Return(draft("c1"), nil)

	_, err := f.uc.CreateCampaign(context.Background(), " Launch ", "Content\n")
	require.NoError(t, err)
}

func TestUpdateCampaignRejectsSent(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.campaigns.EXPECT().
		UpdateDraft(mock.Anything, "c1", "New", "Body").
		Return(port.ErrAlreadySent)

	_, err := f.uc.UpdateCampaign(context.Background(), "c1", "New", "Body")
	assert.ErrorIs(t, err, port.ErrAlreadySent)
}

func TestGetCampaignNotFound(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, nil)

	_, err := f.uc.GetCampaign(context.Background(), "missing")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestPreviewCampaignRenderError(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
	f.renderer.EXPECT().RenderNewsletter("Hello", "Body").Return("", errors.New("boom"))

	_, err := f.uc.PreviewCampaign(context.Background(), "c1")
	assert.ErrorIs(t, err, port.ErrRender)
}

// TestDispatchBatches sends 23 recipients in batches of 10, 10 and 3 with
// two failing recipients, and checks that batches never overlap.
func TestDispatchBatches(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.expectLock("c1")
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
	f.subs.EXPECT().ListActiveSubscribers(mock.Anything).Return(subscribers(23), nil)
	f.renderer.EXPECT().RenderNewsletter("Hello", "Body").Return("<html>Body</html>", nil)

	var (
		inFlight, maxInFlight, completed atomic.Int64
		mu                               sync.Mutex
		overlap                          []string
	)
	failing := map[string]bool{"user03@example.com": true, "user15@example.com": true}

	f.transport.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, msg port.Message) error {
			cur := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				prev := maxInFlight.Load()
				if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
					break
				}
			}

			batch := int64(recipientIndex(msg.To) / 10)
			if done := completed.Load(); done < batch*10 {
				mu.Lock()
				overlap = append(overlap, msg.To)
				mu.Unlock()
			}
			time.Sleep(time.Millisecond)
			completed.Add(1)

			if msg.Subject != "Hello" || msg.HTML != "<html>Body</html>" {
				return errors.New("unexpected message")
			}
			if failing[msg.To] {
				return errors.New("mailbox unavailable")
			}
			return nil
		}).
		Times(23)

	f.campaigns.EXPECT().
		MarkCampaignSent(mock.Anything, "c1", 21, mock.AnythingOfType("time.Time")).
		Return(nil)

	report, err := f.uc.Dispatch(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "c1", report.CampaignID)
	assert.Equal(t, 23, report.Recipients)
	assert.Equal(t, 3, report.Batches)
	assert.Equal(t, 21, report.SuccessCount)
	assert.Equal(t, 2, report.FailureCount)
	assert.Equal(t, report.Recipients, report.SuccessCount+report.FailureCount)
	assert.Equal(t, "partial", report.Outcome())

	assert.LessOrEqual(t, maxInFlight.Load(), int64(10))
	assert.Empty(t, overlap, "sends started before the previous batch finished")
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}, f.pauses)
	assert.Equal(t, 1, f.released)
}

func TestDispatchSingleBatchDoesNotPause(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.expectLock("c1")
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
	f.subs.EXPECT().ListActiveSubscribers(mock.Anything).Return(subscribers(10), nil)
	f.renderer.EXPECT().RenderNewsletter("Hello", "Body").Return("<p>Body</p>", nil)
	f.transport.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Times(10)
	f.campaigns.EXPECT().MarkCampaignSent(mock.Anything, "c1", 10, mock.Anything).Return(nil)

	report, err := f.uc.Dispatch(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Batches)
	assert.Equal(t, "complete", report.Outcome())
	assert.Empty(t, f.pauses)
}

func TestDispatchAllFailedStillMarksSent(t *testing.T) {
	f := newNewsletterFixture(t, 2)
	f.expectLock("c1")
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
	f.subs.EXPECT().ListActiveSubscribers(mock.Anything).Return(subscribers(3), nil)
	f.renderer.EXPECT().RenderNewsletter("Hello", "Body").Return("<p>Body</p>", nil)
	f.transport.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("rejected")).Times(3)
	f.campaigns.EXPECT().MarkCampaignSent(mock.Anything, "c1", 0, mock.Anything).Return(nil)

	report, err := f.uc.Dispatch(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, report.FailureCount)
	assert.Equal(t, "failed", report.Outcome())
}

func TestDispatchTransportPanicIsolated(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.expectLock("c1")
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
	f.subs.EXPECT().ListActiveSubscribers(mock.Anything).Return(subscribers(4), nil)
	f.renderer.EXPECT().RenderNewsletter("Hello", "Body").Return("<p>Body</p>", nil)
	f.transport.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msg port.Message) error {
			if msg.To == "user01@example.com" {
				panic("transport bug")
			}
			return nil
		}).
		Times(4)
	f.campaigns.EXPECT().MarkCampaignSent(mock.Anything, "c1", 3, mock.Anything).Return(nil)

	report, err := f.uc.Dispatch(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
}

// TestDispatchSurvivesCallerCancel cancels the request context up front;
// once the lock is held the sends and the final write must still complete.
func TestDispatchSurvivesCallerCancel(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.expectLock("c1")
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
	f.subs.EXPECT().ListActiveSubscribers(mock.Anything).Return(subscribers(2), nil)
	f.renderer.EXPECT().RenderNewsletter("Hello", "Body").Return("<p>Body</p>", nil)
	f.transport.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ port.Message) error { return ctx.Err() }).
		Times(2)
	f.campaigns.EXPECT().
		MarkCampaignSent(mock.Anything, "c1", 2, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ int, _ time.Time) error { return ctx.Err() })

	report, err := f.uc.Dispatch(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, report.SuccessCount)
}

func TestDispatchPreconditions(t *testing.T) {
	sent := draft("c1")
	sentAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	sent.Status, sent.SentAt, sent.SentCount = domain.CampaignSent, &sentAt, 5

	tests := []struct {
		name   string
		setup  func(f *newsletterFixture)
		want   error
		locked bool
	}{
		{
			name: "already sent",
			setup: func(f *newsletterFixture) {
				f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(sent, nil)
			},
			want: port.ErrAlreadySent,
		},
		{
			name: "not found",
			setup: func(f *newsletterFixture) {
				f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(nil, nil)
			},
			want: port.ErrCampaignNotFound,
		},
		{
			name: "no recipients",
			setup: func(f *newsletterFixture) {
				f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
				f.expectLock("c1")
				f.subs.EXPECT().ListActiveSubscribers(mock.Anything).Return([]domain.Subscriber{}, nil)
			},
			want:   port.ErrNoRecipients,
			locked: true,
		},
		{
			name: "render error",
			setup: func(f *newsletterFixture) {
				f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
				f.expectLock("c1")
				f.subs.EXPECT().ListActiveSubscribers(mock.Anything).Return(subscribers(3), nil)
				f.renderer.EXPECT().RenderNewsletter("Hello", "Body").Return("", errors.New("template: bad"))
			},
			want:   port.ErrRender,
			locked: true,
		},
		{
			name: "in progress",
			setup: func(f *newsletterFixture) {
				f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
				f.locker.EXPECT().AcquireDispatch(mock.Anything, "c1").Return(nil, port.ErrDispatchInProgress)
			},
			want: port.ErrDispatchInProgress,
		},
		{
			name: "sent while the lock was held elsewhere",
			setup: func(f *newsletterFixture) {
				f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil).Once()
				f.locker.EXPECT().AcquireDispatch(mock.Anything, "c1").Return(nil, port.ErrDispatchInProgress)
				f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(sent, nil).Once()
			},
			want: port.ErrAlreadySent,
		},
		{
			name: "sent between check and lock",
			setup: func(f *newsletterFixture) {
				f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil).Once()
				f.expectLock("c1")
				f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(sent, nil).Once()
			},
			want:   port.ErrAlreadySent,
			locked: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No transport or MarkCampaignSent expectations: any call fails the test.
			f := newNewsletterFixture(t, 10)
			tt.setup(f)

			report, err := f.uc.Dispatch(context.Background(), "c1")
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, report)
			if tt.locked {
				assert.Equal(t, 1, f.released)
			} else {
				assert.Zero(t, f.released)
			}
		})
	}
}

// TestDispatchSentCampaignSkipsLock covers a second click after the first
// dispatch finished: the caller learns AlreadySent without touching the lock.
func TestDispatchSentCampaignSkipsLock(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	sentAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(&domain.Campaign{
		ID: "c1", Subject: "Hello", Content: "Body", Status: domain.CampaignSent, SentAt: &sentAt, SentCount: 3,
	}, nil)

	_, err := f.uc.Dispatch(context.Background(), "c1")
	assert.ErrorIs(t, err, port.ErrAlreadySent)
	f.locker.AssertNotCalled(t, "AcquireDispatch", mock.Anything, mock.Anything)
}

func TestDispatchFinalWriteFailureKeepsReport(t *testing.T) {
	f := newNewsletterFixture(t, 10)
	f.expectLock("c1")
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft("c1"), nil)
	f.subs.EXPECT().ListActiveSubscribers(mock.Anything).Return(subscribers(2), nil)
	f.renderer.EXPECT().RenderNewsletter("Hello", "Body").Return("<p>Body</p>", nil)
	f.transport.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.campaigns.EXPECT().MarkCampaignSent(mock.Anything, "c1", 2, mock.Anything).Return(errors.New("conn reset"))

	report, err := f.uc.Dispatch(context.Background(), "c1")
	require.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 2, report.SuccessCount)
}

func TestPartition(t *testing.T) {
	items := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = strconv.Itoa(i)
		}
		return out
	}
	tests := []struct {
		n, size int
		want    []int
	}{
		{n: 0, size: 10, want: []int{}},
		{n: 3, size: 10, want: []int{3}},
		{n: 10, size: 10, want: []int{10}},
		{n: 23, size: 10, want: []int{10, 10, 3}},
		{n: 3, size: 1, want: []int{1, 1, 1}},
		{n: 2, size: 0, want: []int{1, 1}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.size), func(t *testing.T) {
			batches := partition(items(tt.n), tt.size)
			sizes := make([]int, 0, len(batches))
			var flat []string
			for _, b := range batches {
				sizes = append(sizes, len(b))
				flat = append(flat, b...)
			}
			assert.Equal(t, tt.want, sizes)
			if tt.n > 0 {
				assert.Equal(t, items(tt.n), flat)
			}
		})
	}
}
