package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
	"croevo-console/internal/metrics"
)

// Dispatch sends a draft campaign to the active subscribers and records the
// draft to sent transition. Precondition failures return before any
// transport call. A failed final write is returned together with the report
// of the sends that already happened.
func (u *NewsletterUseCase) Dispatch(ctx context.Context, campaignID string) (*port.DispatchReport, error) {
	report, err := u.dispatch(ctx, campaignID)
	if err != nil {
		metrics.RecordDispatch(errorLabel(err))
		u.logger.Warn("dispatch stopped", slog.String("campaign_id", campaignID), slog.Any("error", err))
		return report, err
	}
	metrics.RecordDispatch(report.Outcome())
	return report, nil
}

func (u *NewsletterUseCase) dispatch(ctx context.Context, campaignID string) (*port.DispatchReport, error) {
	// A sent campaign is rejected as such without contending for the lock.
	if _, err := u.loadDraft(ctx, campaignID); err != nil {
		return nil, err
	}

	release, err := u.locker.AcquireDispatch(ctx, campaignID)
	if errors.Is(err, port.ErrDispatchInProgress) {
		// The holder may have finished between our read and the lock attempt.
		if _, derr := u.loadDraft(ctx, campaignID); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	defer release()

	// Read again under the lock so a dispatch that finished just before us
	// is seen as sent.
	camp, err := u.loadDraft(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	subs, err := u.subscribers.ListActiveSubscribers(ctx)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, port.ErrNoRecipients
	}

	html, err := u.renderer.RenderNewsletter(camp.Subject, camp.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrRender, err)
	}

	recipients := make([]string, len(subs))
	for i, s := range subs {
		recipients[i] = s.Email
	}

	// From here on recipients get mail; a caller that goes away must not
	// leave a half-sent campaign without its terminal write.
	ctx = context.WithoutCancel(ctx)

	u.logger.Info("dispatch started",
		slog.String("campaign_id", camp.ID),
		slog.Int("recipients", len(recipients)),
		slog.Int("batch_size", u.cfg.BatchSize),
	)
	started := u.now()
	report := u.fanOut(ctx, camp.Subject, html, recipients)
	report.CampaignID = camp.ID
	metrics.ObserveDispatchDuration(u.now().Sub(started))

	if err = u.campaigns.MarkCampaignSent(ctx, camp.ID, report.SuccessCount, u.now().UTC()); err != nil {
		return &report, fmt.Errorf("record campaign sent: %w", err)
	}

	u.logger.Info("dispatch finished",
		slog.String("campaign_id", camp.ID),
		slog.Int("sent", report.SuccessCount),
		slog.Int("failed", report.FailureCount),
		slog.Int("batches", report.Batches),
	)
	return &report, nil
}

// loadDraft returns the campaign while it is still a draft.
func (u *NewsletterUseCase) loadDraft(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	camp, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}
	if camp.IsSent() {
		return nil, port.ErrAlreadySent
	}
	return camp, nil
}

// fanOut sends batches strictly one after another. Within a batch every
// recipient is sent concurrently and the batch is joined before the next
// one starts.
func (u *NewsletterUseCase) fanOut(ctx context.Context, subject, html string, recipients []string) port.DispatchReport {
	batches := partition(recipients, u.cfg.BatchSize)
	report := port.DispatchReport{Recipients: len(recipients), Batches: len(batches)}

	for i, batch := range batches {
		if i > 0 && u.cfg.BatchPause > 0 {
			u.sleep(u.cfg.BatchPause)
		}
		success, failure := u.sendBatch(ctx, subject, html, batch)
		report.SuccessCount += success
		report.FailureCount += failure
		metrics.RecordRecipientSends(success, failure)
	}
	return report
}

func (u *NewsletterUseCase) sendBatch(ctx context.Context, subject, html string, batch []string) (success, failure int) {
	errs := make([]error, len(batch))

	var wg sync.WaitGroup
	wg.Add(len(batch))
	for i, to := range batch {
		go func() {
			defer wg.Done()
			errs[i] = u.send(ctx, port.Message{To: to, Subject: subject, HTML: html})
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			failure++
			u.logger.Warn("newsletter send failed", slog.String("to", batch[i]), slog.Any("error", err))
			continue
		}
		success++
	}
	return success, failure
}

// send turns a transport panic into a failure for that recipient only.
func (u *NewsletterUseCase) send(ctx context.Context, msg port.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transport panic: %v", r)
		}
	}()
	return u.transport.Send(ctx, msg)
}

// partition splits items into consecutive chunks of at most size elements.
func partition(items []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	batches := make([][]string, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end])
	}
	return batches
}
