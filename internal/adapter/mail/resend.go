// Package mail holds the outbound port.MailTransport implementations.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/port"
)

// maxErrorBody caps how much of a provider error response ends up in the
// returned error.
const maxErrorBody = 1 << 10

// ResendTransport sends one email per call through the Resend HTTP API.
type ResendTransport struct {
	client   *http.Client
	endpoint string
	apiKey   string
	from     string
}

// NewResendTransport builds a transport from configuration. A nil client
// gets one with the configured timeout.
func NewResendTransport(cfg configs.Mail, client *http.Client) *ResendTransport {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &ResendTransport{
		client:   client,
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		from:     cfg.From,
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers msg. Any non-2xx response is an error carrying the
// provider's response body.
func (t *ResendTransport) Send(ctx context.Context, msg port.Message) error {
	body, err := json.Marshal(resendRequest{
		From:    t.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("send email: provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
