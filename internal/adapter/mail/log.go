package mail

import (
	"context"
	"log/slog"

	"croevo-console/internal/core/port"
)

// LogTransport logs messages instead of sending them. Used when no provider
// is configured.
type LogTransport struct {
	logger *slog.Logger
}

// NewLogTransport returns a transport writing to logger.
func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

// Send always succeeds.
func (t *LogTransport) Send(ctx context.Context, msg port.Message) error {
	t.logger.InfoContext(ctx, "mail not sent, log transport",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return nil
}
