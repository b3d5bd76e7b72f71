package port

import "context"

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// MailTransport delivers one message. Any returned error is counted as a
// failure for that recipient only.
type MailTransport interface {
	Send(ctx context.Context, msg Message) error
}

// Renderer produces the outbound newsletter body.
type Renderer interface {
	RenderNewsletter(subject, content string) (string, error)
}
