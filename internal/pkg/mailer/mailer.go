package mailer

import (
	"context"
	"log"
)

// OwnerMessage is an outbound notification for the property owner.
// ReplyTo carries the guest's address so the owner can answer directly.
type OwnerMessage struct {
	Subject  string
	HTMLBody string
	ReplyTo  string
}

type Mailer interface {
	SendToOwner(ctx context.Context, msg OwnerMessage) error
}

// DevConsoleMailer writes outbound mail to the log instead of sending
// it. A provider-backed implementation plugs in behind the same
// interface for production.
type DevConsoleMailer struct {
	enabled bool
}

func NewDevConsoleMailer(enabled bool) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled}
}

func (m *DevConsoleMailer) SendToOwner(_ context.Context, msg OwnerMessage) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] owner notification subject=%q reply_to=%s body_bytes=%d",
			msg.Subject, msg.ReplyTo, len(msg.HTMLBody))
	}
	return nil
}
