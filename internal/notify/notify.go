// Package notify shows desktop notifications for messages the assistant
// posts on its own, such as fired reminders and alarms.
package notify

import (
	"context"

	"github.com/gen2brain/beeep"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
)

const maxMessageRunes = 100

const title = "AVRORA"

// Desktop passes messages on to the chat and also shows them as desktop
// notifications, so a reminder is seen even when the chat is hidden.
type Desktop struct {
	next    domain.Notifier
	enabled bool
	send    func(title, message, icon string) error
	log     domain.Logger
}

// New returns a notifier in front of next. When disabled only next is
// called.
func New(next domain.Notifier, enabled bool, logger domain.Logger) *Desktop {
	return &Desktop{next: next, enabled: enabled, send: beeep.Notify, log: log.Named(logger, "notify")}
}

// Notify implements domain.Notifier.
func (d *Desktop) Notify(ctx context.Context, text string, role domain.Role) {
	if d.next != nil {
		d.next.Notify(ctx, text, role)
	}
	if !d.enabled || text == "" {
		return
	}
	if err := d.send(title, truncate(text, maxMessageRunes), ""); err != nil {
		d.log.Warn("notification failed: %v", err)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

var _ domain.Notifier = (*Desktop)(nil)
