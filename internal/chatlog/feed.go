package chatlog

import (
	"context"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
)

// Feed posts chat messages. Each message is persisted first and then
// handed to every display in order.
type Feed struct {
	chat     domain.ChatLog
	displays []domain.Notifier
	log      domain.Logger
}

// NewFeed returns a feed writing to chat. chat may be nil when nothing is
// persisted.
func NewFeed(chat domain.ChatLog, logger domain.Logger, displays ...domain.Notifier) *Feed {
	return &Feed{chat: chat, displays: displays, log: log.Named(logger, "chat")}
}

// Notify implements domain.Notifier. A failed write is logged and the
// message is still displayed.
func (f *Feed) Notify(ctx context.Context, text string, role domain.Role) {
	if text == "" {
		return
	}
	if f.chat != nil {
		if _, err := f.chat.Append(ctx, role, text); err != nil {
			f.log.Error("append %s message: %v", role, err)
		}
	}
	for _, d := range f.displays {
		d.Notify(ctx, text, role)
	}
}

// AddDisplay registers another display. Not safe to call while messages
// are being posted.
func (f *Feed) AddDisplay(d domain.Notifier) {
	f.displays = append(f.displays, d)
}

var _ domain.Notifier = (*Feed)(nil)
