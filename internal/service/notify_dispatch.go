package service

import (
	"context"

	"github.com/tr013432-design/spazio/internal/notify"
)

// notifyAsync delivers the message in the background. Delivery outlives
// the calling request; the caller never waits on the Telegram API.
func notifyAsync(ctx context.Context, n notify.Notifier, text string) {
	ctx = context.WithoutCancel(ctx)
	go n.Notify(ctx, text)
}
