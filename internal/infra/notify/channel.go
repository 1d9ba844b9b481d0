package notify

import (
	"context"
	"log/slog"
	"time"

	"order-notifier/internal/domain/order"
	"order-notifier/internal/pkg/config"
)

// Channel delivers one order notification to one destination.
type Channel interface {
	Name() string
	Send(ctx context.Context, n order.Notification) error
}

// SlackOrderChannel posts orders to the order webhook.
type SlackOrderChannel struct {
	webhook *SlackWebhook
	loc     *time.Location
}

func NewSlackOrderChannel(cfg config.Config, logger *slog.Logger) *SlackOrderChannel {
	return &SlackOrderChannel{
		webhook: NewSlackWebhook("order", cfg.Slack.OrderWebhookURL, cfg, logger),
		loc:     cfg.Ledger.Location(),
	}
}

func (c *SlackOrderChannel) Name() string { return "slack" }

func (c *SlackOrderChannel) Send(ctx context.Context, n order.Notification) error {
	return c.webhook.Post(ctx, OrderMessage(n, c.loc))
}

// Announce posts the startup notice to the order channel.
func (c *SlackOrderChannel) Announce(ctx context.Context) error {
	return c.webhook.Post(ctx, StartupMessage())
}
