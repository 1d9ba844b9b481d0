package notify

import (
	"context"
	"log/slog"
	"time"

	"order-notifier/internal/pkg/config"
	"order-notifier/internal/usecase"
)

// LogChannel forwards operational events to the Slack log webhook. Without a webhook it only
// writes them to the process log.
type LogChannel struct {
	webhook *SlackWebhook
	loc     *time.Location
	logger  *slog.Logger
}

func NewLogChannel(cfg config.Config, logger *slog.Logger) *LogChannel {
	ch := &LogChannel{loc: cfg.Ledger.Location(), logger: logger}
	if cfg.Slack.LogEnabled() {
		ch.webhook = NewSlackWebhook("log", cfg.Slack.LogWebhookURL, cfg, logger)
	}
	return ch
}

var (
	_ usecase.RefreshObserver = (*LogChannel)(nil)
	_ usecase.Reporter        = (*LogChannel)(nil)
)

func (c *LogChannel) OnRefresh(ctx context.Context, ev usecase.RefreshEvent) error {
	if ev.Success {
		c.logger.Info("토큰 갱신 완료", "valid_until", ev.ValidUntil)
	} else {
		c.logger.Error("토큰 갱신 실패", "error", ev.Err)
	}
	return c.post(ctx, TokenRefreshMessage(ev, c.loc))
}

func (c *LogChannel) Report(ctx context.Context, msg string) error {
	c.logger.Warn(msg)
	return c.post(ctx, Message{Text: msg})
}

func (c *LogChannel) Shutdown(ctx context.Context, at time.Time) error {
	return c.post(ctx, ShutdownMessage(at, c.loc))
}

func (c *LogChannel) post(ctx context.Context, msg Message) error {
	if c.webhook == nil {
		return nil
	}
	return c.webhook.Post(ctx, msg)
}
