package notify

import (
	"context"
	"log/slog"
	"net/http"

	"order-notifier/internal/infra"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// SlackWebhook posts messages to one incoming webhook. A circuit breaker stops hammering a webhook
// that keeps failing; while open, Post fails fast with ErrTransport.
type SlackWebhook struct {
	name    string
	url     string
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

func NewSlackWebhook(name, url string, cfg config.Config, logger *slog.Logger) *SlackWebhook {
	failures := cfg.Slack.BreakerFailures
	if failures == 0 {
		failures = 1
	}
	settings := gobreaker.Settings{
		Name:        "slack-" + name,
		MaxRequests: 0,
		Interval:    0,
		Timeout:     cfg.Slack.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool { return counts.ConsecutiveFailures >= failures },
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			logger.Warn("Slack circuit breaker state changed", "breaker", breaker, "from", from.String(), "to", to.String())
		},
	}

	return &SlackWebhook{
		name: name,
		url:  url,
		client: resty.New().
			SetTimeout(cfg.HTTP.Timeout).
			SetHeader("Content-Type", "application/json"),
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

func (w *SlackWebhook) Post(ctx context.Context, msg Message) error {
	_, err := w.breaker.Execute(func() (interface{}, error) {
		return nil, w.post(ctx, msg)
	})
	if errs.Is(err, gobreaker.ErrOpenState) || errs.Is(err, gobreaker.ErrTooManyRequests) {
		return errs.Mark(errs.Wrapf(err, "slack %s webhook", w.name), errs.ErrTransport)
	}
	return err
}

func (w *SlackWebhook) post(ctx context.Context, msg Message) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post(w.url)
	if err != nil {
		return infra.WrapClientErr(w.logger, infra.KindTransport, 0, "", "POST slack "+w.name+" webhook", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return infra.WrapClientErr(w.logger, infra.KindAPI, resp.StatusCode(), "", "POST slack "+w.name+" webhook: "+resp.String(), nil)
	}

	w.logger.Debug("Slack message sent", "webhook", w.name)
	return nil
}
