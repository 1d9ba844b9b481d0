package components

import (
	"log/slog"

	"order-notifier/internal/infra/ledger"
	"order-notifier/internal/infra/notify"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/usecase"

	"go.uber.org/fx"
)

// LogChannelModule is shared by every command since the token manager reports refreshes to it.
var LogChannelModule = fx.Module("notify/log",
	fx.Provide(
		fx.Annotate(
			notify.NewLogChannel,
			fx.As(fx.Self()),
			fx.As(new(usecase.RefreshObserver)),
			fx.As(new(usecase.Reporter)),
		),
	),
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		notify.NewSlackOrderChannel,
		notify.NewCSVLedger,
		NewChannels,
		notify.NewDispatcher,
	),
)

// NewChannels assembles the enabled order channels. The CSV ledger is always on.
func NewChannels(
	cfg config.Config,
	slack *notify.SlackOrderChannel,
	csv *notify.CSVLedger,
	pg *ledger.PostgresLedger,
	clk clock.Clock,
	logger *slog.Logger,
) ([]notify.Channel, error) {
	channels := []notify.Channel{csv}

	if cfg.Slack.OrderEnabled() {
		channels = append(channels, slack)
	}
	if pg != nil {
		channels = append(channels, pg)
	}
	if cfg.SMS.Enabled() {
		channels = append(channels, notify.NewSMSSender(cfg, clk, logger))
	}
	if cfg.AlimTalk.Enabled() {
		alimTalk, err := notify.NewAlimTalkSender(cfg, clk, logger)
		if err != nil {
			return nil, err
		}
		channels = append(channels, alimTalk)
	}

	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, ch.Name())
	}
	logger.Info("通知チャネルを構成しました", "channels", names)

	return channels, nil
}
