package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"order-notifier/cmd/bootstrap"
	"order-notifier/cmd/bootstrap/components"
	"order-notifier/internal/infra/notify"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"
	"order-notifier/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the polling loop and the ops HTTP server",
		Long: `Poll for newly paid orders every POLL_INTERVAL and notify each one once.

The ops server (OPS_PORT) exposes /health, /ready, /status and /metrics.
SIGINT or SIGTERM stops the loop and posts a shutdown notice to the log channel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp()
		},
	}
}

func runApp() error {
	app := fx.New(
		bootstrap.Module,
		components.HandlerModule,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
			startPoller,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	slog.Info("アプリケーションが正常に停止しました")
	return nil
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	if !cfg.Ops.Enabled {
		logger.Info("運用サーバーは無効化されています")
		return
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Ops.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("🚀 サーバーを起動します", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errs.Is(err, http.ErrServerClosed) {
					logger.Error("サーバーの起動に失敗しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			return srv.Shutdown(ctx)
		},
	})
}

func startPoller(
	lc fx.Lifecycle,
	cfg config.Config,
	poller usecase.Poller,
	orders *notify.SlackOrderChannel,
	logChannel *notify.LogChannel,
	clk clock.Clock,
	logger *slog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if cfg.Slack.OrderEnabled() {
				if err := orders.Announce(startCtx); err != nil {
					logger.Warn("起動通知の送信に失敗しました", "error", err)
				}
			}

			go func() {
				defer close(done)
				if err := poller.Run(ctx); err != nil {
					logger.Error("ポーリングが異常終了しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				logger.Warn("実行中のポーリングの完了を待たずに停止します")
			}

			if err := logChannel.Shutdown(stopCtx, clk.Now()); err != nil {
				logger.Warn("停止通知の送信に失敗しました", "error", err)
			}
			return nil
		},
	})
}
