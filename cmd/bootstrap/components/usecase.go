package components

import (
	"context"
	"log/slog"

	"order-notifier/internal/infra/ledger"
	"order-notifier/internal/infra/notify"
	"order-notifier/internal/infra/seenstore"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			seenstore.NewMemoryStore,
			fx.As(fx.Self()),
			fx.As(new(usecase.SeenOrderStore)),
		),
		usecase.NewPoller,
	),
	fx.Invoke(SeedSeenOrders),
)

// SeedSeenOrders loads ids already recorded by the ledgers so a restart does not notify them again.
func SeedSeenOrders(
	lc fx.Lifecycle,
	cfg config.Config,
	store *seenstore.MemoryStore,
	csv *notify.CSVLedger,
	pg *ledger.PostgresLedger,
	logger *slog.Logger,
) {
	if !cfg.Ledger.SeedSeen {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ids, err := csv.IDs(ctx)
			if err != nil {
				// an unreadable ledger must not keep the poller from starting
				logger.Warn("CSV台帳の読み込みに失敗しました", "path", cfg.Ledger.CSVPath, "error", err)
			} else {
				logger.Info("CSV台帳から既読IDを読み込みました", "added", store.Seed(ids))
			}

			if pg == nil {
				return nil
			}
			ids, err = pg.IDs(ctx)
			if err != nil {
				logger.Warn("データベース台帳の読み込みに失敗しました", "error", err)
				return nil
			}
			logger.Info("データベース台帳から既読IDを読み込みました", "added", store.Seed(ids))
			return nil
		},
	})
}
