package components

import (
	"context"
	"log/slog"

	"order-notifier/internal/infra/ledger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewPostgresLedger,
	),
)

// NewPostgresLedger returns nil when no database is configured.
func NewPostgresLedger(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger) *ledger.PostgresLedger {
	if pool == nil {
		return nil
	}

	l := ledger.NewPostgresLedger(pool, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return l.EnsureSchema(ctx)
		},
	})
	return l
}
