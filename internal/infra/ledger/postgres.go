package ledger

import (
	"context"
	"log/slog"
	"time"

	"order-notifier/internal/domain/order"
	"order-notifier/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

const schema = `
CREATE TABLE IF NOT EXISTS order_ledger (
    product_order_id TEXT PRIMARY KEY,
    order_id         TEXT NOT NULL DEFAULT '',
    order_date       TIMESTAMPTZ,
    orderer_name     TEXT NOT NULL DEFAULT '',
    orderer_tel      TEXT NOT NULL DEFAULT '',
    product_name     TEXT NOT NULL DEFAULT '',
    product_option   TEXT NOT NULL DEFAULT '',
    quantity         INTEGER NOT NULL DEFAULT 0,
    recorded_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertRow = `
INSERT INTO order_ledger (
    product_order_id, order_id, order_date, orderer_name, orderer_tel, product_name, product_option, quantity
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (product_order_id) DO NOTHING`

const selectIDs = `SELECT product_order_id FROM order_ledger ORDER BY recorded_at, product_order_id`

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Row is one recorded order.
type Row struct {
	ProductOrderID string
	OrderID        string
	OrderDate      time.Time
	OrdererName    string
	OrdererTel     string
	ProductName    string
	ProductOption  string
	Quantity       int
}

// PostgresLedger is an append-only order table. Re-sending an order is a no-op.
type PostgresLedger struct {
	db     DBTX
	logger *slog.Logger
}

func NewPostgresLedger(db DBTX, logger *slog.Logger) *PostgresLedger {
	return &PostgresLedger{db: db, logger: logger}
}

func (l *PostgresLedger) EnsureSchema(ctx context.Context) error {
	if _, err := l.db.Exec(ctx, schema); err != nil {
		return errs.Wrap(err, "failed to create order_ledger table")
	}
	return nil
}

func (l *PostgresLedger) Name() string { return "postgres" }

func (l *PostgresLedger) Send(ctx context.Context, n order.Notification) error {
	var row Row
	if err := copier.Copy(&row, &n); err != nil {
		return errs.Wrap(err, "failed to map notification to ledger row")
	}

	tag, err := l.db.Exec(ctx, insertRow,
		row.ProductOrderID,
		row.OrderID,
		pgtype.Timestamptz{Time: row.OrderDate, Valid: !row.OrderDate.IsZero()},
		row.OrdererName,
		row.OrdererTel,
		row.ProductName,
		row.ProductOption,
		row.Quantity,
	)
	if err != nil {
		return errs.Wrapf(err, "failed to insert order %s", row.ProductOrderID)
	}
	if tag.RowsAffected() == 0 {
		l.logger.Debug("order already in ledger", "product_order_id", row.ProductOrderID)
	}
	return nil
}

// IDs lists recorded product order ids, oldest first.
func (l *PostgresLedger) IDs(ctx context.Context) ([]string, error) {
	rows, err := l.db.Query(ctx, selectIDs)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list ledger ids")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errs.Wrap(err, "failed to scan ledger ids")
	}
	return ids, nil
}
