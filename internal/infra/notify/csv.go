package notify

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"order-notifier/internal/domain/order"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"
)

var csvHeader = []string{"주문ID", "주문일자", "주문자 이름", "주문자 전화번호", "상품명", "상품 옵션"}

// CSVLedger appends one row per product order to a local CSV file.
// Ids already present in the first column are skipped.
type CSVLedger struct {
	path   string
	loc    *time.Location
	logger *slog.Logger

	mu sync.Mutex
}

func NewCSVLedger(cfg config.Config, logger *slog.Logger) *CSVLedger {
	return &CSVLedger{
		path:   cfg.Ledger.CSVPath,
		loc:    cfg.Ledger.Location(),
		logger: logger,
	}
}

func (l *CSVLedger) Name() string { return "csv" }

func (l *CSVLedger) Send(_ context.Context, n order.Notification) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids, err := l.readIDs()
	if err != nil {
		return err
	}
	if _, ok := ids[n.ProductOrderID]; ok {
		l.logger.Debug("order already in csv ledger", "product_order_id", n.ProductOrderID)
		return nil
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.Wrapf(err, "open csv ledger %s", l.path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if len(ids) == 0 {
		info, err := f.Stat()
		if err != nil {
			return errs.Wrap(err, "stat csv ledger")
		}
		if info.Size() == 0 {
			if err := w.Write(csvHeader); err != nil {
				return errs.Wrap(err, "write csv header")
			}
		}
	}

	orderDate := ""
	if !n.OrderDate.IsZero() {
		orderDate = n.OrderDate.In(l.loc).Format(displayTimeLayout)
	}
	if err := w.Write([]string{
		n.ProductOrderID,
		orderDate,
		n.OrdererName,
		n.OrdererTel,
		n.ProductName,
		n.ProductOption,
	}); err != nil {
		return errs.Wrap(err, "write csv row")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errs.Wrap(err, "flush csv ledger")
	}
	return f.Sync()
}

// IDs lists the product order ids recorded so far, in file order.
func (l *CSVLedger) IDs(_ context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var ids []string
	err := l.scan(func(id string) { ids = append(ids, id) })
	return ids, err
}

func (l *CSVLedger) readIDs() (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	err := l.scan(func(id string) { ids[id] = struct{}{} })
	return ids, err
}

func (l *CSVLedger) scan(fn func(id string)) error {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errs.Wrapf(err, "open csv ledger %s", l.path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errs.Wrapf(err, "read csv ledger %s", l.path)
		}
		if first {
			first = false
			if len(record) > 0 && record[0] == csvHeader[0] {
				continue
			}
		}
		if len(record) > 0 && record[0] != "" {
			fn(record[0])
		}
	}
}
