package notify

import (
	"context"
	"errors"
	"log/slog"

	"order-notifier/internal/domain/order"
	"order-notifier/internal/pkg/errs"
	"order-notifier/internal/pkg/metrics"
	"order-notifier/internal/usecase"
)

type dispatcherImpl struct {
	channels []Channel
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewDispatcher fans every notification out to all channels in order.
// A failing channel does not stop the remaining ones.
func NewDispatcher(channels []Channel, logger *slog.Logger, m *metrics.Metrics) usecase.Dispatcher {
	return &dispatcherImpl{channels: channels, logger: logger, metrics: m}
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, n order.Notification) error {
	var failures []error

	for _, ch := range d.channels {
		if err := ch.Send(ctx, n); err != nil {
			d.metrics.DispatchTotal.WithLabelValues(ch.Name(), metrics.ResultFailure).Inc()
			d.logger.Error("notification channel failed",
				"channel", ch.Name(),
				"product_order_id", n.ProductOrderID,
				"error", err)
			failures = append(failures, errs.Wrapf(err, "%s", ch.Name()))
			continue
		}
		d.metrics.DispatchTotal.WithLabelValues(ch.Name(), metrics.ResultSuccess).Inc()
	}

	if len(failures) == 0 {
		return nil
	}
	return errs.Mark(errors.Join(failures...), errs.ErrDispatch)
}
