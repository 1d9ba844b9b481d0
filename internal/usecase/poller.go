package usecase

//go:generate mockgen -source=poller.go -destination=../../tests/mock/usecase/poller.go -package=usecasemock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"order-notifier/internal/domain/order"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"
	"order-notifier/internal/pkg/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "order-notifier/usecase"

// Poller runs the order polling loop.
type Poller interface {
	// Tick runs one iteration. Errors and panics are contained in the result.
	Tick(ctx context.Context) TickResult
	// Run ticks until ctx is cancelled.
	Run(ctx context.Context) error
	LastTick() (TickResult, bool)
}

type TickResult struct {
	TickID     string
	StartedAt  time.Time
	Duration   time.Duration
	Listed     int
	NewIDs     []string
	Fetched    int
	Dispatched int
	// new ids whose dispatch failed; they stay in the seen set
	Failed []string
	// new ids the detail query did not return
	Missing  []string
	Err      error
	Panicked bool
}

func (r TickResult) Noop() bool {
	return r.Err == nil && len(r.NewIDs) == 0
}

func (r TickResult) result() string {
	switch {
	case r.Panicked:
		return metrics.ResultPanic
	case r.Err != nil || len(r.Failed) > 0:
		return metrics.ResultError
	case len(r.NewIDs) == 0:
		return metrics.ResultNoop
	default:
		return metrics.ResultOK
	}
}

type pollerImpl struct {
	source     OrderSource
	seen       SeenOrderStore
	dispatcher Dispatcher
	reporter   Reporter
	clock      clock.Clock
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer

	interval time.Duration
	lookback time.Duration

	mu      sync.RWMutex
	last    TickResult
	hasLast bool
}

func NewPoller(
	cfg config.Config,
	source OrderSource,
	seen SeenOrderStore,
	dispatcher Dispatcher,
	reporter Reporter,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
	tp trace.TracerProvider,
) Poller {
	return &pollerImpl{
		source:     source,
		seen:       seen,
		dispatcher: dispatcher,
		reporter:   reporter,
		clock:      clk,
		logger:     logger,
		metrics:    m,
		tracer:     tp.Tracer(tracerName),
		interval:   cfg.Poller.Interval,
		lookback:   cfg.Commerce.Lookback,
	}
}

func (p *pollerImpl) Run(ctx context.Context) error {
	p.logger.Info("order polling started", "interval", p.interval, "lookback", p.lookback)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("order polling stopped")
			return nil
		case <-timer.C:
		}

		p.Tick(ctx)
		timer.Reset(p.interval)
	}
}

func (p *pollerImpl) LastTick() (TickResult, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last, p.hasLast
}

func (p *pollerImpl) Tick(ctx context.Context) (result TickResult) {
	result.TickID = uuid.NewString()
	result.StartedAt = p.clock.Now()
	logger := p.logger.With(slog.String("tick_id", result.TickID))

	ctx, span := p.tracer.Start(ctx, "poller.tick", trace.WithAttributes(attribute.String("tick_id", result.TickID)))

	defer func() {
		if r := recover(); r != nil {
			err := errs.Newf("panic during tick: %v", r)
			result.Err = err
			result.Panicked = true
			logger.Error("tick panicked", "error", err, "stack", errs.ExtractStackLines(err, 12))
			p.report(ctx, logger, fmt.Sprintf("주문 처리 중 오류 발생: %v", r))
		}
		p.finish(span, &result)
	}()

	summaries, err := p.source.ListRecentPaidOrders(ctx, p.lookback)
	result.Listed = len(summaries)
	if err != nil {
		result.Err = err
		logger.Error("listing paid orders failed", "error", err)
		p.report(ctx, logger, "새로운 주문 목록을 가져오는데 실패했습니다: "+err.Error())
		return result
	}
	if len(summaries) == 0 {
		return result
	}

	// Marked before fetch and dispatch: a failure below never makes an id eligible again.
	newIDs, err := p.seen.MarkNew(ctx, order.IDs(summaries))
	if err != nil {
		result.Err = err
		logger.Error("marking seen orders failed", "error", err)
		return result
	}
	p.metrics.SeenOrders.Set(float64(p.seen.Len()))
	result.NewIDs = newIDs
	if len(newIDs) == 0 {
		return result
	}
	p.metrics.NewOrdersTotal.Add(float64(len(newIDs)))
	logger.Info("new paid orders detected", "count", len(newIDs), "product_order_ids", newIDs)

	details, err := p.source.FetchOrderDetails(ctx, newIDs)
	if err != nil {
		result.Err = err
		result.Missing = newIDs
		logger.Error("fetching order details failed; orders will not be retried",
			"error", err, "product_order_ids", newIDs)
		p.report(ctx, logger, fmt.Sprintf("주문 상세 정보를 가져오는데 실패했습니다 (%s): %v", strings.Join(newIDs, ", "), err))
		return result
	}
	result.Fetched = len(details)

	pending := make(map[string]struct{}, len(newIDs))
	for _, id := range newIDs {
		pending[id] = struct{}{}
	}

	for _, d := range details {
		if _, ok := pending[d.ProductOrderID]; !ok {
			logger.Warn("skipping detail not requested in this tick", "product_order_id", d.ProductOrderID)
			continue
		}
		delete(pending, d.ProductOrderID)

		if err := p.dispatcher.Dispatch(ctx, order.NewNotification(d)); err != nil {
			result.Failed = append(result.Failed, d.ProductOrderID)
			logger.Error("order notification failed; recover manually",
				"product_order_id", d.ProductOrderID,
				"order_id", d.OrderID,
				"orderer_name", d.OrdererName,
				"error", err,
			)
			p.report(ctx, logger, fmt.Sprintf("주문 알림 전송 실패 (주문ID %s): %v", d.ProductOrderID, err))
			continue
		}
		result.Dispatched++
	}

	for _, id := range newIDs {
		if _, ok := pending[id]; ok {
			result.Missing = append(result.Missing, id)
		}
	}
	if len(result.Missing) > 0 {
		logger.Warn("order details missing; recover manually", "product_order_ids", result.Missing)
	}

	return result
}

func (p *pollerImpl) finish(span trace.Span, result *TickResult) {
	result.Duration = p.clock.Now().Sub(result.StartedAt)

	span.SetAttributes(
		attribute.Int("orders.listed", result.Listed),
		attribute.Int("orders.new", len(result.NewIDs)),
		attribute.Int("orders.dispatched", result.Dispatched),
		attribute.Int("orders.failed", len(result.Failed)),
	)
	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Err.Error())
	}
	span.End()

	p.metrics.TicksTotal.WithLabelValues(result.result()).Inc()
	p.metrics.TickDuration.Observe(result.Duration.Seconds())

	p.mu.Lock()
	p.last = *result
	p.hasLast = true
	p.mu.Unlock()
}

func (p *pollerImpl) report(ctx context.Context, logger *slog.Logger, msg string) {
	if p.reporter == nil {
		return
	}
	if err := p.reporter.Report(ctx, msg); err != nil {
		logger.Warn("reporting to log channel failed", "error", err)
	}
}
