package commerce

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"order-notifier/internal/domain/order"
	"order-notifier/internal/domain/token"
	"order-notifier/internal/infra"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"
	"order-notifier/internal/pkg/metrics"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "order-notifier/commerce"

	// lastChangedFrom is sent with millisecond precision and a numeric offset
	lastChangedFromLayout = "2006-01-02T15:04:05.000Z07:00"
)

// TokenSource is the part of the token manager the order client depends on.
type TokenSource interface {
	GetValidToken(ctx context.Context) (token.Token, error)
	Refresh(ctx context.Context) (token.Token, error)
}

type OrderClient struct {
	client  *resty.Client
	tokens  TokenSource
	clock   clock.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer

	maxRetries int
	retryDelay time.Duration
	maxPages   int
	location   *time.Location
}

func NewOrderClient(
	cfg config.Config,
	client *resty.Client,
	tokens TokenSource,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
	tp trace.TracerProvider,
) *OrderClient {
	return &OrderClient{
		client:     client,
		tokens:     tokens,
		clock:      clk,
		logger:     logger,
		metrics:    m,
		tracer:     tp.Tracer(tracerName),
		maxRetries: cfg.Commerce.MaxRetries,
		retryDelay: cfg.Commerce.RetryDelay,
		maxPages:   cfg.Commerce.MaxPages,
		location:   cfg.Ledger.Location(),
	}
}

// ListRecentPaidOrders returns orders whose status changed to PAYED within the lookback window.
// Auth rejections and transport failures are retried up to maxRetries times; when they are
// exhausted, or on any other failure, it returns an empty slice together with the error.
func (c *OrderClient) ListRecentPaidOrders(ctx context.Context, lookback time.Duration) ([]order.Summary, error) {
	ctx, span := c.tracer.Start(ctx, "commerce.ListRecentPaidOrders")
	defer span.End()

	from := c.clock.Now().Add(-lookback).In(c.location).Format(lastChangedFromLayout)
	params := map[string]string{
		"lastChangedFrom": from,
		"lastChangedType": string(order.StatusPayed),
	}
	span.SetAttributes(attribute.String("last_changed_from", from))

	var summaries []order.Summary
	for page := 1; ; page++ {
		data, err := c.listPage(ctx, params)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return []order.Summary{}, err
		}
		summaries = append(summaries, c.toSummaries(data.LastChangeStatuses)...)

		if data.More == nil || data.More.MoreFrom == "" {
			break
		}
		if page >= c.maxPages {
			c.logger.Warn("last-changed-statuses has more pages than allowed; remaining orders are picked up next tick",
				"max_pages", c.maxPages, "more_from", data.More.MoreFrom)
			break
		}
		params = map[string]string{
			"lastChangedFrom": data.More.MoreFrom,
			"lastChangedType": string(order.StatusPayed),
			"moreSequence":    data.More.MoreSequence,
		}
	}

	span.SetAttributes(attribute.Int("orders.listed", len(summaries)))
	if summaries == nil {
		summaries = []order.Summary{}
	}
	return summaries, nil
}

func (c *OrderClient) listPage(ctx context.Context, params map[string]string) (*lastChangedData, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := c.wait(ctx); err != nil {
				return nil, errs.Mark(errs.Wrap(err, "retry wait interrupted"), errs.ErrTransport)
			}
		}

		tok, err := c.tokens.GetValidToken(ctx)
		if err != nil {
			lastErr = err
			c.logger.Warn("no usable access token for last-changed-statuses", "attempt", attempt, "error", err)
			continue
		}

		data, err := c.getLastChanged(ctx, tok.AccessToken(), params)
		if err == nil {
			return data, nil
		}
		lastErr = err

		switch {
		case infra.IsKind(err, infra.KindAuthRejected):
			if attempt < c.maxRetries {
				c.logger.Info("access token rejected; refreshing before retry", "attempt", attempt)
				if _, rerr := c.tokens.Refresh(ctx); rerr != nil {
					c.logger.Warn("forced token refresh failed", "attempt", attempt, "error", rerr)
				}
			}
		case infra.IsKind(err, infra.KindTransport):
			c.logger.Info("transport failure; retrying", "attempt", attempt)
		default:
			return nil, err
		}
	}

	return nil, errs.Wrapf(lastErr, "last-changed-statuses failed after %d attempts", c.maxRetries+1)
}

func (c *OrderClient) getLastChanged(ctx context.Context, accessToken string, params map[string]string) (_ *lastChangedData, err error) {
	started := time.Now()
	defer func() { observe(c.metrics, "last-changed-statuses", started, err) }()

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParams(params).
		SetResult(&lastChangedResponse{}).
		SetError(&apiError{}).
		Get(lastChangedPath)
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindTransport, 0, "", "GET last-changed-statuses", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, classify(c.logger, resp, "GET last-changed-statuses")
	}

	body, ok := resp.Result().(*lastChangedResponse)
	if !ok || body == nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindDecode, resp.StatusCode(), "", "last-changed-statuses body", nil)
	}
	return &body.Data, nil
}

// FetchOrderDetails queries all ids in one request, single attempt.
// The result is sorted by order date, latest first.
func (c *OrderClient) FetchOrderDetails(ctx context.Context, productOrderIDs []string) (_ []order.Detail, err error) {
	if len(productOrderIDs) == 0 {
		return []order.Detail{}, nil
	}

	ctx, span := c.tracer.Start(ctx, "commerce.FetchOrderDetails",
		trace.WithAttributes(attribute.Int("orders.requested", len(productOrderIDs))))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tok, err := c.tokens.GetValidToken(ctx)
	if err != nil {
		return []order.Detail{}, err
	}

	started := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(tok.AccessToken()).
		SetBody(queryRequest{ProductOrderIDs: productOrderIDs}).
		SetResult(&queryResponse{}).
		SetError(&apiError{}).
		Post(queryPath)
	if err != nil {
		err = infra.WrapClientErr(c.logger, infra.KindTransport, 0, "", "POST product-orders/query", err)
		observe(c.metrics, "query", started, err)
		return []order.Detail{}, err
	}
	if resp.StatusCode() != http.StatusOK {
		err = classify(c.logger, resp, "POST product-orders/query")
		observe(c.metrics, "query", started, err)
		return []order.Detail{}, err
	}
	observe(c.metrics, "query", started, nil)

	body, ok := resp.Result().(*queryResponse)
	if !ok || body == nil {
		return []order.Detail{}, infra.WrapClientErr(c.logger, infra.KindDecode, resp.StatusCode(), "", "product-orders/query body", nil)
	}

	details := make([]order.Detail, 0, len(body.Data))
	for _, info := range body.Data {
		details = append(details, c.toDetail(info))
	}
	order.SortByOrderDateDesc(details)
	return details, nil
}

func (c *OrderClient) toSummaries(statuses []lastChangeStatus) []order.Summary {
	out := make([]order.Summary, 0, len(statuses))
	for _, s := range statuses {
		changedAt, err := order.ParseTime(s.LastChangedDate)
		if err != nil {
			c.logger.Debug("unparseable lastChangedDate", "product_order_id", s.ProductOrderID, "error", err)
		}
		out = append(out, order.Summary{
			ProductOrderID:    s.ProductOrderID,
			OrderID:           s.OrderID,
			LastChangedStatus: order.Status(s.LastChangedType),
			LastChangedAt:     changedAt,
		})
	}
	return out
}

func (c *OrderClient) toDetail(info productOrderInfo) order.Detail {
	orderDate, err := order.ParseTime(info.Order.OrderDate)
	if err != nil {
		c.logger.Warn("unparseable orderDate", "product_order_id", info.ProductOrder.ProductOrderID, "error", err)
	}
	return order.Detail{
		ProductOrderID: info.ProductOrder.ProductOrderID,
		OrderID:        info.Order.OrderID,
		OrderDate:      orderDate,
		OrdererName:    info.Order.OrdererName,
		OrdererTel:     info.Order.OrdererTel,
		ProductName:    info.ProductOrder.ProductName,
		ProductOption:  info.ProductOrder.ProductOption,
		Quantity:       info.ProductOrder.Quantity,
	}
}

func (c *OrderClient) wait(ctx context.Context) error {
	if c.retryDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
