package commerce

import (
	"log/slog"
	"time"

	"order-notifier/internal/infra"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/metrics"

	"github.com/go-resty/resty/v2"
)

const (
	tokenPath       = "/external/v1/oauth2/token"
	lastChangedPath = "/external/v1/pay-order/seller/product-orders/last-changed-statuses"
	queryPath       = "/external/v1/pay-order/seller/product-orders/query"

	// returned by the API gateway for a missing, invalid or expired bearer token
	codeAuthRejected = "GW.AUTHN"

	userAgent = "order-notifier/1.0"
)

// NewHTTPClient builds the resty client shared by the token endpoint and the order client.
func NewHTTPClient(cfg config.Config) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.Commerce.BaseURL).
		SetTimeout(cfg.HTTP.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
}

func classify(logger *slog.Logger, resp *resty.Response, msg string) error {
	status := resp.StatusCode()
	code := ""
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr != nil {
		code = apiErr.Code
		if apiErr.Message != "" {
			msg += ": " + apiErr.Message
		}
	}

	kind := infra.KindAPI
	if status == 401 || code == codeAuthRejected {
		kind = infra.KindAuthRejected
	}
	return infra.WrapClientErr(logger, kind, status, code, msg, nil)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case infra.IsKind(err, infra.KindTransport):
		return "transport"
	case infra.IsKind(err, infra.KindAuthRejected):
		return "auth_rejected"
	case infra.IsKind(err, infra.KindDecode):
		return "decode"
	default:
		return "api"
	}
}

func observe(m *metrics.Metrics, endpoint string, started time.Time, err error) {
	m.APIRequestsTotal.WithLabelValues(endpoint, outcome(err)).Inc()
	m.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}
