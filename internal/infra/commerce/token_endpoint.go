package commerce

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"order-notifier/internal/infra"
	"order-notifier/internal/pkg/metrics"
	"order-notifier/internal/usecase"

	"github.com/go-resty/resty/v2"
)

// TokenEndpoint issues client_credentials tokens signed with the bcrypt client secret sign.
type TokenEndpoint struct {
	client  *resty.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewTokenEndpoint(client *resty.Client, logger *slog.Logger, m *metrics.Metrics) *TokenEndpoint {
	return &TokenEndpoint{client: client, logger: logger, metrics: m}
}

func (e *TokenEndpoint) Issue(ctx context.Context, req usecase.TokenRequest) (issued usecase.IssuedToken, err error) {
	started := time.Now()
	defer func() { observe(e.metrics, "token", started, err) }()

	resp, err := e.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":         "client_credentials",
			"client_id":          req.ClientID,
			"timestamp":          strconv.FormatInt(req.TimestampMs, 10),
			"client_secret_sign": req.Signature,
			"type":               "SELF",
		}).
		SetResult(&tokenResponse{}).
		SetError(&apiError{}).
		Post(tokenPath)
	if err != nil {
		return usecase.IssuedToken{}, infra.WrapClientErr(e.logger, infra.KindTransport, 0, "", "POST oauth2/token", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return usecase.IssuedToken{}, classify(e.logger, resp, "POST oauth2/token")
	}

	body, ok := resp.Result().(*tokenResponse)
	if !ok || body == nil || body.AccessToken == "" {
		return usecase.IssuedToken{}, infra.WrapClientErr(e.logger, infra.KindDecode, resp.StatusCode(), "", "token response lacks access_token", nil)
	}

	return usecase.IssuedToken{
		AccessToken: body.AccessToken,
		TokenType:   body.TokenType,
		ExpiresIn:   time.Duration(body.ExpiresIn) * time.Second,
	}, nil
}
