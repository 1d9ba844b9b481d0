package notify

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"
	"strconv"

	"order-notifier/internal/infra"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/config"

	"github.com/go-resty/resty/v2"
)

const (
	headerTimestamp = "x-ncp-apigw-timestamp"
	headerAccessKey = "x-ncp-iam-access-key"
	headerSignature = "x-ncp-apigw-signature-v2"
)

type sensError struct {
	StatusCode string `json:"statusCode"`
	StatusName string `json:"statusName"`
	Error      struct {
		ErrorCode string `json:"errorCode"`
		Message   string `json:"message"`
	} `json:"error"`
}

// sensClient calls the NCP SENS API gateway with the v2 HMAC request signature.
type sensClient struct {
	client    *resty.Client
	accessKey string
	secretKey string
	cfg       config.SENSConfig
	clock     clock.Clock
	logger    *slog.Logger
}

func newSENSClient(cfg config.Config, clk clock.Clock, logger *slog.Logger) *sensClient {
	return &sensClient{
		client: resty.New().
			SetBaseURL(cfg.SENS.BaseURL).
			SetTimeout(cfg.HTTP.Timeout).
			SetHeader("Content-Type", "application/json; charset=utf-8"),
		accessKey: cfg.SENS.AccessKey,
		secretKey: cfg.SENS.SecretKey,
		cfg:       cfg.SENS,
		clock:     clk,
		logger:    logger,
	}
}

// sensSignature signs "METHOD URI\nTIMESTAMP\nACCESS_KEY" with HMAC-SHA256.
func sensSignature(secretKey, method, uri, timestamp, accessKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(method + " " + uri + "\n" + timestamp + "\n" + accessKey))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (c *sensClient) post(ctx context.Context, uri string, body any) error {
	timestamp := strconv.FormatInt(c.clock.Now().Add(-c.cfg.TimestampSkew).UnixMilli(), 10)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader(headerTimestamp, timestamp).
		SetHeader(headerAccessKey, c.accessKey).
		SetHeader(headerSignature, sensSignature(c.secretKey, "POST", uri, timestamp, c.accessKey)).
		SetBody(body).
		SetError(&sensError{}).
		Post(uri)
	if err != nil {
		return infra.WrapClientErr(c.logger, infra.KindTransport, 0, "", "POST "+uri, err)
	}
	if !resp.IsSuccess() {
		code, msg := "", "POST "+uri
		if e, ok := resp.Error().(*sensError); ok && e != nil {
			code = e.Error.ErrorCode
			if e.Error.Message != "" {
				msg += ": " + e.Error.Message
			}
		}
		return infra.WrapClientErr(c.logger, infra.KindAPI, resp.StatusCode(), code, msg, nil)
	}
	return nil
}
