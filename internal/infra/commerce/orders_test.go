//go:build unit

package commerce_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"order-notifier/internal/domain/token"
	"order-notifier/internal/infra"
	"order-notifier/internal/infra/commerce"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"
	"order-notifier/internal/pkg/metrics"
	usecasemock "order-notifier/tests/mock/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func authRejected(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]any{
		"code":    "GW.AUTHN",
		"message": "요청을 처리할 권한이 없습니다.",
	})
}

type OrderClientTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	tokens  *usecasemock.MockTokenProvider
	metrics *metrics.Metrics
	cfg     config.Config
	hits    atomic.Int32
	handler http.HandlerFunc
	server  *httptest.Server
	client  *commerce.OrderClient
}

func (s *OrderClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokens = usecasemock.NewMockTokenProvider(s.ctrl)
	s.metrics = metrics.NewNop()
	s.hits.Store(0)
	s.handler = func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotImplemented) }
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		s.handler(w, r)
	}))
	s.T().Cleanup(s.server.Close)

	s.cfg = config.NewTestConfig()
	s.cfg.Commerce.BaseURL = s.server.URL
	s.client = s.newClient(s.cfg)
}

func (s *OrderClientTestSuite) newClient(cfg config.Config) *commerce.OrderClient {
	return commerce.NewOrderClient(
		cfg,
		commerce.NewHTTPClient(cfg),
		s.tokens,
		clock.NewMockClock(now),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		s.metrics,
		noop.NewTracerProvider(),
	)
}

func TestOrderClientSuite(t *testing.T) {
	suite.Run(t, new(OrderClientTestSuite))
}

func validToken(t *testing.T, value string) token.Token {
	t.Helper()
	tok, err := token.NewToken(value, now, time.Hour, 0)
	require.NoError(t, err)
	return tok
}

func (s *OrderClientTestSuite) TestListRecentPaidOrders() {
	ctx := context.Background()

	s.Run("sends lookback window, status filter and bearer token", func() {
		s.SetupTest()
		s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "tok-1"), nil).Times(1)

		var got *http.Request
		s.handler = func(w http.ResponseWriter, r *http.Request) {
			got = r.Clone(context.Background())
			writeJSON(w, http.StatusOK, map[string]any{
				"data": map[string]any{
					"lastChangeStatuses": []map[string]any{
						{"productOrderId": "A", "orderId": "O1", "lastChangedType": "PAYED", "lastChangedDate": "2024-01-02T09:00:00.000+09:00"},
						{"productOrderId": "B", "orderId": "O2", "lastChangedType": "PAYED", "lastChangedDate": "2024-01-02T09:30:00.000+09:00"},
					},
					"count": 2,
				},
			})
		}

		summaries, err := s.client.ListRecentPaidOrders(ctx, 24*time.Hour)
		s.Require().NoError(err)
		s.Require().Len(summaries, 2)
		s.Equal("A", summaries[0].ProductOrderID)
		s.Equal("O2", summaries[1].OrderID)

		s.Require().NotNil(got)
		s.Equal("/external/v1/pay-order/seller/product-orders/last-changed-statuses", got.URL.Path)
		s.Equal("2024-01-01T19:00:00.000+09:00", got.URL.Query().Get("lastChangedFrom"))
		s.Equal("PAYED", got.URL.Query().Get("lastChangedType"))
		s.Equal("Bearer tok-1", got.Header.Get("Authorization"))
	})

	s.Run("always rejected: exactly 3 retries then empty result", func() {
		s.SetupTest()
		s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "stale"), nil).Times(4)
		s.tokens.EXPECT().Refresh(gomock.Any()).Return(validToken(s.T(), "fresh"), nil).Times(3)
		s.handler = func(w http.ResponseWriter, _ *http.Request) { authRejected(w) }

		summaries, err := s.client.ListRecentPaidOrders(ctx, 24*time.Hour)
		s.Require().Error(err)
		s.NotNil(summaries)
		s.Empty(summaries)
		s.True(errs.Is(err, errs.ErrAuth))
		s.True(infra.IsKind(err, infra.KindAuthRejected))
		s.Equal(int32(4), s.hits.Load())
		s.Equal(4.0, testutil.ToFloat64(s.metrics.APIRequestsTotal.WithLabelValues("last-changed-statuses", "auth_rejected")))
	})

	s.Run("GW.AUTHN code on a non-401 status is an auth rejection", func() {
		s.SetupTest()
		gomock.InOrder(
			s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "stale"), nil),
			s.tokens.EXPECT().Refresh(gomock.Any()).Return(validToken(s.T(), "fresh"), nil),
			s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "fresh"), nil),
		)
		s.handler = func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "Bearer stale" {
				writeJSON(w, http.StatusForbidden, map[string]any{"code": "GW.AUTHN"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"lastChangeStatuses": []any{}}})
		}

		summaries, err := s.client.ListRecentPaidOrders(ctx, 24*time.Hour)
		s.Require().NoError(err)
		s.Empty(summaries)
		s.Equal(int32(2), s.hits.Load())
	})

	s.Run("transport failures are retried without forcing a refresh", func() {
		s.SetupTest()
		s.server.Close()
		s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "tok"), nil).Times(4)

		summaries, err := s.client.ListRecentPaidOrders(ctx, 24*time.Hour)
		s.Require().Error(err)
		s.Empty(summaries)
		s.True(errs.Is(err, errs.ErrTransport))
	})

	s.Run("token acquisition failure counts as an attempt", func() {
		s.SetupTest()
		s.tokens.EXPECT().GetValidToken(gomock.Any()).
			Return(token.Token{}, errs.Mark(errs.New("token endpoint down"), errs.ErrAuth)).Times(4)

		summaries, err := s.client.ListRecentPaidOrders(ctx, 24*time.Hour)
		s.Require().Error(err)
		s.Empty(summaries)
		s.True(errs.Is(err, errs.ErrAuth))
		s.Equal(int32(0), s.hits.Load())
	})

	s.Run("other API errors are not retried", func() {
		s.SetupTest()
		s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "tok"), nil).Times(1)
		s.handler = func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"code": "BAD_REQUEST", "message": "invalid lastChangedFrom"})
		}

		summaries, err := s.client.ListRecentPaidOrders(ctx, 24*time.Hour)
		s.Require().Error(err)
		s.Empty(summaries)
		s.True(errs.Is(err, errs.ErrAPI))
		s.Contains(err.Error(), "invalid lastChangedFrom")
		s.Equal(int32(1), s.hits.Load())
	})

	s.Run("follows more pages", func() {
		s.SetupTest()
		s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "tok"), nil).Times(2)
		s.handler = func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("moreSequence") == "" {
				writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
					"lastChangeStatuses": []map[string]any{{"productOrderId": "A"}},
					"more":               map[string]any{"moreFrom": "2024-01-02T09:00:00.000+09:00", "moreSequence": "00001"},
				}})
				return
			}
			s.Equal("2024-01-02T09:00:00.000+09:00", r.URL.Query().Get("lastChangedFrom"))
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
				"lastChangeStatuses": []map[string]any{{"productOrderId": "B"}},
			}})
		}

		summaries, err := s.client.ListRecentPaidOrders(ctx, 24*time.Hour)
		s.Require().NoError(err)
		s.Require().Len(summaries, 2)
		s.Equal("B", summaries[1].ProductOrderID)
	})

	s.Run("stops at the page limit", func() {
		s.SetupTest()
		cfg := s.cfg
		cfg.Commerce.MaxPages = 2
		client := s.newClient(cfg)
		s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "tok"), nil).Times(2)
		s.handler = func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
				"lastChangeStatuses": []map[string]any{{"productOrderId": "A"}},
				"more":               map[string]any{"moreFrom": "x", "moreSequence": "1"},
			}})
		}

		summaries, err := client.ListRecentPaidOrders(ctx, 24*time.Hour)
		s.Require().NoError(err)
		s.Len(summaries, 2)
		s.Equal(int32(2), s.hits.Load())
	})
}

func (s *OrderClientTestSuite) TestFetchOrderDetails() {
	ctx := context.Background()

	s.Run("empty batch makes no network call", func() {
		s.SetupTest()

		details, err := s.client.FetchOrderDetails(ctx, nil)
		s.Require().NoError(err)
		s.NotNil(details)
		s.Empty(details)
		s.Equal(int32(0), s.hits.Load())
	})

	s.Run("returns details sorted by order date, latest first", func() {
		s.SetupTest()
		s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "tok"), nil).Times(1)
		s.handler = func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				ProductOrderIDs []string `json:"productOrderIds"`
			}
			s.NoError(json.NewDecoder(r.Body).Decode(&body))
			s.Equal([]string{"early", "late"}, body.ProductOrderIDs)
			s.Equal(http.MethodPost, r.Method)
			s.Equal("/external/v1/pay-order/seller/product-orders/query", r.URL.Path)

			writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{
				{
					"order":        map[string]any{"orderId": "O1", "orderDate": "2024-01-01T10:00:00+09:00", "ordererName": "김철수", "ordererTel": "010-1111-2222"},
					"productOrder": map[string]any{"productOrderId": "early", "productName": "상품A", "productOption": "옵션1", "quantity": 1},
				},
				{
					"order":        map[string]any{"orderId": "O2", "orderDate": "2024-01-02T10:00:00+09:00", "ordererName": "이영희"},
					"productOrder": map[string]any{"productOrderId": "late", "productName": "상품B", "quantity": 2},
				},
			}})
		}

		details, err := s.client.FetchOrderDetails(ctx, []string{"early", "late"})
		s.Require().NoError(err)
		s.Require().Len(details, 2)
		s.Equal("late", details[0].ProductOrderID)
		s.Equal("early", details[1].ProductOrderID)
		s.Equal("김철수", details[1].OrdererName)
		s.Equal("010-1111-2222", details[1].OrdererTel)
		s.Equal("옵션1", details[1].ProductOption)
		s.Equal(2, details[0].Quantity)
		s.True(time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC).Equal(details[0].OrderDate))
	})

	s.Run("non-success response yields empty result and api error", func() {
		s.SetupTest()
		s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "tok"), nil).Times(1)
		s.handler = func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"code": "SERVER_ERROR"})
		}

		details, err := s.client.FetchOrderDetails(ctx, []string{"A"})
		s.Require().Error(err)
		s.Empty(details)
		s.True(errs.Is(err, errs.ErrAPI))
		s.Equal(int32(1), s.hits.Load())
	})

	s.Run("auth rejection is not retried", func() {
		s.SetupTest()
		s.tokens.EXPECT().GetValidToken(gomock.Any()).Return(validToken(s.T(), "tok"), nil).Times(1)
		s.handler = func(w http.ResponseWriter, _ *http.Request) { authRejected(w) }

		details, err := s.client.FetchOrderDetails(ctx, []string{"A"})
		s.Require().Error(err)
		s.Empty(details)
		s.True(errs.Is(err, errs.ErrAuth))
		s.Equal(int32(1), s.hits.Load())
	})
}

func TestOrderClient_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := usecasemock.NewMockTokenProvider(ctrl)
	tokens.EXPECT().GetValidToken(gomock.Any()).Return(token.Token{}, errs.Mark(errs.New("down"), errs.ErrAuth)).Times(1)

	cfg := config.NewTestConfig()
	cfg.Commerce.RetryDelay = time.Hour
	client := commerce.NewOrderClient(cfg, commerce.NewHTTPClient(cfg), tokens, clock.NewMockClock(now),
		slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewNop(), noop.NewTracerProvider())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	summaries, err := client.ListRecentPaidOrders(ctx, time.Hour)
	require.Error(t, err)
	assert.Empty(t, summaries)
	assert.True(t, errs.Is(err, errs.ErrTransport))
}
