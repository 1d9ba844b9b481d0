//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"order-notifier/internal/domain/token"
	"order-notifier/internal/handler/api"
	resdto "order-notifier/internal/handler/dto/response"
	"order-notifier/internal/usecase"
	"order-notifier/tests/common/httptest"
	usecasemock "order-notifier/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatusHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockTokens *usecasemock.MockTokenProvider
	mockPoller *usecasemock.MockPoller
	mockSeen   *usecasemock.MockSeenOrderStore
}

func (s *StatusHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTokens = usecasemock.NewMockTokenProvider(s.mockCtrl)
	s.mockPoller = usecasemock.NewMockPoller(s.mockCtrl)
	s.mockSeen = usecasemock.NewMockSeenOrderStore(s.mockCtrl)
	handler := api.NewStatusHandler(s.mockTokens, s.mockPoller, s.mockSeen)

	s.router.GET("/status", handler.Status)
	s.router.GET("/ready", handler.Ready)
}

func TestStatusHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatusHandlerTestSuite))
}

var (
	issuedAt   = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	validUntil = issuedAt.Add(3 * time.Hour)
)

func (s *StatusHandlerTestSuite) TestStatus() {
	s.Run("success: token snapshot and last tick", func() {
		s.SetupTest()
		s.mockTokens.EXPECT().Snapshot().Return(usecase.TokenSnapshot{
			State:         token.StateValid,
			Usable:        true,
			IssuedAt:      issuedAt,
			ValidUntil:    validUntil,
			LastRefreshAt: issuedAt,
			Refreshes:     2,
		}).Times(1)
		s.mockSeen.EXPECT().Len().Return(5).Times(1)
		s.mockPoller.EXPECT().LastTick().Return(usecase.TickResult{
			TickID:     "tick-1",
			StartedAt:  issuedAt,
			Duration:   1500 * time.Millisecond,
			Listed:     3,
			NewIDs:     []string{"A", "B"},
			Fetched:    2,
			Dispatched: 1,
			Failed:     []string{"B"},
			Err:        errors.New("주문 알림 전송 실패"),
		}, true).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/status", nil)

		var got resdto.StatusResponse
		httptest.DecodeJSON(s.T(), w, http.StatusOK, &got)

		want := resdto.StatusResponse{
			Token: resdto.TokenStatus{
				State:         "VALID",
				Usable:        true,
				IssuedAt:      issuedAt,
				ValidUntil:    validUntil,
				LastRefreshAt: issuedAt,
				Refreshes:     2,
			},
			LastTick: &resdto.TickStatus{
				TickID:     "tick-1",
				StartedAt:  issuedAt,
				DurationMs: 1500,
				Listed:     3,
				NewIDs:     []string{"A", "B"},
				Fetched:    2,
				Dispatched: 1,
				Failed:     []string{"B"},
				Error:      "주문 알림 전송 실패",
			},
			SeenOrders: 5,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("status mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: before the first tick", func() {
		s.SetupTest()
		s.mockTokens.EXPECT().Snapshot().Return(usecase.TokenSnapshot{State: token.StateUninitialized}).Times(1)
		s.mockSeen.EXPECT().Len().Return(0).Times(1)
		s.mockPoller.EXPECT().LastTick().Return(usecase.TickResult{}, false).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/status", nil)

		var got map[string]any
		httptest.DecodeJSON(s.T(), w, http.StatusOK, &got)
		s.Nil(got["last_tick"])
		s.Equal("UNINITIALIZED", got["token"].(map[string]any)["state"])
		s.NotContains(got["token"], "issued_at")
	})
}

func (s *StatusHandlerTestSuite) TestReady() {
	s.Run("success: usable token", func() {
		s.SetupTest()
		s.mockTokens.EXPECT().Snapshot().Return(usecase.TokenSnapshot{State: token.StateValid, Usable: true}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ready", nil)

		httptest.DecodeJSON(s.T(), w, http.StatusOK, nil)
	})

	s.Run("failure: refresh failed", func() {
		s.SetupTest()
		s.mockTokens.EXPECT().Snapshot().Return(usecase.TokenSnapshot{
			State:     token.StateRefreshFailed,
			LastError: "auth error",
		}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ready", nil)

		resp := httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "token is not usable")
		detail, ok := resp.Detail.(map[string]any)
		s.Require().True(ok)
		s.Equal("REFRESH_FAILED", detail["state"])
		s.Equal("auth error", detail["last_error"])
	})
}
