//go:build unit

package notify_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"order-notifier/internal/infra/notify"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackWebhook_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the message as JSON", func(t *testing.T) {
		srv := newRecorder(t, http.StatusOK, "ok")
		hook := notify.NewSlackWebhook("order", srv.URL, config.NewTestConfig(), discardLogger())

		err := hook.Post(ctx, notify.OrderMessage(sampleNotification(), kst))
		require.NoError(t, err)

		reqs := srv.Requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, http.MethodPost, reqs[0].Method)
		assert.Contains(t, reqs[0].Header.Get("Content-Type"), "application/json")
		assert.Contains(t, reqs[0].Body["text"], "주문ID: 2024010112345")
		assert.Contains(t, reqs[0].Body["text"], "주문자: 홍길동")
		assert.NotContains(t, reqs[0].Body, "blocks")
	})

	t.Run("non-200 is an api error", func(t *testing.T) {
		srv := newRecorder(t, http.StatusNotFound, "no_service")
		hook := notify.NewSlackWebhook("order", srv.URL, config.NewTestConfig(), discardLogger())

		err := hook.Post(ctx, notify.StartupMessage())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAPI))
		assert.Contains(t, err.Error(), "no_service")
	})

	t.Run("breaker opens after consecutive failures and recovers", func(t *testing.T) {
		srv := newRecorder(t, http.StatusInternalServerError, "boom")
		cfg := config.NewTestConfig()
		cfg.Slack.BreakerFailures = 3
		cfg.Slack.BreakerTimeout = 50 * time.Millisecond
		hook := notify.NewSlackWebhook("log", srv.URL, cfg, discardLogger())

		for range 3 {
			require.Error(t, hook.Post(ctx, notify.StartupMessage()))
		}

		err := hook.Post(ctx, notify.StartupMessage())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrTransport))
		assert.Len(t, srv.Requests(), 3)

		srv.setResponse(http.StatusOK, "ok")
		time.Sleep(80 * time.Millisecond)

		require.NoError(t, hook.Post(ctx, notify.StartupMessage()))
		assert.Len(t, srv.Requests(), 4)
	})
}

func TestLogChannel(t *testing.T) {
	ctx := context.Background()

	t.Run("without webhook only logs", func(t *testing.T) {
		ch := notify.NewLogChannel(config.NewTestConfig(), discardLogger())

		assert.NoError(t, ch.Report(ctx, "주문 처리 중 오류 발생"))
		assert.NoError(t, ch.Shutdown(ctx, time.Now()))
	})

	t.Run("forwards reports and shutdown notice", func(t *testing.T) {
		srv := newRecorder(t, http.StatusOK, "ok")
		cfg := config.NewTestConfig()
		cfg.Slack.LogWebhookURL = srv.URL
		ch := notify.NewLogChannel(cfg, discardLogger())

		require.NoError(t, ch.Report(ctx, "주문 알림 전송 실패"))
		require.NoError(t, ch.Shutdown(ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

		reqs := srv.Requests()
		require.Len(t, reqs, 2)
		assert.Equal(t, "주문 알림 전송 실패", reqs[0].Body["text"])
		assert.Contains(t, string(reqs[1].RawBody), "주문 관리 프로그램 종료")
	})

	t.Run("webhook failure surfaces to the caller", func(t *testing.T) {
		srv := newRecorder(t, http.StatusInternalServerError, "boom")
		cfg := config.NewTestConfig()
		cfg.Slack.LogWebhookURL = srv.URL
		ch := notify.NewLogChannel(cfg, discardLogger())

		assert.Error(t, ch.Report(ctx, "x"))
	})
}

func TestSlackOrderChannel(t *testing.T) {
	srv := newRecorder(t, http.StatusOK, "ok")
	cfg := config.NewTestConfig()
	cfg.Slack.OrderWebhookURL = srv.URL
	ch := notify.NewSlackOrderChannel(cfg, discardLogger())

	require.NoError(t, ch.Announce(context.Background()))
	require.NoError(t, ch.Send(context.Background(), sampleNotification()))

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Contains(t, string(reqs[0].RawBody), "주문 관리 프로그램 시작")
	assert.Equal(t, "slack", ch.Name())
	assert.Contains(t, reqs[1].Body["text"], "주문일자: 2024-01-01 10:02:03")
}
