//go:build unit

package notify_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"order-notifier/internal/domain/order"
	"order-notifier/tests/common/builder"
)

var kst = time.FixedZone("Asia/Seoul", 9*60*60)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleNotification() order.Notification {
	return builder.NewOrderBuilder().BuildNotification()
}

type capturedRequest struct {
	Method  string
	Path    string
	Header  http.Header
	Body    map[string]any
	RawBody []byte
}

// recorder is an httptest server that keeps every request it receives.
type recorder struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     string
}

func newRecorder(t *testing.T, status int, body string) *recorder {
	t.Helper()
	r := &recorder{status: status, body: body}
	r.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		raw, _ := io.ReadAll(req.Body)
		var decoded map[string]any
		_ = json.Unmarshal(raw, &decoded)

		r.mu.Lock()
		r.requests = append(r.requests, capturedRequest{
			Method:  req.Method,
			Path:    req.URL.Path,
			Header:  req.Header.Clone(),
			Body:    decoded,
			RawBody: raw,
		})
		status, body := r.status, r.body
		r.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(r.Close)
	return r
}

func (r *recorder) Requests() []capturedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]capturedRequest(nil), r.requests...)
}

func (r *recorder) setResponse(status int, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status, r.body = status, body
}
