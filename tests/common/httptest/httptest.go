//go:build unit

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// PerformRequest sends a bodiless request to the ops router; the ops endpoints take no input.
func PerformRequest(t *testing.T, router http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
