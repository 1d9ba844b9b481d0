//go:build unit

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"order-notifier/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DecodeJSON requires status and decodes the body into target when target is not nil.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, status int, target any) {
	t.Helper()

	require.Equal(t, status, w.Code, "response: %s", w.Body.String())
	if target == nil {
		return
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "response: %s", w.Body.String())
}

// AssertErrorResponse checks an httperr body and returns it for assertions on the detail.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, msgContains string) httperr.Response {
	t.Helper()

	var resp httperr.Response
	DecodeJSON(t, w, status, &resp)
	if msgContains != "" {
		assert.Contains(t, resp.Error.Message, msgContains)
	}
	return resp
}
