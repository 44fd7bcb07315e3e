package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_ContextFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(WithFormat("json"), WithWriter(&buf))
	require.NoError(t, err)

	ctx := WithRequestID(WithUserID(t.Context(), "alice"), "req-1")
	log.Info(ctx, "hello", "extra", "value")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "req-1", entry["request_id"])
	require.Equal(t, "alice", entry["user_id"])
	require.Equal(t, "value", entry["extra"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(WithFormat("json"), WithLevel("warn"), WithWriter(&buf))
	require.NoError(t, err)

	log.Info(t.Context(), "dropped")
	log.Warn(t.Context(), "kept")

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "kept")
}

func TestMiddleware_LogsRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(WithFormat("json"), WithWriter(&buf))
	require.NoError(t, err)

	handler := Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the request id must already be in the context for handlers to use
		_, ok := r.Context().Value(RequestIDKey).(string)
		require.True(t, ok)
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/get_data/u1", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	require.Equal(t, "request completed", entry["msg"])
	require.Equal(t, "/get_data/u1", entry["path"])
	require.Equal(t, float64(http.StatusTeapot), entry["status_code"])
	require.NotEmpty(t, entry["request_id"])
}
