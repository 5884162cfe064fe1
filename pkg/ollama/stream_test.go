package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpaca-ollama/pkg/log"
)

func newTestImpl(t *testing.T, url string, timeout time.Duration) *ollamaImpl {
	t.Helper()
	cfg := Config{BaseURL: url, Timeout: timeout}
	require.NoError(t, cfg.Validate())
	return newOllamaImpl(cfg, log.NewNop())
}

func ndjsonServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = w.Write([]byte(body))
	}))
}

func TestStream_SkipsBlankLines(t *testing.T) {
	ts := ndjsonServer("{\"n\":1}\n\n{\"n\":2}\n")
	defer ts.Close()

	s := newTestImpl(t, ts.URL, time.Second).openStream(context.Background(), "/any", map[string]string{})
	defer s.Close()

	var got []int
	for s.Next() {
		var rec struct{ N int }
		require.NoError(t, s.Decode(&rec))
		got = append(got, rec.N)
	}
	require.NoError(t, s.Err())
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, s.Count())
}

func TestStream_WhitespaceOnlyLinesAreBlank(t *testing.T) {
	ts := ndjsonServer("  \r\n{\"n\":1}\r\n\t\n")
	defer ts.Close()

	s := newTestImpl(t, ts.URL, time.Second).openStream(context.Background(), "/any", nil)
	defer s.Close()

	require.True(t, s.Next())
	assert.JSONEq(t, `{"n":1}`, string(s.Record()))
	assert.False(t, s.Next())
	assert.NoError(t, s.Err())
}

func TestStream_MalformedLine(t *testing.T) {
	ts := ndjsonServer("{\"n\":1}\nnot json\n{\"n\":3}\n")
	defer ts.Close()

	s := newTestImpl(t, ts.URL, time.Second).openStream(context.Background(), "/any", nil)
	defer s.Close()

	require.True(t, s.Next())
	assert.False(t, s.Next())
	assert.ErrorIs(t, s.Err(), ErrMalformedRecord)
	assert.False(t, s.Next(), "stream must stay finished after an error")
	assert.Equal(t, 1, s.Count())
}

func TestStream_ConnectionRefused(t *testing.T) {
	ts := ndjsonServer("")
	url := ts.URL
	ts.Close()

	s := newTestImpl(t, url, time.Second).openStream(context.Background(), "/any", nil)
	defer s.Close()

	assert.False(t, s.Next())
	assert.ErrorIs(t, s.Err(), ErrNoResponse)
	assert.False(t, errors.Is(s.Err(), ErrTimeout))
}

func TestStream_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	s := newTestImpl(t, ts.URL, 50*time.Millisecond).openStream(context.Background(), "/any", nil)
	defer s.Close()

	assert.False(t, s.Next())
	assert.ErrorIs(t, s.Err(), ErrTimeout)
	assert.ErrorIs(t, s.Err(), ErrNoResponse)
}

func TestStream_NonSuccessStatusStillRead(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model not found"}` + "\n"))
	}))
	defer ts.Close()

	s := newTestImpl(t, ts.URL, time.Second).openStream(context.Background(), "/any", nil)
	defer s.Close()

	require.True(t, s.Next())
	var rec struct{ Error string }
	require.NoError(t, s.Decode(&rec))
	assert.Equal(t, "model not found", rec.Error)
}

func TestStream_SendsJSONBody(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/embed", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer ts.Close()

	s := newTestImpl(t, ts.URL, time.Second).openStream(context.Background(), EmbedPath, EmbedRequest{Model: "m", Input: "hi"})
	for s.Next() {
	}
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.Equal(t, map[string]any{"model": "m", "input": "hi"}, got)
}
