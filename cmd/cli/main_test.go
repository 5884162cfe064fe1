package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpaca-ollama/internal/completion"
	"alpaca-ollama/internal/similarity"
)

// fakeServer answers /api/embed from a fixed table and streams two chat
// deltas on /api/chat.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	vectors := map[string][]float64{
		"cats":  {1, 0},
		"felid": {1, 0},
		"cars":  {0, 1},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/embed":
			var req struct {
				Input string `json:"input"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			vec, ok := vectors[req.Input]
			if !ok {
				fmt.Fprintln(w, `{"error":"model refused"}`)
				return
			}
			b, _ := json.Marshal(map[string]any{"embeddings": [][]float64{vec}})
			fmt.Fprintln(w, string(b))
		case "/api/chat":
			var req struct {
				Stream bool  `json:"stream"`
				JSON   *bool `json:"json"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if !req.Stream {
				fmt.Fprintf(w, `{"message":{"content":"json=%v"},"done":true}`+"\n", req.JSON != nil && *req.JSON)
				return
			}
			fmt.Fprintln(w, `{"message":{"content":"Hel"}}`)
			fmt.Fprintln(w, `{"message":{"content":"lo"},"done":true}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRank(t *testing.T) {
	srv := fakeServer(t)

	out, err := run(t, "rank", "--url", srv.URL, "--query", "cats", "cars", "felid", "unknown")
	require.NoError(t, err)

	var report similarity.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Comparisons, 3)
	assert.Equal(t, "cats", report.Query)

	require.NotNil(t, report.Comparisons[0].Score)
	assert.Equal(t, 0.0, *report.Comparisons[0].Score)
	require.NotNil(t, report.Comparisons[1].Score)
	assert.Equal(t, 1.0, *report.Comparisons[1].Score)
	assert.Nil(t, report.Comparisons[2].Score)

	require.NotNil(t, report.Best)
	assert.Equal(t, 1, report.Best.Index)
	assert.Equal(t, "felid", report.Best.Text)
}

func TestRank_Errors(t *testing.T) {
	srv := fakeServer(t)

	_, err := run(t, "rank", "--url", srv.URL, "--query", "cats")
	assert.True(t, errors.Is(err, similarity.ErrMissingInput), "got %v", err)

	_, err = run(t, "rank", "--url", srv.URL, "--query", "unknown", "cats")
	assert.True(t, errors.Is(err, similarity.ErrQueryEmbedding), "got %v", err)
}

func TestPrompt(t *testing.T) {
	srv := fakeServer(t)

	t.Run("streaming prints content", func(t *testing.T) {
		out, err := run(t, "prompt", "--url", srv.URL, "--stream", "say", "hello")
		require.NoError(t, err)
		assert.Equal(t, "Hello\n", out)
	})

	t.Run("non-streaming prints the record", func(t *testing.T) {
		out, err := run(t, "prompt", "--url", srv.URL, "hi")
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":{"content":"json=true"},"done":true}`, out)
	})

	t.Run("json flag overrides config", func(t *testing.T) {
		out, err := run(t, "prompt", "--url", srv.URL, "--json=false", "hi")
		require.NoError(t, err)
		assert.Contains(t, out, "json=false")
	})

	t.Run("unreachable server", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		_, err := run(t, "prompt", "--url", url, "hi")
		assert.True(t, errors.Is(err, completion.ErrNoCompletion), "got %v", err)
	})

	t.Run("prompt text required", func(t *testing.T) {
		_, err := run(t, "prompt", "--url", srv.URL)
		assert.Error(t, err)
	})
}
