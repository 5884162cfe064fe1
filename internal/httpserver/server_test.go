package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpaca-ollama/internal/middleware"
	"alpaca-ollama/pkg/log"
	"alpaca-ollama/pkg/metrics"
	"alpaca-ollama/pkg/ollama"
)

type fakeOllama struct {
	embeddings map[string]ollama.Embedding
}

func (f *fakeOllama) Embed(ctx context.Context, text string) (ollama.Embedding, error) {
	if emb, ok := f.embeddings[text]; ok {
		return emb, nil
	}
	return nil, ollama.ErrNoResponse
}

func (f *fakeOllama) Chat(ctx context.Context, input ollama.ChatInput) (*ollama.ChatResult, error) {
	if input.Stream {
		return &ollama.ChatResult{Stream: true, Content: "streamed " + input.Prompt, Records: 2}, nil
	}
	return &ollama.ChatResult{Record: json.RawMessage(`{"message":{"content":"ok"}}`), Content: "ok", Records: 1}, nil
}

func newTestServer(t *testing.T) (*HTTPServer, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(metrics.Config{Namespace: "test"})
	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Ollama: &fakeOllama{embeddings: map[string]ollama.Embedding{
			"q": {1, 0},
			"a": {1, 0},
			"b": {0, 1},
		}},
		Inference: InferenceInfo{
			BaseURL:     "http://ollama.test:11434",
			EmbedModel:  "embed-model",
			PromptModel: "prompt-model",
		},
		RateLimit:          middleware.Config{},
		MetricsHandler:     m.Handler(),
		SimilarityObserver: m,
	})
	require.NoError(t, err)
	return srv, m
}

func do(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode})
	assert.ErrorContains(t, err, "ollama")

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, Ollama: &fakeOllama{}})
	assert.ErrorContains(t, err, "port")
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := do(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
	}
}

func TestProbesReportInference(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, tt := range []struct {
		path          string
		status        string
		withInference bool
	}{
		{path: "/health", status: "healthy", withInference: true},
		{path: "/ready", status: "ready", withInference: true},
		{path: "/live", status: "alive"},
	} {
		w := do(srv, http.MethodGet, tt.path, "")
		require.Equal(t, http.StatusOK, w.Code, tt.path)

		var resp struct {
			Data probeResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), tt.path)
		assert.Equal(t, tt.status, resp.Data.Status, tt.path)

		if !tt.withInference {
			assert.Nil(t, resp.Data.Inference, tt.path)
			continue
		}
		require.NotNil(t, resp.Data.Inference, tt.path)
		assert.Equal(t, "http://ollama.test:11434", resp.Data.Inference.BaseURL, tt.path)
		assert.Equal(t, "embed-model", resp.Data.Inference.EmbedModel, tt.path)
		assert.Equal(t, "prompt-model", resp.Data.Inference.PromptModel, tt.path)
	}
}

func TestSimilarityRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	w := do(srv, http.MethodPost, "/api/v1/similarity", `{"query":"q","sentences":["a","b","missing"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Comparisons []struct {
				Index      int      `json:"index"`
				Similarity *float64 `json:"similarity"`
			} `json:"comparisons"`
			Best struct {
				Index int `json:"index"`
			} `json:"best"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Comparisons, 3)
	assert.Nil(t, resp.Data.Comparisons[2].Similarity)
	assert.Equal(t, 0, resp.Data.Best.Index)

	w = do(srv, http.MethodPost, "/api/v1/similarity", `{"query":"unknown","sentences":["a"]}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = do(srv, http.MethodPost, "/api/v1/similarity", `{"query":"q","sentences":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromptRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	w := do(srv, http.MethodPost, "/api/v1/prompt", `{"prompt":"hi","stream":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"content":"streamed hi"`)
}

func TestMetricsRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	do(srv, http.MethodPost, "/api/v1/similarity", `{"query":"q","sentences":["a","missing"]}`)

	w := do(srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `test_similarity_comparisons_total{outcome="scored"} 1`)
	assert.Contains(t, w.Body.String(), `test_similarity_comparisons_total{outcome="failed"} 1`)
}
