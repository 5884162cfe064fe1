package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alpaca-ollama/internal/middleware"
	"alpaca-ollama/internal/similarity"
	"alpaca-ollama/pkg/log"
	"alpaca-ollama/pkg/ollama"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Inference
	ollama         ollama.IOllama
	inference      InferenceInfo
	maxConcurrency int

	// Cross-cutting
	middlewareCfg  middleware.Config
	metricsHandler http.Handler
	similarityObs  similarity.Observer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Ollama         ollama.IOllama
	Inference      InferenceInfo
	MaxConcurrency int

	RateLimit middleware.Config

	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler     http.Handler
	SimilarityObserver similarity.Observer
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		ollama:         cfg.Ollama,
		inference:      cfg.Inference,
		maxConcurrency: cfg.MaxConcurrency,
		middlewareCfg:  cfg.RateLimit,
		metricsHandler: cfg.MetricsHandler,
		similarityObs:  cfg.SimilarityObserver,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.ollama == nil {
		return errors.New("ollama client is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
