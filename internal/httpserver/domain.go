package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	completionHTTP "alpaca-ollama/internal/completion/delivery/http"
	completionUC "alpaca-ollama/internal/completion/usecase"
	"alpaca-ollama/internal/middleware"
	similarityHTTP "alpaca-ollama/internal/similarity/delivery/http"
	similarityUC "alpaca-ollama/internal/similarity/usecase"
)

// setupSimilarityDomain wires the ranking pipeline and registers
// POST /api/v1/similarity.
func (srv HTTPServer) setupSimilarityDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := similarityUC.New(srv.l, srv.ollama, srv.maxConcurrency, srv.similarityObs)
	h := similarityHTTP.New(srv.l, uc)
	similarityHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Similarity domain registered")
	return nil
}

// setupCompletionDomain wires the chat completion pipeline and registers
// POST /api/v1/prompt.
func (srv HTTPServer) setupCompletionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := completionUC.New(srv.l, srv.ollama)
	h := completionHTTP.New(srv.l, uc)
	completionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Completion domain registered")
	return nil
}
