package httpserver

import (
	"github.com/gin-gonic/gin"

	"alpaca-ollama/pkg/response"
)

const (
	HealthMessage = "Alpaca similarity and completion API"
	HealthVersion = "1.0.0"
	ServiceName   = "alpaca-ollama"
)

// InferenceInfo describes the inference server the API forwards to. It is
// reported by the probes and never dialled by them.
type InferenceInfo struct {
	BaseURL     string `json:"base_url"`
	EmbedModel  string `json:"embed_model"`
	PromptModel string `json:"prompt_model"`
}

type probeResp struct {
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Version   string         `json:"version"`
	Service   string         `json:"service"`
	Inference *InferenceInfo `json:"inference,omitempty"`
}

func (srv HTTPServer) probe(status string, withInference bool) probeResp {
	resp := probeResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
	if withInference {
		info := srv.inference
		resp.Inference = &info
	}
	return resp
}

// healthCheck reports the service and the inference server it is configured for.
// @Summary Health Check
// @Description Service identity plus the configured Ollama URL and models
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy", true))
}

// readyCheck does not probe Ollama; an unreachable server surfaces as 502 on
// the domain routes instead of taking the API out of rotation.
// @Summary Readiness Check
// @Description Ready once routes are registered; reports the configured Ollama URL and models
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.probe("ready", true))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive", false))
}
