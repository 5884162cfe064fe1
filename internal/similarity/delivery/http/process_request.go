package http

import (
	"github.com/gin-gonic/gin"
)

// processRankReq binds the rank request body. Emptiness is checked by the
// use case so the HTTP and CLI paths share one message.
func (h *handler) processRankReq(c *gin.Context) (rankReq, error) {
	var req rankReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
