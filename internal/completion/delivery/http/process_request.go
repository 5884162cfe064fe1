package http

import (
	"github.com/gin-gonic/gin"
)

// processPromptReq binds and validates the prompt request body.
func (h *handler) processPromptReq(c *gin.Context) (promptReq, error) {
	var req promptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
