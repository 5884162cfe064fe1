package http

import (
	"github.com/gin-gonic/gin"

	"alpaca-ollama/pkg/response"
)

// Prompt godoc
// @Summary     Generate a completion
// @Description Sends the prompt to the chat model. Non-streaming calls return the model's record as-is; streaming calls return the concatenated content.
// @Tags        Completion
// @Accept      json
// @Produce     json
// @Param       body body promptReq true "Prompt, stream flag and optional JSON mode"
// @Success     200  {object} response.Resp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Bad Gateway - no or malformed completion"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/prompt [POST]
func (h *handler) Prompt(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPromptReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPromptResp(output))
}
