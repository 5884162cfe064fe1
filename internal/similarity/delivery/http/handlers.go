package http

import (
	"github.com/gin-gonic/gin"

	"alpaca-ollama/pkg/response"
)

// Rank godoc
// @Summary     Rank sentences by similarity
// @Description Embeds the query and every sentence, scores each sentence by dot product against the query and returns the best match. Sentences that fail to embed have a null similarity.
// @Tags        Similarity
// @Accept      json
// @Produce     json
// @Param       body body rankReq true "Query and candidate sentences"
// @Success     200  {object} rankResp
// @Failure     400  {object} response.Resp "Bad Request - empty query or no sentences"
// @Failure     502  {object} response.Resp "Bad Gateway - query could not be embedded"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/similarity [POST]
func (h *handler) Rank(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRankReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Rank(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Rank: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRankResp(output))
}
