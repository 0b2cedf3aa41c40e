package http

import (
	"github.com/gin-gonic/gin"

	"finpal-guardian/pkg/response"
)

// ListPatterns godoc
// @Summary     List known scam patterns
// @Description Returns every pattern used by THREAT_TRIAGE fast matching, in match order.
// @Tags        Threat
// @Produce     json
// @Success     200 {object} patternsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/threat/patterns [GET]
func (h *handler) ListPatterns(c *gin.Context) {
	ctx := c.Request.Context()

	patterns, err := h.uc.ListPatterns(ctx)
	if err != nil {
		h.l.Errorf(ctx, "internal.threat.delivery.http.ListPatterns: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPatternsResp(patterns))
}

// Harvest godoc
// @Summary     Harvest scam patterns from news
// @Description Fetches recent scam news, extracts one pattern per article and stores it. Without a NewsAPI key the harvest is empty.
// @Tags        Threat
// @Accept      json
// @Produce     json
// @Param       request body harvestReq false "Query options"
// @Success     200 {object} threat.HarvestOutput
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/threat/harvest [POST]
func (h *handler) Harvest(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processHarvestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Harvest(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "internal.threat.delivery.http.Harvest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}
