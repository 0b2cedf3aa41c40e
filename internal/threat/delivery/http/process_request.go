package http

import (
	"finpal-guardian/internal/threat"

	"github.com/gin-gonic/gin"
)

// processHarvestReq accepts an empty body as all defaults.
func (h *handler) processHarvestReq(c *gin.Context) (threat.HarvestInput, error) {
	var req harvestReq
	if c.Request.ContentLength == 0 {
		return req.toInput(), nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.threat.delivery.http.processHarvestReq: %v", err)
		return threat.HarvestInput{}, errWrongBody
	}
	return req.toInput(), nil
}
