package http

import (
	"finpal-guardian/internal/guardian"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRouteReq(c *gin.Context) (guardian.InboundRequest, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.guardian.delivery.http.processRouteReq: %v", err)
		return guardian.InboundRequest{}, errWrongBody
	}
	return req.toInput(), nil
}
