package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finpal-guardian/pkg/response"
)

// Route godoc
// @Summary     Route a message to the right pipeline
// @Description Classifies the message (or uses route_hint) and returns the pipeline result in a uniform envelope.
// @Description Pipeline failures are reported in the envelope with status 200; only a malformed body returns 400.
// @Tags        Guardian
// @Accept      json
// @Produce     json
// @Param       request body routeReq true "Inbound message"
// @Success     200 {object} guardian.Envelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/guardian [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	env := h.uc.Route(ctx, req)
	if env.Failed() {
		h.l.Warnf(ctx, "internal.guardian.delivery.http.Route: %s: %s", env.FinalRoute, env.Error.Message)
	}

	c.JSON(http.StatusOK, env)
}
