package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the router endpoint onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/guardian", h.Route)
}
