package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps threat endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	threat := rg.Group("/threat")
	{
		threat.GET("/patterns", h.ListPatterns)
		threat.POST("/harvest", h.Harvest)
	}
}
