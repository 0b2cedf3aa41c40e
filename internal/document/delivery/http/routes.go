package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps document endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	docs := rg.Group("/documents")
	{
		docs.POST("", h.Upload)
	}
}
