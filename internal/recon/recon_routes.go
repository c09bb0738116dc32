package recon

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	runs := r.Group("/recon/runs")
	{
		runs.POST("", h.CreateRun)
		runs.GET("/:id/download", h.Download)
	}
}
