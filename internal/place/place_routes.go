package place

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /places and /points. writeGuards run in front of
// every mutating route.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	places := r.Group("/places")
	{
		places.GET("", h.GetAllPlaces)
		places.GET("/locate", h.Locate)
		places.POST("", middleware.Chain(writeGuards, h.CreatePlace)...)
	}

	points := r.Group("/points")
	{
		points.GET("", h.GetAllPoints)
		points.POST("", middleware.Chain(writeGuards, h.CreatePoint)...)
	}
}
