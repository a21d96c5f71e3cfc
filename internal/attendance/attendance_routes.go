package attendance

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

type RouteGuards struct {
	// Write runs in front of every mutating route.
	Write []gin.HandlerFunc
	// Wipe runs in front of DELETE /attendance, after Write.
	Wipe []gin.HandlerFunc
	// WipeEnabled mounts DELETE /attendance. It stays off unless an admin
	// guard is configured.
	WipeEnabled bool
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards RouteGuards) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("", h.GetAll)
		attendance.POST("", middleware.Chain(guards.Write, h.Create)...)
		attendance.PUT("/:id", middleware.Chain(guards.Write, h.Update)...)
		attendance.DELETE("/:id", middleware.Chain(guards.Write, h.Delete)...)
		if guards.WipeEnabled {
			wipe := make([]gin.HandlerFunc, 0, len(guards.Write)+len(guards.Wipe))
			wipe = append(wipe, guards.Write...)
			wipe = append(wipe, guards.Wipe...)
			attendance.DELETE("", middleware.Chain(wipe, h.DeleteAll)...)
		}
	}

	r.GET("/employees/:id/attendance", h.GetByEmployee)
}
