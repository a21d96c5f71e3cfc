package employee

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /employees. writeGuards run in front of every
// mutating route.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.GetAll)
		employees.GET("/:id", h.GetById)
		employees.POST("", middleware.Chain(writeGuards, h.Create)...)
		employees.PUT("/:id", middleware.Chain(writeGuards, h.Update)...)
		employees.DELETE("/:id", middleware.Chain(writeGuards, h.Delete)...)
	}
}
