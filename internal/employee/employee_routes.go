package employee

import (
	"github.com/JoseGading/encorejeuneteam/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", middleware.RateLimitByIP(3, 10), h.GetAll)
		employees.GET("/roster", middleware.RateLimitByIP(5, 20), h.GetRoster)
		employees.GET("/:id", middleware.RateLimitByIP(3, 10), h.GetById)
		employees.POST("", middleware.RateLimitByIP(0.5, 2), h.Create)
		employees.PUT("/:id", middleware.RateLimitByIP(0.5, 2), h.Update)
		employees.DELETE("/:id", middleware.RateLimitByIP(0.1, 1), h.Delete)
	}
}
