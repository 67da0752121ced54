package attendance

import (
	"github.com/JoseGading/encorejeuneteam/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("/:year/:month", middleware.RateLimitByIP(5, 20), h.GetMonth)
		attendances.PUT("/status", middleware.RateLimitByIP(2, 5), h.SetStatus)
	}
}
