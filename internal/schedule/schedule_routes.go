package schedule

import (
	"github.com/JoseGading/encorejeuneteam/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	schedules := r.Group("/schedules")
	{
		schedules.POST("/generate", middleware.RateLimitByIP(0.5, 2), middleware.Idempotency(rdb), h.Generate)
		schedules.GET("/:year/:month", middleware.RateLimitByIP(5, 20), h.Get)
		schedules.PUT("/:year/:month/days/:day/leave", middleware.RateLimitByIP(1, 3), h.SetLeave)
	}
}
