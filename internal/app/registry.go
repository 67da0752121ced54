package app

import (
	"database/sql"

	"github.com/JoseGading/encorejeuneteam/internal/attendance"
	"github.com/JoseGading/encorejeuneteam/internal/employee"
	"github.com/JoseGading/encorejeuneteam/internal/messaging/kafka"
	"github.com/JoseGading/encorejeuneteam/internal/middleware"
	"github.com/JoseGading/encorejeuneteam/internal/schedule"
	"github.com/JoseGading/encorejeuneteam/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	scheduleRepo := schedule.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, outboxRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb)
	scheduleService := schedule.NewService(
		db,
		scheduleRepo,
		employeeService,
		attendanceService,
		attendanceService,
		outboxRepo,
		rdb,
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	employeeHandler := employee.NewHandler(employeeService)
	scheduleHandler := schedule.NewHandlerWithRedis(scheduleService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler)
		employee.RegisterRoutes(api, employeeHandler)
		schedule.RegisterRoutes(api, scheduleHandler, rdb)
	}

	return nil
}
