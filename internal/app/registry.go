package app

import (
	"go-attendance/internal/attendance"
	"go-attendance/internal/config"
	"go-attendance/internal/employee"
	"go-attendance/internal/health"
	"go-attendance/internal/middleware"
	"go-attendance/internal/place"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	confirmParam = "confirm"
	confirmValue = "delete-all"
)

func registerModules(router *gin.Engine, cfg config.Config, infra Infra, logger *zap.Logger) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(infra.GormDB)
	attendanceRepo := attendance.NewRepository(infra.GormDB)
	placeRepo := place.NewRepository(infra.GormDB)

	// --- Services ---
	var (
		employeeService   employee.Service
		attendanceService attendance.Service
	)
	if infra.Outbox != nil {
		employeeService = employee.NewServiceWithOutbox(infra.DB, employeeRepo, infra.Outbox, logger)
		attendanceService = attendance.NewServiceWithOutbox(infra.DB, attendanceRepo, infra.Outbox, logger)
	} else {
		employeeService = employee.NewService(infra.DB, employeeRepo, logger)
		attendanceService = attendance.NewService(infra.DB, attendanceRepo, logger)
	}
	placeService := place.NewService(infra.DB, placeRepo, infra.Redis, cfg.PlacesCacheTTL, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	placeHandler := place.NewHandler(placeService, logger)
	healthHandler := health.NewHandler(infra.DB, logger)

	// --- Guards ---
	writeGuards := []gin.HandlerFunc{
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}
	if infra.Redis != nil {
		writeGuards = append(writeGuards, middleware.Idempotency(infra.Redis, cfg.IdempotencyTTL, logger))
	}

	attendanceGuards := attendance.RouteGuards{Write: writeGuards}
	if cfg.JWTSecret != "" {
		attendanceGuards.Wipe = []gin.HandlerFunc{
			middleware.AdminOnly([]byte(cfg.JWTSecret)),
			middleware.RequireConfirmation(confirmParam, confirmValue),
		}
		attendanceGuards.WipeEnabled = true
	} else {
		logger.Named("app").Warn("JWT_SECRET not set, DELETE /attendance is not mounted")
	}

	// --- Routes Registration ---
	root := router.Group("")
	{
		health.RegisterRoutes(root, healthHandler)
		employee.RegisterRoutes(root, employeeHandler, writeGuards...)
		attendance.RegisterRoutes(root, attendanceHandler, attendanceGuards)
		place.RegisterRoutes(root, placeHandler, writeGuards...)
	}
}
