package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/IdrisKulubi/huaweievent/internal/attendee"
	"github.com/IdrisKulubi/huaweievent/internal/auth"
	"github.com/IdrisKulubi/huaweievent/internal/booth"
	"github.com/IdrisKulubi/huaweievent/internal/checkin"
	"github.com/IdrisKulubi/huaweievent/internal/employer"
	"github.com/IdrisKulubi/huaweievent/internal/event"
	"github.com/IdrisKulubi/huaweievent/internal/incident"
	"github.com/IdrisKulubi/huaweievent/internal/messaging/kafka"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
	"github.com/IdrisKulubi/huaweievent/internal/rbac/infra"
	"github.com/IdrisKulubi/huaweievent/internal/report"
	"github.com/IdrisKulubi/huaweievent/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendeeRepo := attendee.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	boothRepo := booth.NewRepository(gormDB)
	checkinRepo := checkin.NewRepository(gormDB)
	employerRepo := employer.NewRepository(gormDB)
	eventRepo := event.NewRepository(gormDB)
	incidentRepo := incident.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	reportRepo := report.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	attendeeService := attendee.NewService(db, attendeeRepo, outboxRepo)
	authService := auth.NewService(authRepo)
	boothService := booth.NewService(boothRepo, employerRepo, attendeeRepo)
	eventService := event.NewService(db, eventRepo)
	checkinService := checkin.NewService(db, checkinRepo, attendeeRepo, eventService, outboxRepo)
	employerService := employer.NewService(employerRepo)
	incidentService := incident.NewService(incidentRepo)
	reportService := report.NewService(reportRepo, rdb)
	userService := user.NewService(userRepo)

	// --- Handlers ---
	attendeeHandler := attendee.NewHandler(attendeeService)
	authHandler := auth.NewHandler(authService)
	boothHandler := booth.NewHandler(boothService)
	checkinHandler := checkin.NewHandlerWithRedis(checkinService, rdb)
	employerHandler := employer.NewHandler(employerService)
	eventHandler := event.NewHandler(eventService)
	incidentHandler := incident.NewHandler(incidentService)
	reportHandler := report.NewHandler(reportService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendee.RegisterRoutes(api, attendeeHandler, rbacService)
		booth.RegisterRoutes(api, boothHandler, rbacService)
		checkin.RegisterRoutes(api, checkinHandler, rbacService, rdb)
		employer.RegisterRoutes(api, employerHandler, rbacService)
		event.RegisterRoutes(api, eventHandler, rbacService)
		incident.RegisterRoutes(api, incidentHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService)
	}

	return nil
}
