// Command server runs the MesseCall rostering API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lukasbehr/messecall/internal/api"
	"github.com/lukasbehr/messecall/internal/api/admin"
	"github.com/lukasbehr/messecall/internal/api/planning"
	publicapi "github.com/lukasbehr/messecall/internal/api/public"
	"github.com/lukasbehr/messecall/internal/cache"
	"github.com/lukasbehr/messecall/internal/config"
	"github.com/lukasbehr/messecall/internal/notifier"
	"github.com/lukasbehr/messecall/internal/repository"
	"github.com/lukasbehr/messecall/internal/seed"
	"github.com/lukasbehr/messecall/internal/service/gamification"
	"github.com/lukasbehr/messecall/internal/service/planner"
	"github.com/lukasbehr/messecall/internal/service/scheduler"
	"github.com/lukasbehr/messecall/internal/service/swaps"
	"github.com/lukasbehr/messecall/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)

	db, err := repository.NewDB(&cfg.Database.Postgres, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Repositories
	churchRepo := repository.NewChurchRepository(db)
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	gamificationRepo := repository.NewGamificationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Optional demo data
	if cfg.Seed.File != "" {
		if err := seed.Load(cfg.Seed.File, churchRepo, userRepo, eventRepo, log); err != nil {
			log.Fatal().Err(err).Str("file", cfg.Seed.File).Msg("Failed to load seed data")
		}
	}

	// Calendar cache
	var calendarCache publicapi.Cache
	if cfg.Calendar.CacheTTL > 0 {
		redisCache, err := cache.NewRedisCache(&cfg.Database.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisCache.Close()
		calendarCache = redisCache
	}

	// Services
	gamificationService := gamification.NewService(gamificationRepo, log)
	plannerService := planner.NewService(eventRepo, userRepo, availabilityRepo, assignmentRepo, log)
	swapService := swaps.NewService(assignmentRepo, swapRepo, availabilityRepo, notificationRepo, gamificationService, log)

	// Notification dispatch
	webhookClient := notifier.NewClient(&cfg.Notifier, log)
	dispatchScheduler := scheduler.NewService(&cfg.Scheduler, notificationRepo, webhookClient, log)
	if err := dispatchScheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}
	defer dispatchScheduler.Stop()

	// Handlers
	publicHandler := publicapi.NewHandler(eventRepo, calendarCache, cfg.Calendar.TTL(), log)
	adminHandler := admin.NewHandler(admin.Repositories{
		Churches:      churchRepo,
		Users:         userRepo,
		Events:        eventRepo,
		Assignments:   assignmentRepo,
		Availability:  availabilityRepo,
		Gamification:  gamificationRepo,
		Notifications: notificationRepo,
	}, publicHandler, log)
	planningHandler := planning.NewHandler(plannerService, swapService, log)

	router := api.NewRouter(adminHandler, planningHandler, publicHandler, db, cfg.Server.Environment)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Str("environment", cfg.Server.Environment).Msg("Starting HTTP server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
}
