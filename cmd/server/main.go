package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/navidh/exam-center-scheduling/internal/config"
	"github.com/navidh/exam-center-scheduling/internal/database"
	"github.com/navidh/exam-center-scheduling/internal/handler"
	"github.com/navidh/exam-center-scheduling/internal/queue"
	"github.com/navidh/exam-center-scheduling/internal/repository"
	"github.com/navidh/exam-center-scheduling/internal/router"
	"github.com/navidh/exam-center-scheduling/internal/scheduling"
	queue_publisher "github.com/navidh/exam-center-scheduling/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env for local development

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, config.LoadDBPoolConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	centerRepo := repository.NewCenterRepo(db)
	shiftRepo := repository.NewShiftRepo(db)
	subjectRepo := repository.NewSubjectRepo(db)
	examDateRepo := repository.NewExamDateRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	userRepo := repository.NewUserRepo(db)

	registry := scheduling.NewOwnershipRegistry(userRepo, centerRepo)
	publisher := queue_publisher.New(log)

	centers := scheduling.NewCenterService(centerRepo, registry, log)
	shifts := scheduling.NewShiftService(shiftRepo, centerRepo, subjectRepo, userRepo, log)
	subjects := scheduling.NewSubjectService(subjectRepo)
	examDates := scheduling.NewExamDateService(examDateRepo, subjectRepo, log)
	bookings := scheduling.NewBookingService(bookingRepo, examDateRepo, registry, publisher, log)

	h := handler.NewAdminHandler(centers, shifts, examDates, subjects, bookings)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, rate limiting disabled")
	}

	// The consumer writes the booking audit log; it reconnects on its
	// own and never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(log); err != nil {
			log.Error().Err(err).Msg("booking consumer stopped")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterAPI(e, h, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
