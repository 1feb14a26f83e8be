package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lassestilvang/taskplanner/internal/config"
	"github.com/lassestilvang/taskplanner/internal/handler"
	"github.com/lassestilvang/taskplanner/internal/health"
	"github.com/lassestilvang/taskplanner/internal/infra/busycache"
	"github.com/lassestilvang/taskplanner/internal/infra/repository"
	"github.com/lassestilvang/taskplanner/internal/infra/suggestrecorder"
	"github.com/lassestilvang/taskplanner/internal/observability"
	"github.com/lassestilvang/taskplanner/internal/observability/logging"
	"github.com/lassestilvang/taskplanner/internal/observability/metrics"
	"github.com/lassestilvang/taskplanner/internal/observability/middleware"
	"github.com/lassestilvang/taskplanner/internal/service/recurrence"
	"github.com/lassestilvang/taskplanner/internal/service/schedule"
	"github.com/lassestilvang/taskplanner/internal/service/scoring"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	slog.SetDefault(logging.NewLogger(cfg.LogLevel, logging.EnvironmentFromEnv()))

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName:    "taskplanner-scheduler",
		ServiceVersion: Version,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	schedulerMetrics, err := metrics.NewSchedulerMetrics()
	if err != nil {
		slog.Error("failed to initialize scheduler metrics", slog.String("error", err.Error()))
		return 1
	}

	resultRecorderCfg := suggestrecorder.LoadConfig()
	resultRecorder, err := suggestrecorder.NewRecorder(ctx, resultRecorderCfg)
	if err != nil {
		slog.Error("failed to initialize suggestion result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close suggestion result recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := gorm.Open(postgres.Open(cfg.Postgres.ConnString()), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect postgres",
			slog.String("event", "postgres.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Warn("failed to close postgres connection", slog.String("error", err.Error()))
			}
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("postgres connected",
		slog.String("host", cfg.Postgres.Host),
		slog.String("database", cfg.Postgres.Database),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	taskRepo := repository.NewTaskRepository(db)
	busyCache := busycache.New(taskRepo, redisClient)

	calculator := recurrence.NewCalculator()
	spawner := recurrence.NewSpawner(calculator, taskRepo, schedulerMetrics)

	generator := schedule.NewGenerator(cfg.Scheduler.WorkStartHour, cfg.Scheduler.WorkEndHour)
	filter := schedule.NewFilter(cfg.Scheduler.WorkEndHour)
	scorer := scoring.NewStrategy(cfg.Scoring)

	scheduleService := schedule.NewService(
		busyCache,
		generator,
		filter,
		scorer,
		schedulerMetrics,
		cfg.Scheduler,
	)

	scheduleHandler := handler.NewScheduleHandler(scheduleService, taskRepo, resultRecorder)
	completeHandler := handler.NewCompleteHandler(taskRepo, spawner)

	r := gin.New()
	r.Use(middleware.RequestLogger("/health", "/health/live", "/health/ready"))
	r.Use(gin.Recovery())

	healthChecker := health.NewChecker(db, redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/tasks/:id/suggestions", scheduleHandler.HandleSuggestions)
		v1.POST("/tasks/:id/complete", completeHandler.HandleComplete)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("work_start_hour", cfg.Scheduler.WorkStartHour),
			slog.Int("work_end_hour", cfg.Scheduler.WorkEndHour),
			slog.Int("slot_minutes", cfg.Scheduler.SlotMinutes),
			slog.Int("horizon_days", cfg.Scheduler.HorizonDays),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
