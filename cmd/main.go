package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DeskBookingService/internal/api"
	addTeamMemberHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/add_team_member"
	bookDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/book_desk"
	deleteTeamMemberHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/delete_team_member"
	exportWeekHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/export_week"
	getAdminConfigHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_admin_config"
	getWeekHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_week"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/health"
	unbookDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/unbook_desk"
	updateDesksHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/update_desks"
	updateTeamMemberHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/update_team_member"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBookingService/internal/config"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/cache/weekcache"
	bookingRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/booking"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/schema"
	teamRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/team"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/ledger"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/roster"
	exportWeekUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/export_week"
	getWeekUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_week"
	"github.com/m04kA/SMC-DeskBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/logger"
	"github.com/m04kA/SMC-DeskBookingService/pkg/metrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

const configPathEnv = "CONFIG_PATH"

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		configPath = "config.toml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-DeskBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилища: демо в памяти или SQL
	var (
		bookings ledger.BookingRepository
		desks    roster.DeskRepository
		team     roster.TeamRepository
	)
	checks := map[string]health.Check{}
	demo := cfg.IsDemo()

	if demo {
		store := memory.NewDemo()
		bookings, desks, team = store.Bookings, store.Desks, store.Team
		log.Warn("Database is not configured, running in demo mode with in-memory data")
	} else {
		dialect, err := cfg.Database.Dialect()
		if err != nil {
			log.Fatal("Invalid database driver: %v", err)
		}

		if dialect == psqlbuilder.SQLite {
			if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
				log.Fatal("Failed to create database directory: %v", err)
			}
		}

		db, err := sql.Open(dialect.DriverName(), cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (driver=%s)", dialect)

		var executor dbmetrics.DBExecutor = db
		if cfg.Metrics.Enabled {
			executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
		}

		if err := schema.Apply(context.Background(), executor, dialect); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}

		bookings = bookingRepo.NewRepository(executor, dialect)
		desks = deskRepo.NewRepository(executor, dialect)
		team = teamRepo.NewRepository(executor, dialect)
		checks["database"] = executor.PingContext
	}

	// Кэш недели в Redis (если настроен)
	if cfg.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		cache := weekcache.NewRepository(bookings, client, time.Duration(cfg.Redis.TTL)*time.Second, log)
		bookings = cache
		checks["redis"] = cache.Ping
		log.Info("Week cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Address, cfg.Redis.TTL)
	}

	// Инициализируем сервисы
	var outcomes ledger.OutcomeRecorder = metricsCollector
	ledgerSvc := ledger.NewService(bookings, desks, outcomes, log)
	rosterSvc := roster.NewService(team, desks, demo, log)

	// Инициализируем use cases
	getWeekUseCase := getWeekUC.NewUseCase(ledgerSvc, rosterSvc, log)
	exportWeekUseCase := exportWeekUC.NewUseCase(getWeekUseCase, log)

	// Инициализируем handlers
	handlers := api.Handlers{
		GetWeek:          getWeekHandler.NewHandler(getWeekUseCase, log),
		ExportWeek:       exportWeekHandler.NewHandler(exportWeekUseCase, log),
		BookDesk:         bookDeskHandler.NewHandler(ledgerSvc, log),
		UnbookDesk:       unbookDeskHandler.NewHandler(ledgerSvc, log),
		GetAdminConfig:   getAdminConfigHandler.NewHandler(rosterSvc, log),
		UpdateDesks:      updateDesksHandler.NewHandler(rosterSvc, log),
		AddTeamMember:    addTeamMemberHandler.NewHandler(rosterSvc, log),
		UpdateTeamMember: updateTeamMemberHandler.NewHandler(rosterSvc, log),
		DeleteTeamMember: deleteTeamMemberHandler.NewHandler(rosterSvc, log),
		Health:           health.NewHandler(checks, log),
	}

	opts := api.Options{AllowedOrigins: cfg.CORS.AllowedOrigins}
	if cfg.Metrics.Enabled {
		opts.HTTPMetrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(handlers, opts),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (demo=%t)", addr, demo)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
