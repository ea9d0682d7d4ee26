package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	storeAPI "github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/config"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	bookingRepo "github.com/redzuankdv/Parking-App-FrontEnd/internal/infra/storage/booking"
	bookingsService "github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/logger"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/metrics"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	configPath := config.PathFromEnv()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateBookingStore(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking store...")
	log.Info("Configuration loaded from %s", configPath)

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database connection: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, db=%s)", cfg.Database.Host, cfg.Database.DBName)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		if err := metricsCollector.RegisterDBStats(db, cfg.Database.DBName); err != nil {
			log.Warn("Failed to register database stats collector: %v", err)
		}
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем менеджер транзакций, репозиторий и сервис
	txManager := txmanager.NewTransactionManager(db)
	repository := bookingRepo.NewRepository(db)
	service := bookingsService.NewService(repository, txManager, domain.DefaultSlotCatalog, metricsCollector, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, log))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	storeAPI.RegisterRoutes(r, service, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      gorillaHandlers.RecoveryHandler()(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
