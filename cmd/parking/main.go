package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	confirmBookingHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/confirm_booking"
	deleteBookingHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/delete_booking"
	getFlowHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/get_flow"
	getSlotsHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/get_slots"
	listBookingsHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/list_bookings"
	newFlowHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/new_flow"
	refreshBookingsHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/refresh_bookings"
	searchSlotsHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/search_slots"
	selectSlotHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/select_slot"
	startEditHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers/start_edit"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/config"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	sessionRepo "github.com/redzuankdv/Parking-App-FrontEnd/internal/infra/storage/session"
	bookingStoreClient "github.com/redzuankdv/Parking-App-FrontEnd/internal/integrations/bookingstore"
	collectionService "github.com/redzuankdv/Parking-App-FrontEnd/internal/service/collection"
	sessionsService "github.com/redzuankdv/Parking-App-FrontEnd/internal/service/sessions"
	confirmBookingUC "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/confirm_booking"
	searchSlotsUC "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/search_slots"
	selectSlotUC "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/select_slot"
	startEditUC "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/start_edit"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/logger"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath := config.PathFromEnv()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateParking(); err != nil {
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

	log.Info("Starting CelerPark parking service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище клиентских сессий: Redis с откатом в память
	memorySessions := sessionRepo.NewMemoryRepository(cfg.SessionTTL())
	var sessionRepository sessionsService.SessionRepository = memorySessions

	if cfg.Redis.Address != "" {
		redisClient := sessionRepo.NewRedisClient(sessionRepo.RedisOptions{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := sessionRepo.Ping(pingCtx, redisClient); err != nil {
			log.Warn("Redis is not reachable at %s, sessions start in memory: %v", cfg.Redis.Address, err)
		} else {
			log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)
		}
		cancel()

		sessionRepository = sessionRepo.NewFailoverRepository(
			sessionRepo.NewRedisRepository(redisClient, cfg.SessionTTL()),
			memorySessions,
			log,
		)
	} else {
		log.Warn("Redis address is empty, client sessions are kept in memory only")
	}

	// Клиент внешнего хранилища бронирований
	storeClient := bookingStoreClient.NewClient(
		cfg.BookingStore.URL,
		cfg.StoreTimeout(),
		cfg.BookingStore.ReadRetries,
		log,
	)
	log.Info("Booking store client initialized (url=%s, timeout=%ds, read_retries=%d)",
		cfg.BookingStore.URL, cfg.BookingStore.Timeout, cfg.BookingStore.ReadRetries)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(sessionRepository, log)
	collectionSvc := collectionService.NewService(storeClient, sessionSvc, log)

	// Инициализируем use cases
	searchSlotsUseCase := searchSlotsUC.NewUseCase(
		storeClient,
		sessionSvc,
		domain.DefaultSlotCatalog,
		metricsCollector,
		log,
	)
	selectSlotUseCase := selectSlotUC.NewUseCase(sessionSvc, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		storeClient,
		sessionSvc,
		collectionSvc,
		metricsCollector,
		log,
	)
	startEditUseCase := startEditUC.NewUseCase(storeClient, sessionSvc, log)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(domain.DefaultSlotCatalog, log)
	getFlow := getFlowHandler.NewHandler(sessionSvc, log)
	newFlow := newFlowHandler.NewHandler(sessionSvc, log)
	searchSlots := searchSlotsHandler.NewHandler(searchSlotsUseCase, log)
	selectSlot := selectSlotHandler.NewHandler(selectSlotUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	startEdit := startEditHandler.NewHandler(startEditUseCase, log)
	listBookings := listBookingsHandler.NewHandler(collectionSvc, log)
	refreshBookings := refreshBookingsHandler.NewHandler(collectionSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(collectionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, log))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session)
	api.Use(middleware.NewIdentity(cfg.Auth.JWTSecret, cfg.Auth.TrustUserHeader, log).Wrap)
	if cfg.Auth.TrustUserHeader {
		log.Warn("auth.trust_user_header is enabled, X-User-ID is accepted without a token")
	}

	// Каталог и состояние формы
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/flow", getFlow.Handle).Methods(http.MethodGet)
	api.HandleFunc("/flow", newFlow.Handle).Methods(http.MethodPost)
	api.HandleFunc("/flow/select", selectSlot.Handle).Methods(http.MethodPost)

	// Обращения к хранилищу бронирований идут через ограничитель частоты
	limited := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limited.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log).Wrap)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	limited.HandleFunc("/flow/search", searchSlots.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/flow/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Бронирования пользователя ---
	limited.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	limited.HandleFunc("/bookings/refresh", refreshBookings.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/bookings/{bookingId}/edit", startEdit.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// CORS для браузерного клиента и защита от паник
	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type", middleware.HeaderSessionID, middleware.HeaderUserID}),
			gorillaHandlers.ExposedHeaders([]string{middleware.HeaderSessionID}),
			gorillaHandlers.AllowCredentials(),
		)(handler)
		log.Info("CORS enabled for origins: %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Server.TrustProxyHeaders {
		handler = gorillaHandlers.ProxyHeaders(handler)
		log.Info("Client address is taken from proxy headers")
	}
	handler = gorillaHandlers.RecoveryHandler()(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
