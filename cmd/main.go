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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyBatchPricingHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/apply_batch_pricing"
	cancelBookingHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/get_booking"
	getCabinBookingsHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/get_cabin_bookings"
	getCabinCalendarHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/get_cabin_calendar"
	getCabinPricingHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/get_cabin_pricing"
	getLocationSummaryHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/get_location_summary"
	getUserBookingsHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/get_user_bookings"
	updateCabinPricingHandler "github.com/glamspot/GS-CabinService/internal/api/handlers/update_cabin_pricing"
	"github.com/glamspot/GS-CabinService/internal/api/middleware"
	"github.com/glamspot/GS-CabinService/internal/config"
	bookingRepo "github.com/glamspot/GS-CabinService/internal/infra/storage/booking"
	pricingRepo "github.com/glamspot/GS-CabinService/internal/infra/storage/pricing"
	catalogServiceClient "github.com/glamspot/GS-CabinService/internal/integrations/catalogservice"
	bookingsService "github.com/glamspot/GS-CabinService/internal/service/bookings"
	pricingService "github.com/glamspot/GS-CabinService/internal/service/pricing"
	applyBatchPricingUC "github.com/glamspot/GS-CabinService/internal/usecase/apply_batch_pricing"
	createBookingUC "github.com/glamspot/GS-CabinService/internal/usecase/create_booking"
	getCabinCalendarUC "github.com/glamspot/GS-CabinService/internal/usecase/get_cabin_calendar"
	getLocationSummaryUC "github.com/glamspot/GS-CabinService/internal/usecase/get_location_summary"
	"github.com/glamspot/GS-CabinService/pkg/dbmetrics"
	"github.com/glamspot/GS-CabinService/pkg/logger"
	"github.com/glamspot/GS-CabinService/pkg/metrics"
	"github.com/glamspot/GS-CabinService/pkg/simpletxmanager"
	"github.com/glamspot/GS-CabinService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting GS-CabinService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент каталога
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Интерфейсы менеджера транзакций и рекордера метрик движка,
	// чтобы развести ветки с метриками и без
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	type EngineMetrics interface {
		RecordSlotResolution(status string)
		RecordBatchOverrides(result string, count int)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		pricingRepository *pricingRepo.Repository
		txMgr             TxManager
		engineMetrics     EngineMetrics
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		pricingRepository = pricingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		engineMetrics = metricsCollector
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		pricingRepository = pricingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
		engineMetrics = metrics.NewNoop()
	}

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService(
		pricingRepository,
		catalogClient,
		txMgr,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogClient,
		log,
	)

	// Инициализируем use cases
	getCabinCalendarUseCase := getCabinCalendarUC.NewUseCase(
		pricingSvc,
		bookingRepository,
		engineMetrics,
		log,
	)
	getLocationSummaryUseCase := getLocationSummaryUC.NewUseCase(
		pricingSvc,
		bookingRepository,
		log,
	)
	applyBatchPricingUseCase := applyBatchPricingUC.NewUseCase(
		pricingSvc,
		pricingRepository,
		txMgr,
		engineMetrics,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		pricingSvc,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getCabinCalendar := getCabinCalendarHandler.NewHandler(getCabinCalendarUseCase, log)
	getLocationSummary := getLocationSummaryHandler.NewHandler(getLocationSummaryUseCase, log)
	applyBatchPricing := applyBatchPricingHandler.NewHandler(applyBatchPricingUseCase, log)
	getCabinPricing := getCabinPricingHandler.NewHandler(pricingSvc, log)
	updateCabinPricing := updateCabinPricingHandler.NewHandler(pricingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCabinBookings := getCabinBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь кабины: статус и цена каждой (дата, смена) пары окна
	api.HandleFunc("/cabins/{cabinId}/calendar", getCabinCalendar.Handle).Methods(http.MethodGet)

	// Сводка доступности локации для листинга
	api.HandleFunc("/locations/{locationId}/summary", getLocationSummary.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Управление кабиной (для владельцев) ---
	// Бронирования кабины
	protected.HandleFunc("/cabins/{cabinId}/bookings", getCabinBookings.Handle).Methods(http.MethodGet)

	// Слои прайсинга кабины
	protected.HandleFunc("/cabins/{cabinId}/pricing", getCabinPricing.Handle).Methods(http.MethodGet)

	// Замена недельной таблицы цен
	protected.HandleFunc("/cabins/{cabinId}/pricing", updateCabinPricing.Handle).Methods(http.MethodPut)

	// Пакетная правка цен в слое переопределений
	protected.HandleFunc("/cabins/{cabinId}/pricing/batch", applyBatchPricing.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
