package main

import (
	"context"
	"database/sql"
	"errors"
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

	cancelBookingHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/check_availability"
	confirmDatesHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/confirm_dates"
	createBookingHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/create_booking"
	exportICSHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/export_vehicle_bookings_ics"
	getBookedDatesHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/get_booked_dates"
	getBookingHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/get_booking"
	getCalendarMonthHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/get_calendar_month"
	getVehicleBookingsHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/get_vehicle_bookings"
	healthHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/health"
	selectDateHandler "github.com/m04kA/SMC-RentalCalendar/internal/api/handlers/select_date"
	"github.com/m04kA/SMC-RentalCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-RentalCalendar/internal/config"
	bookingRepo "github.com/m04kA/SMC-RentalCalendar/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalCalendar/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-RentalCalendar/internal/service/blockeddates"
	bookingsService "github.com/m04kA/SMC-RentalCalendar/internal/service/bookings"
	checkAvailabilityUC "github.com/m04kA/SMC-RentalCalendar/internal/usecase/check_availability"
	confirmDatesUC "github.com/m04kA/SMC-RentalCalendar/internal/usecase/confirm_dates"
	createBookingUC "github.com/m04kA/SMC-RentalCalendar/internal/usecase/create_booking"
	getCalendarMonthUC "github.com/m04kA/SMC-RentalCalendar/internal/usecase/get_calendar_month"
	selectDateUC "github.com/m04kA/SMC-RentalCalendar/internal/usecase/select_date"
	"github.com/m04kA/SMC-RentalCalendar/migrations"
	"github.com/m04kA/SMC-RentalCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalCalendar/pkg/logger"
	"github.com/m04kA/SMC-RentalCalendar/pkg/metrics"
	"github.com/m04kA/SMC-RentalCalendar/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CALENDAR_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
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

	log.Info("Starting SMC-RentalCalendar...")

	location, err := cfg.Calendar.TimeLocation()
	if err != nil {
		log.Fatal("Invalid calendar location: %v", err)
	}
	log.Info("Calendar location: %s", location)

	// Метрики (если включены). nil коллектор ничего не пишет.
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	stopMetricsCh := make(chan struct{})
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Хранилище и транзакции
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Источник бронирований для календаря. По умолчанию это API этого же сервиса.
	rentalClient := rentalapi.NewClient(
		cfg.RentalAPI.URL,
		time.Duration(cfg.RentalAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Rental API client initialized (url=%s, timeout=%ds)", cfg.RentalAPI.URL, cfg.RentalAPI.Timeout)

	// Сервисы
	blockedDates := blockeddates.NewService(rentalClient, metricsCollector, location, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)

	// Use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, txMgr, location, log)
	getCalendarMonthUseCase := getCalendarMonthUC.NewUseCase(blockedDates, log)
	selectDateUseCase := selectDateUC.NewUseCase(blockedDates, log)
	confirmDatesUseCase := confirmDatesUC.NewUseCase(rentalClient, metricsCollector, log)

	// Handlers
	getVehicleBookings := getVehicleBookingsHandler.NewHandler(bookingSvc, log)
	exportICS := exportICSHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBookedDates := getBookedDatesHandler.NewHandler(blockedDates, log)
	getCalendarMonth := getCalendarMonthHandler.NewHandler(getCalendarMonthUseCase, log)
	selectDate := selectDateHandler.NewHandler(selectDateUseCase, log)
	confirmDates := confirmDatesHandler.NewHandler(confirmDatesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
		go limiter.Cleanup(ctx)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f rps, burst %d, trust proxy %t", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Бронирования автомобиля: источник недоступных дат календаря
	api.HandleFunc("/vehicles/{vehicleId}/bookings", getVehicleBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}/bookings.ics", exportICS.Handle).Methods(http.MethodGet)

	// Проверка доступности дат
	api.HandleFunc("/vehicles/{vehicleId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Календарь
	api.HandleFunc("/vehicles/{vehicleId}/booked-dates", getBookedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}/calendar", getCalendarMonth.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}/calendar/select", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{vehicleId}/confirm-dates", confirmDates.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуется X-User-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.UserIDHeader, middleware.RequestIDHeader}),
		gorillaHandlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      cors(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Info("HTTP server listening on port %d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stop()
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
