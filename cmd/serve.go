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
	"github.com/spf13/cobra"

	applyDiscountHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/apply_discount"
	cancelCheckoutHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/cancel_checkout"
	checkoutHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/checkout"
	closeDraftHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/close_draft"
	getAvailableSlotsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_available_slots"
	getDraftHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_draft"
	getFacilitiesHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_facilities"
	getFacilityHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_facility"
	openDraftHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/open_draft"
	updateDraftHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/update_draft"
	verifyPaymentHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/verify_payment"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/api/session"
	"github.com/m04kA/SMC-VenueBooking/internal/config"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/events"
	checkoutRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/checkout"
	draftRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/draft"
	bookingAPIClient "github.com/m04kA/SMC-VenueBooking/internal/integrations/bookingapi"
	discountServiceClient "github.com/m04kA/SMC-VenueBooking/internal/integrations/discountservice"
	draftsService "github.com/m04kA/SMC-VenueBooking/internal/service/drafts"
	facilitiesService "github.com/m04kA/SMC-VenueBooking/internal/service/facilities"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
	"github.com/m04kA/SMC-VenueBooking/internal/service/slots"
	applyDiscountUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/apply_discount"
	cancelCheckoutUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/cancel_checkout"
	checkoutUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/checkout"
	getAvailableSlotsUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_available_slots"
	verifyPaymentUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/verify_payment"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
)

// eventPublisher общий интерфейс Kafka-паблишера и заглушки
type eventPublisher interface {
	verifyPaymentUC.EventPublisher
	Close() error
}

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*configPath)
		},
	}
}

func serve(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueBooking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Venue.Location()
	if err != nil {
		log.Fatal("Invalid venue timezone: %v", err)
	}
	rules := cfg.Venue.Rules()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var dbCollector dbmetrics.Collector
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
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

	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)

	// Инициализируем интеграционных клиентов
	bookingClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		cfg.BookingAPI.TimeoutDuration(),
		location,
		log,
	)
	discountClient := discountServiceClient.NewClient(
		cfg.DiscountService.URL,
		cfg.DiscountService.TimeoutDuration(),
		log,
	)
	log.Info("Integration clients initialized (BookingAPI=%s timeout=%ds, DiscountService=%s timeout=%ds)",
		cfg.BookingAPI.URL, cfg.BookingAPI.Timeout, cfg.DiscountService.URL, cfg.DiscountService.Timeout)

	// Публикация событий о бронированиях
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		kafkaPublisher, err := events.NewPublisher(events.Config{
			Brokers:      cfg.Events.Brokers,
			Topic:        cfg.Events.Topic,
			WriteTimeout: time.Duration(cfg.Events.WriteTimeout) * time.Second,
		}, metricsCollector, log)
		if err != nil {
			log.Fatal("Failed to initialize event publisher: %v", err)
		}
		publisher = kafkaPublisher
		log.Info("Event publishing enabled (brokers=%v, topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Инициализируем репозитории
	draftRepository := draftRepo.NewRepository(wrappedDB, location)
	checkoutRepository := checkoutRepo.NewRepository(wrappedDB, location)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	engine := slots.NewEngine(rules)
	calculator := pricing.NewCalculator(rules)
	facilitySvc := facilitiesService.NewService(cfg.FacilityList(), rules, log)
	draftSvc := draftsService.NewService(
		draftRepository,
		facilitySvc,
		bookingClient,
		engine,
		calculator,
		location,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		facilitySvc,
		bookingClient,
		engine,
		location,
		log,
	)
	applyDiscountUseCase := applyDiscountUC.NewUseCase(
		draftRepository,
		facilitySvc,
		discountClient,
		calculator,
		draftSvc,
		metricsCollector,
		log,
	)
	checkoutUseCase := checkoutUC.NewUseCase(
		draftRepository,
		checkoutRepository,
		facilitySvc,
		bookingClient,
		engine,
		calculator,
		txMgr,
		metricsCollector,
		location,
		log,
	)
	cancelCheckoutUseCase := cancelCheckoutUC.NewUseCase(
		draftRepository,
		checkoutRepository,
		txMgr,
		draftSvc,
		log,
	)
	verifyPaymentUseCase := verifyPaymentUC.NewUseCase(
		draftRepository,
		checkoutRepository,
		bookingClient,
		publisher,
		draftSvc,
		metricsCollector,
		rules,
		log,
	)

	// Сессия черновика
	sessionStore := session.NewStore(session.Config{
		CookieName: cfg.Session.CookieName,
		HashKey:    []byte(cfg.Session.HashKey),
		BlockKey:   []byte(cfg.Session.BlockKey),
		MaxAge:     time.Duration(cfg.Session.MaxAge) * time.Second,
		Secure:     cfg.Session.Secure,
	})

	// Инициализируем handlers
	getFacilities := getFacilitiesHandler.NewHandler(facilitySvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	openDraft := openDraftHandler.NewHandler(draftSvc, sessionStore, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftSvc, log)
	closeDraft := closeDraftHandler.NewHandler(draftSvc, sessionStore, log)
	applyDiscount := applyDiscountHandler.NewHandler(applyDiscountUseCase, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	cancelCheckout := cancelCheckoutHandler.NewHandler(cancelCheckoutUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(verifyPaymentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.ForwardToken)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/facilities", getFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/draft", openDraft.Handle).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (требуют cookie черновика)
	// ============================================================

	draft := api.PathPrefix("/draft").Subrouter()
	draft.Use(middleware.RequireDraft(sessionStore, log))

	draft.HandleFunc("", getDraft.Handle).Methods(http.MethodGet)
	draft.HandleFunc("", updateDraft.Handle).Methods(http.MethodPatch)
	draft.HandleFunc("", closeDraft.Handle).Methods(http.MethodDelete)
	draft.HandleFunc("/checkout", cancelCheckout.Handle).Methods(http.MethodDelete)

	// --- Оплата (требует Bearer-токен для бэкенда бронирований) ---
	protected := draft.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/discount", applyDiscount.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/checkout", checkout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payment/verify", verifyPayment.Handle).Methods(http.MethodPost)

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

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped")
	return nil
}
