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

	createMenuHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_menu"
	createOwnerReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_owner_reservation"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	deleteMenuHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_menu"
	deleteReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	getReservationCountsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation_counts"
	getTenantConfigHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_tenant_config"
	listOwnerMenusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_owner_menus"
	listPublicMenusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_public_menus"
	listTenantReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_tenant_reservations"
	updateMenuHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_menu"
	updateNotificationSettingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_notification_settings"
	updateTenantConfigHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_tenant_config"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	menuRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/menu"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	tenantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/tenant"
	emailGatewayClient "github.com/m04kA/SMC-ReservationService/internal/integrations/emailgateway"
	smsGatewayClient "github.com/m04kA/SMC-ReservationService/internal/integrations/smsgateway"
	menusService "github.com/m04kA/SMC-ReservationService/internal/service/menus"
	notificationsService "github.com/m04kA/SMC-ReservationService/internal/service/notifications"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	tenantsService "github.com/m04kA/SMC-ReservationService/internal/service/tenants"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
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

	log.Info("Starting SMC-ReservationService...")
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

	// Инициализируем клиентов шлюзов уведомлений
	emailClient := emailGatewayClient.NewClient(
		cfg.Notifications.EmailGatewayURL,
		time.Duration(cfg.Notifications.EmailTimeout)*time.Second,
		log,
	)
	smsClient := smsGatewayClient.NewClient(
		cfg.Notifications.SMSGatewayURL,
		time.Duration(cfg.Notifications.SMSTimeout)*time.Second,
		log,
	)
	log.Info("Notification gateway clients initialized (email=%s, sms=%s, enabled=%t)",
		cfg.Notifications.EmailGatewayURL, cfg.Notifications.SMSGatewayURL, cfg.Notifications.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		tenantRepository      *tenantRepo.Repository
		menuRepository        *menuRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tenantRepository = tenantRepo.NewRepository(wrappedDB)
		menuRepository = menuRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		tenantRepository = tenantRepo.NewRepository(db)
		menuRepository = menuRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	notifier := notificationsService.NewService(
		emailClient,
		smsClient,
		notificationsService.Options{
			Enabled:         cfg.Notifications.Enabled,
			DispatchTimeout: time.Duration(cfg.Notifications.DispatchTimeout) * time.Second,
			SenderEmail:     cfg.Notifications.SenderEmail,
			SenderPhone:     cfg.Notifications.SenderPhone,
		},
		log,
	)
	tenantsSvc := tenantsService.NewService(tenantRepository, txMgr, log)
	menusSvc := menusService.NewService(menuRepository, tenantRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, tenantRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tenantRepository,
		menuRepository,
		notifier,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		tenantRepository,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	createOwnerReservation := createOwnerReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	listTenantReservations := listTenantReservationsHandler.NewHandler(reservationsSvc, log)
	getReservationCounts := getReservationCountsHandler.NewHandler(reservationsSvc, log)
	getTenantConfig := getTenantConfigHandler.NewHandler(tenantsSvc, log)
	updateTenantConfig := updateTenantConfigHandler.NewHandler(tenantsSvc, log)
	updateNotificationSettings := updateNotificationSettingsHandler.NewHandler(tenantsSvc, log)
	listPublicMenus := listPublicMenusHandler.NewHandler(menusSvc, log)
	listOwnerMenus := listOwnerMenusHandler.NewHandler(menusSvc, log)
	createMenu := createMenuHandler.NewHandler(menusSvc, log)
	updateMenu := updateMenuHandler.NewHandler(menusSvc, log)
	deleteMenu := deleteMenuHandler.NewHandler(menusSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (страница бронирования, без аутентификации)
	// ============================================================

	// Календарь доступности слотов
	api.HandleFunc("/tenants/{tenantSlug}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Активные пункты меню
	api.HandleFunc("/tenants/{tenantSlug}/menus",
		listPublicMenus.Handle).Methods(http.MethodGet)

	// Создание брони клиентом
	api.HandleFunc("/tenants/{tenantSlug}/reservations",
		createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Брони ---
	protected.HandleFunc("/tenants/{tenantSlug}/owner/reservations",
		createOwnerReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tenants/{tenantSlug}/reservations",
		listTenantReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantSlug}/reservation-counts",
		getReservationCounts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}",
		getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}",
		deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Настройки тенанта ---
	protected.HandleFunc("/tenants/{tenantSlug}/config",
		getTenantConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantSlug}/config",
		updateTenantConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/tenants/{tenantSlug}/notification-settings",
		updateNotificationSettings.Handle).Methods(http.MethodPut)

	// --- Меню услуг ---
	protected.HandleFunc("/tenants/{tenantSlug}/owner/menus",
		listOwnerMenus.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantSlug}/menus",
		createMenu.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/menus/{menuId}",
		updateMenu.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/menus/{menuId}",
		deleteMenu.Handle).Methods(http.MethodDelete)

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
