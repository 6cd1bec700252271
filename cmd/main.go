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

	createBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_booking"
	createHostProfileHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_host_profile"
	createPropertyHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_property"
	createReviewHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_review"
	createTransactionHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_transaction"
	createUserHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_user"
	deleteAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_availability"
	deleteBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_booking"
	deletePropertyHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_property"
	deleteReviewHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_review"
	deleteUserHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_user"
	findHostProfileHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/find_host_profile"
	getAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_booking"
	getHostProfileHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_host_profile"
	getPropertyHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_property"
	getReviewHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_review"
	getTransactionHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_transaction"
	getUserHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_user"
	listBookingsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_bookings"
	listPropertiesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_properties"
	listReviewsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_reviews"
	listTransactionsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_transactions"
	listUsersHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_users"
	reserveAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/reserve_availability"
	updateAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_availability"
	updateHostProfileHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_host_profile"
	updatePropertyHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_property"
	updateReviewHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_review"
	updateTransactionHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_transaction"
	updateUserHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_user"
	upsertAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/upsert_availability"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	hostProfileRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/hostprofile"
	propertyRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/property"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
	transactionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/transaction"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
	availabilityService "github.com/m04kA/SMC-RentalService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-RentalService/internal/service/bookings"
	hostProfilesService "github.com/m04kA/SMC-RentalService/internal/service/hostprofiles"
	propertiesService "github.com/m04kA/SMC-RentalService/internal/service/properties"
	reviewsService "github.com/m04kA/SMC-RentalService/internal/service/reviews"
	transactionsService "github.com/m04kA/SMC-RentalService/internal/service/transactions"
	usersService "github.com/m04kA/SMC-RentalService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-RentalService/internal/usecase/get_availability"
	upsertAvailabilityUC "github.com/m04kA/SMC-RentalService/internal/usecase/upsert_availability"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
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

	log.Info("Starting SMC-RentalService...")
	log.Info("Configuration loaded from %s", configPath)

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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Метрики и обёртка над БД. Без метрик обёртка только прокидывает транзакцию через контекст
	var (
		metricsCollector *metrics.Metrics
		wrappedDB        *dbmetrics.DB
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	propertyRepository := propertyRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	transactionRepository := transactionRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	hostProfileRepository := hostProfileRepo.NewRepository(wrappedDB)

	// Сервисы
	propertySvc := propertiesService.NewService(propertyRepository, cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit, log)
	bookingSvc := bookingsService.NewService(bookingRepository, cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, propertyRepository, txMgr, log)
	transactionSvc := transactionsService.NewService(
		transactionRepository,
		bookingRepository,
		userRepository,
		cfg.Listing.DefaultLimit,
		cfg.Listing.MaxLimit,
		log,
	)
	reviewSvc := reviewsService.NewService(
		reviewRepository,
		propertyRepository,
		bookingRepository,
		userRepository,
		cfg.Listing.DefaultLimit,
		cfg.Listing.MaxLimit,
		log,
	)
	userSvc := usersService.NewService(userRepository, cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit, log)
	hostProfileSvc := hostProfilesService.NewService(hostProfileRepository, userRepository, log)

	// Use cases
	strictDates := cfg.Availability.Strict()

	createBookingUseCase := createBookingUC.NewUseCase(
		propertyRepository,
		bookingRepository,
		availabilitySvc,
		txMgr,
		cfg.Booking.ReserveNights,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		availabilityRepository,
		propertyRepository,
		strictDates,
		cfg.Availability.DefaultLimit,
		cfg.Availability.MaxLimit,
		log,
	)
	upsertAvailabilityUseCase := upsertAvailabilityUC.NewUseCase(
		availabilityRepository,
		propertyRepository,
		strictDates,
		log,
	)
	log.Info("Booking rules: reserve_nights=%t, strict_calendar_dates=%t", cfg.Booking.ReserveNights, strictDates)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	upsertAvailability := upsertAvailabilityHandler.NewHandler(upsertAvailabilityUseCase, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	reserveAvailability := reserveAvailabilityHandler.NewHandler(availabilitySvc, log)

	getProperty := getPropertyHandler.NewHandler(propertySvc, log)
	listProperties := listPropertiesHandler.NewHandler(propertySvc, cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit, log)
	createProperty := createPropertyHandler.NewHandler(propertySvc, log)
	updateProperty := updatePropertyHandler.NewHandler(propertySvc, log)
	deleteProperty := deletePropertyHandler.NewHandler(propertySvc, log)

	createTransaction := createTransactionHandler.NewHandler(transactionSvc, log)
	getTransaction := getTransactionHandler.NewHandler(transactionSvc, log)
	listTransactions := listTransactionsHandler.NewHandler(transactionSvc, cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit, log)
	updateTransaction := updateTransactionHandler.NewHandler(transactionSvc, log)

	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	getReview := getReviewHandler.NewHandler(reviewSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit, log)
	updateReview := updateReviewHandler.NewHandler(reviewSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewSvc, log)

	createUser := createUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)

	createHostProfile := createHostProfileHandler.NewHandler(hostProfileSvc, log)
	getHostProfile := getHostProfileHandler.NewHandler(hostProfileSvc, log)
	findHostProfile := findHostProfileHandler.NewHandler(hostProfileSvc, log)
	updateHostProfile := updateHostProfileHandler.NewHandler(hostProfileSvc, log)

	// Источник идентификатора пользователя для защищенных маршрутов
	var identity middleware.IdentityProvider
	switch cfg.Auth.Mode {
	case config.AuthModeJWT:
		identity = middleware.NewJWTIdentity(cfg.Auth.JWTSecret)
		log.Info("Auth mode: jwt")
	default:
		identity = middleware.NewHeaderIdentity(cfg.Auth.HeaderName)
		log.Warn("Auth mode: header (%s). User identity is not verified, use only for development", cfg.Auth.HeaderName)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Объекты ---
	api.HandleFunc("/properties", listProperties.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties", createProperty.Handle).Methods(http.MethodPost)
	api.HandleFunc("/properties/{id}", getProperty.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", updateProperty.Handle).Methods(http.MethodPut)
	api.HandleFunc("/properties/{id}", deleteProperty.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Календарь доступности ---
	// reserve регистрируется раньше /{id}
	api.HandleFunc("/property-availability/reserve", reserveAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/property-availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/property-availability", upsertAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/property-availability/{id}", updateAvailability.Handle).Methods(http.MethodPut)
	api.HandleFunc("/property-availability/{id}", deleteAvailability.Handle).Methods(http.MethodDelete)

	// --- Транзакции ---
	api.HandleFunc("/transactions", listTransactions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", getTransaction.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews/{id}", getReview.Handle).Methods(http.MethodGet)

	// --- Пользователи ---
	api.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", getUser.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", updateUser.Handle).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", deleteUser.Handle).Methods(http.MethodDelete)

	// --- Профили хозяев ---
	api.HandleFunc("/host-profiles", findHostProfile.Handle).Methods(http.MethodGet)
	api.HandleFunc("/host-profiles", createHostProfile.Handle).Methods(http.MethodPost)
	api.HandleFunc("/host-profiles/{id}", getHostProfile.Handle).Methods(http.MethodGet)
	api.HandleFunc("/host-profiles/{id}", updateHostProfile.Handle).Methods(http.MethodPut)

	// Публичные маршруты регистрируются раньше защищенного подроутера
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(identity))

	protected.HandleFunc("/transactions", createTransaction.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/transactions/{id}", updateTransaction.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{id}", updateReview.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reviews/{id}", deleteReview.Handle).Methods(http.MethodDelete)

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
