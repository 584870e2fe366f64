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

	approveAppointmentHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/approve_appointment"
	availabilitiesHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/availabilities"
	cancelAppointmentHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableTrainersHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/get_available_trainers"
	getUserAppointmentsHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/get_user_appointments"
	listAppointmentsHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/list_appointments"
	rejectAppointmentHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/reject_appointment"
	servicesHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/services"
	trainersHandler "github.com/sportclub/SC-AppointmentService/internal/api/handlers/trainers"
	"github.com/sportclub/SC-AppointmentService/internal/api/middleware"
	"github.com/sportclub/SC-AppointmentService/internal/config"
	appointmentRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/appointment"
	availabilityRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/availability"
	serviceRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/service"
	trainerRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/trainer"
	appointmentsService "github.com/sportclub/SC-AppointmentService/internal/service/appointments"
	availabilityService "github.com/sportclub/SC-AppointmentService/internal/service/availability"
	catalogService "github.com/sportclub/SC-AppointmentService/internal/service/catalog"
	trainersService "github.com/sportclub/SC-AppointmentService/internal/service/trainers"
	createAppointmentUC "github.com/sportclub/SC-AppointmentService/internal/usecase/create_appointment"
	findAvailableTrainersUC "github.com/sportclub/SC-AppointmentService/internal/usecase/find_available_trainers"
	"github.com/sportclub/SC-AppointmentService/pkg/dbmetrics"
	"github.com/sportclub/SC-AppointmentService/pkg/logger"
	"github.com/sportclub/SC-AppointmentService/pkg/metrics"
	"github.com/sportclub/SC-AppointmentService/pkg/simpletxmanager"
	"github.com/sportclub/SC-AppointmentService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Transaction manager interface shared by usecases and services
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		serviceRepository      *serviceRepo.Repository
		trainerRepository      *trainerRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		trainerRepository = trainerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		trainerRepository = trainerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	trainersSvc := trainersService.NewService(trainerRepository, serviceRepository, txMgr, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, trainerRepository, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		serviceRepository,
		availabilityRepository,
		appointmentRepository,
		txMgr,
		log,
	)
	findAvailableTrainersUseCase := findAvailableTrainersUC.NewUseCase(
		serviceRepository,
		trainerRepository,
		availabilityRepository,
		appointmentRepository,
		log,
	)

	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableTrainers := getAvailableTrainersHandler.NewHandler(findAvailableTrainersUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	approveAppointment := approveAppointmentHandler.NewHandler(appointmentsSvc, log)
	rejectAppointment := rejectAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	servicesH := servicesHandler.NewHandler(catalogSvc, log)
	trainersH := trainersHandler.NewHandler(trainersSvc, log)
	availabilitiesH := availabilitiesHandler.NewHandler(availabilitySvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/trainers/available", getAvailableTrainers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", servicesH.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", servicesH.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/trainers", trainersH.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/trainers/{trainerId}", trainersH.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/availabilities", availabilitiesH.HandleList).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// Admin routes (require X-User-Role: admin)
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/approve", approveAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/reject", rejectAppointment.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/services", servicesH.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", servicesH.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", servicesH.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/trainers", trainersH.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/trainers/{trainerId}", trainersH.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/trainers/{trainerId}", trainersH.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/availabilities", availabilitiesH.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/availabilities/{availabilityId}", availabilitiesH.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/availabilities/{availabilityId}", availabilitiesH.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/availabilities/{availabilityId}", availabilitiesH.HandleDelete).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
