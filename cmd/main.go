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

	deleteAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointments"
	getNotificationsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_notifications"
	getReportHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_report"
	markNotificationReadHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/mark_notification_read"
	saveAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/save_appointment"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	employeeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/employee"
	expenseRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/expense"
	notificationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-SalonService/internal/integrations/mailer"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	notificationsService "github.com/m04kA/SMC-SalonService/internal/service/notifications"
	reportsService "github.com/m04kA/SMC-SalonService/internal/service/reports"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	saveAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/save_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
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

	// Обёртка БД: с метриками или прозрачный прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB).WithMaxRetries(cfg.Database.MaxRetries)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	employeeRepository := employeeRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	expenseRepository := expenseRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	if cfg.Notifications.SMTPEnabled {
		mailClient := mailer.NewClient(mailer.Settings{
			Host:     cfg.Notifications.SMTPHost,
			Port:     cfg.Notifications.SMTPPort,
			User:     cfg.Notifications.SMTPUser,
			Password: cfg.Notifications.SMTPPassword,
			From:     cfg.Notifications.From,
		}, log)
		notificationSvc.WithMailer(mailClient, cfg.Notifications.Subject)
		log.Info("E-mail notifications enabled (smtp=%s:%d)", cfg.Notifications.SMTPHost, cfg.Notifications.SMTPPort)
	}

	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	reportSvc := reportsService.NewService(
		appointmentRepository,
		employeeRepository,
		catalogRepository,
		expenseRepository,
		txMgr,
		cfg.Scheduling.MaxReportRangeDays,
		log,
	)

	// Инициализируем use cases
	saveAppointmentUseCase := saveAppointmentUC.NewUseCase(
		appointmentRepository,
		employeeRepository,
		clientRepository,
		catalogRepository,
		notificationSvc,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		employeeRepository,
		catalogRepository,
		cfg.Scheduling.SlotStepMinutes,
		cfg.Scheduling.MinNoticeMinutes,
		log,
	)

	if cfg.Metrics.Enabled {
		saveAppointmentUseCase.WithMetrics(metricsCollector)
		reportSvc.WithMetrics(metricsCollector)
	}

	// Инициализируем handlers
	saveAppointment := saveAppointmentHandler.NewHandler(saveAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getReport := getReportHandler.NewHandler(reportSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Записи ---
	// Проверка доступности без сохранения (регистрируется до /{appointmentId})
	api.HandleFunc("/appointments/check", saveAppointment.HandleCheck).Methods(http.MethodPost)
	api.HandleFunc("/appointments", saveAppointment.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", saveAppointment.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Свободное время сотрудника для услуги
	api.HandleFunc("/employees/{employeeId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Отчеты ---
	api.HandleFunc("/reports/commissions", getReport.HandleCommissions).Methods(http.MethodGet)
	api.HandleFunc("/reports/income", getReport.HandleIncome).Methods(http.MethodGet)
	api.HandleFunc("/reports/occupancy", getReport.HandleOccupancy).Methods(http.MethodGet)
	api.HandleFunc("/reports/cash-flow", getReport.HandleCashFlow).Methods(http.MethodGet)

	// --- Уведомления сотрудников ---
	api.HandleFunc("/employees/{employeeId}/notifications", getNotifications.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{notificationId}", markNotificationRead.Handle).Methods(http.MethodPatch)

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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся писем, отправляемых в фоне
	notificationSvc.Wait()

	log.Info("Server stopped gracefully")
}
