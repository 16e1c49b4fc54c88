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

	getCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_calendar"
	getCalendarsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_calendars"
	getDefaultCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_default_calendar"
	resolveCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/resolve_calendar"
	saveAssignmentHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/save_assignment"
	saveCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/save_calendar"
	validateCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/validate_calendar"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	assignmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/assignment"
	businessHoursRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/businesshours"
	calendarRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/calendar"
	holidayRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/holiday"
	assignmentsService "github.com/m04kA/SMC-CalendarService/internal/service/assignments"
	calendarsService "github.com/m04kA/SMC-CalendarService/internal/service/calendars"
	resolveCalendarUC "github.com/m04kA/SMC-CalendarService/internal/usecase/resolve_calendar"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/i18n"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
	"github.com/m04kA/SMC-CalendarService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/txmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/uid"
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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем каталог локализованных сообщений
	var translator *i18n.Translator
	if cfg.I18n.MessagesFile != "" {
		translator, err = i18n.NewFromFile(cfg.I18n.MessagesFile)
		if err != nil {
			log.Fatal("Failed to load i18n messages: %v", err)
		}
		log.Info("I18n messages loaded from %s", cfg.I18n.MessagesFile)
	} else {
		translator = i18n.New()
	}

	// Генератор UID календарей
	uidGenerator := uid.NewUUIDGenerator()

	// Инициализируем репозитории (с метриками или без)
	var (
		calendarRepository      *calendarRepo.Repository
		businessHoursRepository *businessHoursRepo.Repository
		holidayRepository       *holidayRepo.Repository
		assignmentRepository    *assignmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		businessHoursRepository = businessHoursRepo.NewRepository(wrappedDB)
		holidayRepository = holidayRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		calendarRepository = calendarRepo.NewRepository(db)
		businessHoursRepository = businessHoursRepo.NewRepository(db)
		holidayRepository = holidayRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	calendarSvc := calendarsService.NewService(
		calendarRepository,
		businessHoursRepository,
		holidayRepository,
		txMgr,
		uidGenerator,
		translator,
		log,
	)
	assignmentSvc := assignmentsService.NewService(
		assignmentRepository,
		calendarRepository,
		log,
	)

	// Инициализируем use cases
	resolveCalendarUseCase := resolveCalendarUC.NewUseCase(
		assignmentRepository,
		calendarSvc,
		log,
	)

	// Гарантируем наличие календаря по умолчанию до приёма трафика
	if err := calendarSvc.EnsureDefault(context.Background()); err != nil {
		log.Fatal("Failed to ensure default calendar: %v", err)
	}
	log.Info("Default calendar is in place")

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	getCalendars := getCalendarsHandler.NewHandler(calendarSvc, log)
	getDefaultCalendar := getDefaultCalendarHandler.NewHandler(calendarSvc, log)
	saveCalendar := saveCalendarHandler.NewHandler(calendarSvc, log)
	validateCalendar := validateCalendarHandler.NewHandler(calendarSvc, log)
	resolveCalendar := resolveCalendarHandler.NewHandler(resolveCalendarUseCase, log)
	saveAssignment := saveAssignmentHandler.NewHandler(assignmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь по умолчанию (регистрируем раньше маршрута с параметром)
	api.HandleFunc("/calendars/default", getDefaultCalendar.Handle).Methods(http.MethodGet)

	// Получение календаря по UID
	api.HandleFunc("/calendars/{calendarUid}", getCalendar.Handle).Methods(http.MethodGet)

	// Разрешение календаря по владельцам (task/process/user)
	api.HandleFunc("/calendars-resolution", resolveCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Календари ---
	// Список календарей
	protected.HandleFunc("/calendars", getCalendars.Handle).Methods(http.MethodGet)

	// Создание / пересохранение календаря
	protected.HandleFunc("/calendars", saveCalendar.Handle).Methods(http.MethodPost)

	// Проверка определения календаря без сохранения
	protected.HandleFunc("/calendars/validate", validateCalendar.Handle).Methods(http.MethodPost)

	// --- Привязки ---
	// Привязка календаря к владельцу
	protected.HandleFunc("/calendar-assignments", saveAssignment.Handle).Methods(http.MethodPost)

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
