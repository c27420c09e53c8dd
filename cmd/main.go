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

	addProfessorHandler "github.com/m04kA/office-hours-service/internal/api/handlers/add_professor"
	adminDashboardHandler "github.com/m04kA/office-hours-service/internal/api/handlers/admin_dashboard"
	bookAppointmentHandler "github.com/m04kA/office-hours-service/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/m04kA/office-hours-service/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/office-hours-service/internal/api/handlers/complete_appointment"
	getFreeSlotsHandler "github.com/m04kA/office-hours-service/internal/api/handlers/get_free_slots"
	listAllAppointmentsHandler "github.com/m04kA/office-hours-service/internal/api/handlers/list_all_appointments"
	listAppointmentsHandler "github.com/m04kA/office-hours-service/internal/api/handlers/list_appointments"
	listProfessorsHandler "github.com/m04kA/office-hours-service/internal/api/handlers/list_professors"
	loginHandler "github.com/m04kA/office-hours-service/internal/api/handlers/login"
	professorDashboardHandler "github.com/m04kA/office-hours-service/internal/api/handlers/professor_dashboard"
	registerStudentHandler "github.com/m04kA/office-hours-service/internal/api/handlers/register_student"
	toggleAvailabilityHandler "github.com/m04kA/office-hours-service/internal/api/handlers/toggle_availability"
	updateOfficeHoursHandler "github.com/m04kA/office-hours-service/internal/api/handlers/update_office_hours"
	"github.com/m04kA/office-hours-service/internal/api/middleware"
	"github.com/m04kA/office-hours-service/internal/config"
	"github.com/m04kA/office-hours-service/internal/domain"
	appointmentRepo "github.com/m04kA/office-hours-service/internal/infra/storage/appointment"
	ledgerRepo "github.com/m04kA/office-hours-service/internal/infra/storage/ledger"
	professorRepo "github.com/m04kA/office-hours-service/internal/infra/storage/professor"
	studentRepo "github.com/m04kA/office-hours-service/internal/infra/storage/student"
	"github.com/m04kA/office-hours-service/internal/integrations/notifications"
	appointmentsService "github.com/m04kA/office-hours-service/internal/service/appointments"
	authService "github.com/m04kA/office-hours-service/internal/service/auth"
	professorsService "github.com/m04kA/office-hours-service/internal/service/professors"
	bookAppointmentUC "github.com/m04kA/office-hours-service/internal/usecase/book_appointment"
	getFreeSlotsUC "github.com/m04kA/office-hours-service/internal/usecase/get_free_slots"
	"github.com/m04kA/office-hours-service/migrations"
	"github.com/m04kA/office-hours-service/pkg/dbmetrics"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
	"github.com/m04kA/office-hours-service/pkg/logger"
	"github.com/m04kA/office-hours-service/pkg/metrics"
	"github.com/m04kA/office-hours-service/pkg/migrator"
	"github.com/m04kA/office-hours-service/pkg/mq"
	"github.com/m04kA/office-hours-service/pkg/txmanager"
)

// eventNotifier объединяет хуки, которые вызывают use case и сервисы
type eventNotifier interface {
	AppointmentBooked(ctx context.Context, a *domain.Appointment) error
	AppointmentCancelled(ctx context.Context, a *domain.Appointment, by string) error
}

func main() {
	// Загружаем конфигурацию (.env и переменные OFFICEHOURS_* переопределяют файл)
	cfg, err := config.Load("config.toml", ".env")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting office-hours-service...")

	loc, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Invalid scheduling timezone: %v", err)
	}

	// Инициализируем метрики (если включены). nil-коллектор отключает запись.
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		m, err := migrator.New(db, migrations.FS, ".", log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := m.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Инициализируем репозитории
	professorRepository := professorRepo.NewRepository(wrappedDB)
	studentRepository := studentRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	ledgerRepository := ledgerRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем публикацию событий
	var notifier eventNotifier = notifications.NewLogNotifier(log)
	if cfg.RabbitMQ.Enabled {
		publisher, err := mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.Metrics.ServiceName)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		notifier = notifications.NewNotifier(publisher, metricsCollector, log)
		log.Info("Publishing events to exchange %s", cfg.RabbitMQ.Exchange)
	}

	tokens, err := jwtauth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), cfg.Auth.Issuer)
	if err != nil {
		log.Fatal("Failed to initialize token manager: %v", err)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		ledgerRepository,
		txMgr,
		notifier,
		metricsCollector,
		log,
	)
	professorSvc := professorsService.NewService(professorRepository, log)
	authSvc := authService.NewService(
		studentRepository,
		professorRepository,
		tokens,
		authService.AdminCredentials{
			Email:        cfg.Auth.AdminEmail,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		},
		log,
	)

	// Инициализируем use cases
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		professorRepository,
		ledgerRepository,
		getFreeSlotsUC.Options{
			Location:    loc,
			DefaultDays: cfg.Scheduling.DefaultHorizonDays,
			MaxDays:     cfg.Scheduling.MaxHorizonDays,
		},
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		studentRepository,
		professorRepository,
		appointmentRepository,
		ledgerRepository,
		txMgr,
		notifier,
		metricsCollector,
		bookAppointmentUC.Options{
			Location: loc,
			MaxDays:  cfg.Scheduling.MaxHorizonDays,
		},
		log,
	)

	// Инициализируем handlers
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	professorDashboard := professorDashboardHandler.NewHandler(appointmentSvc, log)
	listAllAppointments := listAllAppointmentsHandler.NewHandler(appointmentSvc, log)
	adminDashboard := adminDashboardHandler.NewHandler(appointmentSvc, log)
	listProfessors := listProfessorsHandler.NewHandler(professorSvc, log)
	updateOfficeHours := updateOfficeHoursHandler.NewHandler(professorSvc, log)
	toggleAvailability := toggleAvailabilityHandler.NewHandler(professorSvc, log)
	addProfessor := addProfessorHandler.NewHandler(professorSvc, log)
	registerStudent := registerStudentHandler.NewHandler(authSvc, log)
	studentLogin := loginHandler.NewHandler(authSvc, jwtauth.RoleStudent, log)
	professorLogin := loginHandler.NewHandler(authSvc, jwtauth.RoleProfessor, log)
	adminLogin := loginHandler.NewHandler(authSvc, jwtauth.RoleAdmin, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/students/register", registerStudent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/students/login", studentLogin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/professors/login", professorLogin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// Каталог преподавателей и их свободные слоты
	api.HandleFunc("/professors", listProfessors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professors/{professorId}/slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	// --- Студент ---
	student := api.PathPrefix("").Subrouter()
	student.Use(middleware.Auth(tokens), middleware.RequireRole(jwtauth.RoleStudent))
	student.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	student.HandleFunc("/students/me/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// --- Преподаватель ---
	professor := api.PathPrefix("/professors/me").Subrouter()
	professor.Use(middleware.Auth(tokens), middleware.RequireRole(jwtauth.RoleProfessor))
	professor.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	professor.HandleFunc("/dashboard", professorDashboard.Handle).Methods(http.MethodGet)
	professor.HandleFunc("/office-hours", updateOfficeHours.Handle).Methods(http.MethodPut)
	professor.HandleFunc("/availability", toggleAvailability.Handle).Methods(http.MethodPost)

	// --- Участники записи (принадлежность проверяет сервис) ---
	participant := api.PathPrefix("/appointments/{appointmentId}").Subrouter()
	participant.Use(middleware.Auth(tokens), middleware.RequireRole(jwtauth.RoleStudent, jwtauth.RoleProfessor))
	participant.HandleFunc("/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	completion := api.PathPrefix("/appointments/{appointmentId}").Subrouter()
	completion.Use(middleware.Auth(tokens), middleware.RequireRole(jwtauth.RoleProfessor))
	completion.HandleFunc("/complete", completeAppointment.Handle).Methods(http.MethodPost)

	// --- Администратор ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(tokens), middleware.RequireRole(jwtauth.RoleAdmin))
	admin.HandleFunc("/professors", addProfessor.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/professors/{professorId}/availability", toggleAvailability.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", listAllAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard", adminDashboard.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
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
