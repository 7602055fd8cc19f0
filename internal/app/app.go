package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/config"
	"github.com/academico/portal-service/internal/delivery/httpd"
	"github.com/academico/portal-service/internal/identity"
	"github.com/academico/portal-service/internal/repository"
	"github.com/academico/portal-service/internal/service"
	"github.com/academico/portal-service/internal/service/integration"
)

type App struct {
	server    *http.Server
	logger    zerolog.Logger
	config    *config.Config
	db        *sql.DB
	publisher integration.EventPublisher
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	// Создаем интеграционные клиенты
	webhookClient := integration.NewWebhookClient(
		cfg.Webhook.URL,
		cfg.Webhook.Timeout,
		cfg.Webhook.RetryCount,
		cfg.Webhook.RetryDelay,
		log,
	)

	publisher, err := integration.NewEventPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to event broker")
		// Продолжаем без брокера, это допустимо для разработки
		publisher = nil
	}

	// Создаем репозитории
	baseRepo := repository.NewPostgresRepository(db, log)
	studentRepo := repository.NewStudentRepository(db, log)
	courseRepo := repository.NewCourseRepository(db, log)
	sectionRepo := repository.NewSectionRepository(db, log)
	enrollmentRepo := repository.NewEnrollmentRepository(db, log)
	gradeRepo := repository.NewGradeRepository(db, log)
	attendanceRepo := repository.NewAttendanceRepository(db, log)

	identityProvider := identity.NewProvider()

	// Создаем сервисы
	academicService := service.NewAcademicService(enrollmentRepo, sectionRepo, courseRepo, log)
	studentService := service.NewStudentService(studentRepo, log)
	gradeService := service.NewGradeService(gradeRepo, enrollmentRepo, publisher, log)
	attendanceService := service.NewAttendanceService(attendanceRepo, enrollmentRepo, publisher, log)
	chatService := service.NewChatService(webhookClient, identityProvider, cfg.Chat.MaxMessageLength, log)

	// Создаем обработчики
	handler := httpd.NewHandler(
		academicService,
		studentService,
		gradeService,
		attendanceService,
		chatService,
		baseRepo,
		log,
	)

	verifier := identity.NewTokenVerifier(cfg.Auth.JWTSecret)

	// Создаем роутер
	router := chi.NewRouter()

	// Настраиваем middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Настраиваем CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	// Регистрируем маршруты
	handler.RegisterRoutes(router, verifier)

	// Создаем HTTP сервер
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:    server,
		logger:    log,
		config:    cfg,
		db:        db,
		publisher: publisher,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting portal service on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down portal service...")

	// Закрываем соединение с брокером
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close event publisher connection")
		}
	}

	// Закрываем соединение с БД
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	// Останавливаем сервер
	return a.server.Shutdown(ctx)
}
