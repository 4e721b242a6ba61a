package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/coursehub/assignment-service/internal/bootstrap"
	"github.com/coursehub/assignment-service/internal/config"
	"github.com/coursehub/assignment-service/internal/delivery/httpd"
	"github.com/coursehub/assignment-service/internal/middleware"
	"github.com/coursehub/assignment-service/internal/repository"
	"github.com/coursehub/assignment-service/internal/service"
	"github.com/coursehub/assignment-service/internal/service/integration"
)

type App struct {
	server       *http.Server
	logger       zerolog.Logger
	config       *config.Config
	db           *sql.DB
	brokerClient integration.BrokerClient
	loader       *bootstrap.Loader
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	brokerClient, err := integration.NewBrokerClient(
		cfg.RabbitMQ.URL,
		cfg.RabbitMQ.Exchange,
		cfg.RabbitMQ.RoutingKey,
		cfg.RabbitMQ.QueueName,
		log,
	)
	if err != nil {
		// Submission events degrade to best effort without a broker.
		log.Error().Err(err).Msg("Failed to create RabbitMQ client")
		brokerClient = nil
	}

	userRepo := repository.NewUserRepository(db, log)
	assignmentRepo := repository.NewAssignmentRepository(db, log)
	submissionRepo := repository.NewSubmissionRepository(db, log)

	userService := service.NewUserService(userRepo, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, log)
	submissionService := service.NewSubmissionService(
		submissionRepo,
		assignmentRepo,
		brokerClient,
		log,
	)

	loader := bootstrap.NewLoader(userService, log)

	handler := httpd.NewHandler(
		userService,
		assignmentService,
		submissionService,
		repository.NewPostgresRepository(db, log),
		log,
	)

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(log))
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Timeout(60 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:       server,
		logger:       log,
		config:       cfg,
		db:           db,
		brokerClient: brokerClient,
		loader:       loader,
	}, nil
}

// Seed loads the bootstrap accounts when a CSV path is configured.
func (a *App) Seed(ctx context.Context) error {
	if a.config.Bootstrap.CSVPath == "" {
		return nil
	}
	return a.loader.LoadFile(ctx, a.config.Bootstrap.CSVPath)
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting assignment service on %s", a.config.Server.Address)
	if err := a.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	// ErrServerClosed is the normal result of Shutdown, not a failure.
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down assignment service...")

	if a.brokerClient != nil {
		if err := a.brokerClient.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return a.server.Shutdown(ctx)
}
