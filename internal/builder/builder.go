package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/api"
	interviewapi "github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/api/interview"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/config"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/integration/asr"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/integration/llm"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/integration/tts"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/interview"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/pkg/validator"
	"github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/repository"
	interviewuc "github.com/sanju-subash/Innovating-Hiring-MajorProject-sub001/internal/usecase/interview"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	candidateRepo := repository.NewCandidatePostgres(db)
	postRepo := repository.NewPostPostgres(db)
	questionRepo := repository.NewQuestionPostgres(db)
	conversationRepo := repository.NewConversationPostgres(db)
	rankingRepo := repository.NewRankingPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var generator interview.Generator
	var synthesizer interview.Synthesizer
	var recorder interviewuc.Recorder

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		generator = llm.NewMockConnector(logger)
		synthesizer = tts.NewMockConnector(logger)
		recorder = asr.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		generator = llm.NewConnector(cfg.LLMConnectorCfg, logger)
		synthesizer = tts.NewConnector(cfg.TTSConnectorCfg, logger)
		recorder = asr.NewConnector(cfg.ASRConnectorCfg, logger)
	}

	// Initialize validators
	requestValidator := validator.NewValidator(cfg.MaxAudioFileSize)
	logger.Info("Validators initialized")

	// Initialize use cases
	interviewUC := interviewuc.NewUsecase(
		candidateRepo,
		postRepo,
		questionRepo,
		conversationRepo,
		rankingRepo,
		generator,
		synthesizer,
		recorder,
		cfg.CompanyName,
		cfg.SessionTTLSlack,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	interviewHandler := interviewapi.NewHandler(interviewUC, requestValidator)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(interviewHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
