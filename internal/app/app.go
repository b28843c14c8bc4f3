// Package app wires configuration, storage, API clients and services into a
// single application container shared by the server binary and tests.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/clients/gemini"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/clients/mfapi"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/clients/yahoo"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/interfaces"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/services/analyzer"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/services/portfolio"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/services/report"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/storage/userdb"
)

// App holds all initialized clients, storage and services.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	UserStore        interfaces.UserStore
	FundClient       interfaces.FundDataClient
	StockClient      interfaces.StockDataClient
	AIClient         interfaces.AIClient
	AnalyzerService  interfaces.AnalyzerService
	PortfolioService interfaces.PortfolioService
	ReportService    interfaces.ReportService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, clients and services.
// configPath may be empty, in which case FINTRACK_CONFIG and the binary
// directory are checked before falling back to config/fintrack.toml.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("FINTRACK_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "fintrack.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/fintrack.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLogger(config.Logging.Level)

	userStore, err := userdb.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user store: %w", err)
	}

	fundClient := mfapi.NewClient(
		mfapi.WithBaseURL(config.Clients.MFAPI.BaseURL),
		mfapi.WithLogger(logger),
		mfapi.WithRateLimit(config.Clients.MFAPI.RateLimit),
		mfapi.WithTimeout(config.Clients.MFAPI.GetTimeout()),
	)

	stockClient := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithLogger(logger),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
	)

	// Gemini is optional; reports degrade to plain output without it.
	var aiClient interfaces.AIClient
	if config.Clients.Gemini.APIKey != "" {
		client, err := gemini.NewClient(context.Background(), config.Clients.Gemini.APIKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithLogger(logger),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client - report summaries disabled")
		} else {
			aiClient = client
		}
	} else {
		logger.Info().Msg("Gemini API key not configured - report summaries disabled")
	}

	analyzerService := analyzer.NewService(logger, fundClient, stockClient)
	portfolioService := portfolio.NewService(logger, analyzerService, userStore)
	reportService := report.NewService(logger, userStore, portfolioService, fundClient, stockClient, aiClient)

	logger.Info().
		Str("environment", config.Environment).
		Str("storage_path", config.Storage.Path).
		Msg("Application initialized")

	return &App{
		Config:           config,
		Logger:           logger,
		UserStore:        userStore,
		FundClient:       fundClient,
		StockClient:      stockClient,
		AIClient:         aiClient,
		AnalyzerService:  analyzerService,
		PortfolioService: portfolioService,
		ReportService:    reportService,
		StartupTime:      time.Now(),
	}, nil
}

// Close releases application resources.
func (a *App) Close() error {
	if a.UserStore != nil {
		if err := a.UserStore.Close(); err != nil {
			return fmt.Errorf("failed to close user store: %w", err)
		}
	}
	return nil
}
