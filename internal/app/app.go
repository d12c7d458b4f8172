// Package app wires configuration, clients, and services into a session
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/halcyonfin/voxfolio/internal/clients/alphavantage"
	"github.com/halcyonfin/voxfolio/internal/clients/hackernews"
	"github.com/halcyonfin/voxfolio/internal/clients/trading212"
	"github.com/halcyonfin/voxfolio/internal/common"
	"github.com/halcyonfin/voxfolio/internal/interfaces"
	"github.com/halcyonfin/voxfolio/internal/services/history"
	"github.com/halcyonfin/voxfolio/internal/services/instruments"
	"github.com/halcyonfin/voxfolio/internal/services/news"
	"github.com/halcyonfin/voxfolio/internal/services/notes"
	"github.com/halcyonfin/voxfolio/internal/services/portfolio"
)

// App holds all initialized clients and services for one assistant session.
// State that tools share (the note store, the instrument cache) lives here
// rather than in package globals, so concurrent sessions never share it.
type App struct {
	Config            *common.Config
	Logger            *common.Logger
	SessionID         string
	Brokerage         interfaces.BrokerageClient
	PortfolioService  interfaces.PortfolioService
	HistoryService    interfaces.HistoryService
	InstrumentService interfaces.InstrumentService
	NewsService       interfaces.NewsService
	Notes             interfaces.NoteService
	StartupTime       time.Time
}

// getBinaryDir returns the directory containing the executable
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, clients, and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Local overrides first, so config env resolution sees them
	_ = godotenv.Load(".env.local")

	// Resolve config: provided path, VOX_CONFIG, binary dir, then dev fallback
	if configPath == "" {
		configPath = os.Getenv("VOX_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "voxfolio.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/voxfolio.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Brokerage credentials are required before anything touches the network
	if err := config.ValidateBrokerage(); err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()[:8]
	logger := common.NewLoggerFromConfig(config.Logging).WithSession(sessionID)

	if config.Clients.AlphaVantage.APIKey == "" {
		logger.Warn().Msg("Alpha Vantage API key not configured - quotes and news will be unavailable")
	}

	brokerClient := trading212.NewClient(
		config.Clients.Trading212.APIKey,
		config.Clients.Trading212.APISecret,
		trading212.WithBaseURL(config.Clients.Trading212.BaseURL),
		trading212.WithLogger(logger),
		trading212.WithRateLimit(config.Clients.Trading212.RateLimit),
		trading212.WithTimeout(config.Clients.Trading212.GetTimeout()),
	)

	avClient := alphavantage.NewClient(
		config.Clients.AlphaVantage.APIKey,
		alphavantage.WithBaseURL(config.Clients.AlphaVantage.BaseURL),
		alphavantage.WithLogger(logger),
		alphavantage.WithRateLimit(config.Clients.AlphaVantage.RateLimit),
		alphavantage.WithTimeout(config.Clients.AlphaVantage.GetTimeout()),
	)

	hnClient := hackernews.NewClient(
		hackernews.WithBaseURL(config.Clients.HackerNews.BaseURL),
		hackernews.WithLogger(logger),
		hackernews.WithTimeout(config.Clients.HackerNews.GetTimeout()),
	)

	a := &App{
		Config:            config,
		Logger:            logger,
		SessionID:         sessionID,
		Brokerage:         brokerClient,
		PortfolioService:  portfolio.NewService(brokerClient, avClient, logger),
		HistoryService:    history.NewService(brokerClient, logger),
		InstrumentService: instruments.NewDirectory(brokerClient, logger),
		NewsService:       news.NewService(avClient, hnClient, logger),
		Notes:             notes.NewStore(),
		StartupTime:       startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}
