// Package wire provides dependency injection for the planner.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"go.uber.org/zap"

	cliadapter "github.com/example/bg3planner/internal/adapters/cli"
	"github.com/example/bg3planner/internal/adapters/jsonfile"
	"github.com/example/bg3planner/internal/adapters/sqlite"
	"github.com/example/bg3planner/internal/app"
	"github.com/example/bg3planner/internal/config"
	"github.com/example/bg3planner/internal/db"
	"github.com/example/bg3planner/internal/logging"
	"github.com/example/bg3planner/internal/ports/primary"
	"github.com/example/bg3planner/internal/ports/secondary"
)

var (
	cfg              *config.Config
	logger           *zap.Logger
	database         *sql.DB
	characterService primary.CharacterService
	historyService   primary.HistoryService
	initErr          error
	once             sync.Once
)

// Init builds all services from c. Only the first call has any effect; it
// returns the initialization error, if any, on every call.
func Init(c *config.Config) error {
	if cfg == nil {
		cfg = c
	}
	once.Do(initServices)
	return initErr
}

// Config returns the active configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// CharacterService returns the singleton CharacterService instance.
func CharacterService() primary.CharacterService {
	once.Do(initServices)
	return characterService
}

// HistoryService returns the singleton HistoryService instance.
// It is nil when the audit history is disabled in config.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// Logger returns the file logger shared by all components.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once; failures are kept in initErr.
func initServices() {
	initErr = buildServices()
}

func buildServices() error {
	if cfg == nil {
		loaded, err := config.Load("")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	color.NoColor = color.NoColor || cfg.NoColor

	var err error
	logger, err = logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		logger = nil
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("initializing services", zap.String("data_dir", cfg.DataDir))

	// Create repository adapters (secondary ports) rooted at the data directory
	characterRepo := jsonfile.NewCharacterRepository(cfg.DataDir, logger)
	presetCatalog := jsonfile.NewPresetCatalog(cfg.DataDir, logger)
	optionCatalog := jsonfile.NewOptionCatalog(cfg.DataDir, logger)

	var logWriter secondary.LogWriter
	if cfg.HistoryEnabled() {
		database, err = db.Open(cfg.HistoryPath())
		if err != nil {
			database = nil
			logger.Error("history database unavailable", zap.Error(err))
			return fmt.Errorf("failed to initialize history database: %w", err)
		}
		logRepo := sqlite.NewCharacterLogRepository(database)
		logWriter = sqlite.NewLogWriterAdapter(logRepo)
		historyService = app.NewHistoryService(logRepo)
	}

	// Create services (primary ports implementation)
	characterService = app.NewCharacterService(characterRepo, presetCatalog, optionCatalog, logWriter, logger)
	return nil
}

// Close flushes the logger and closes the history database, if open.
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
	if database != nil {
		_ = database.Close()
	}
}

// CharacterAdapter returns a new CharacterAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CharacterAdapter() *cliadapter.CharacterAdapter {
	return CharacterAdapterWithOutput(os.Stdout)
}

// CharacterAdapterWithOutput returns a new CharacterAdapter writing to the given output.
func CharacterAdapterWithOutput(out io.Writer) *cliadapter.CharacterAdapter {
	once.Do(initServices)
	return cliadapter.NewCharacterAdapter(characterService, out)
}

// HistoryAdapter returns a new HistoryAdapter writing to stdout, or nil when
// history is disabled.
func HistoryAdapter() *cliadapter.HistoryAdapter {
	return HistoryAdapterWithOutput(os.Stdout)
}

// HistoryAdapterWithOutput returns a new HistoryAdapter writing to the given output.
func HistoryAdapterWithOutput(out io.Writer) *cliadapter.HistoryAdapter {
	once.Do(initServices)
	if historyService == nil {
		return nil
	}
	return cliadapter.NewHistoryAdapter(historyService, out)
}
