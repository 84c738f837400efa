// Package wire provides dependency injection for the minic application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	cliadapter "github.com/example/minic/internal/adapters/cli"
	"github.com/example/minic/internal/adapters/filesystem"
	"github.com/example/minic/internal/adapters/sqlite"
	"github.com/example/minic/internal/app"
	"github.com/example/minic/internal/config"
	"github.com/example/minic/internal/db"
	"github.com/example/minic/internal/logging"
	"github.com/example/minic/internal/ports/primary"
	"github.com/example/minic/internal/ports/secondary"
)

// Options are the process-wide settings collected from global flags.
type Options struct {
	Verbose   bool
	NoHistory bool
	// Dir is where .minic/config.json is looked up. Empty means cwd.
	Dir string
}

var (
	options Options

	logger         *logrus.Logger
	cfg            *config.Config
	numberService  primary.NumberService
	compileService primary.CompileService
	once           sync.Once

	runRepo    *sqlite.RunRepository
	runRepoErr error
	dbOnce     sync.Once

	historyService primary.HistoryService
	historyOnce    sync.Once
)

// Configure sets the options used when services are first created.
// Call it before any service accessor, typically from PersistentPreRun.
func Configure(opts Options) {
	options = opts
}

// Logger returns the configured logger.
func Logger() *logrus.Logger {
	once.Do(initServices)
	return logger
}

// Config returns the loaded project configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// NumberService returns the singleton NumberService instance.
func NumberService() primary.NumberService {
	once.Do(initServices)
	return numberService
}

// CompileService returns the singleton CompileService instance.
func CompileService() primary.CompileService {
	once.Do(initServices)
	return compileService
}

// HistoryService returns the singleton HistoryService instance.
// Unlike recording, reading history requires the database.
func HistoryService() primary.HistoryService {
	historyOnce.Do(func() {
		once.Do(initServices)
		repo, err := openRunRepository()
		if err != nil {
			logger.WithError(err).Fatal("failed to initialize database")
		}
		historyService = app.NewHistoryService(repo)
	})
	return historyService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	logger = logging.Setup(options.Verbose)

	dir := options.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			logger.WithError(err).Fatal("failed to get working directory")
		}
		dir = wd
	}

	loaded, err := config.LoadOrDefault(dir)
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}
	cfg = loaded

	workspace, err := filesystem.NewWorkspaceAdapter(dir)
	if err != nil {
		logger.WithError(err).Fatal("failed to create workspace adapter")
	}

	// Recording is best effort: without a database the commands still run.
	var recorder secondary.RunRepository
	if cfg.RecordHistory && !options.NoHistory {
		repo, err := openRunRepository()
		if err != nil {
			logger.WithError(err).Warn("history unavailable; runs will not be recorded")
		} else {
			recorder = repo
		}
	}

	numberService = app.NewNumberService(recorder, logger)
	compileService = app.NewCompileService(workspace, workspace, recorder, logger, app.CompileSettings{
		IROutput: cfg.IROutput,
		MaxSteps: cfg.MaxSteps,
	})
}

// openRunRepository opens the history database once.
func openRunRepository() (*sqlite.RunRepository, error) {
	dbOnce.Do(func() {
		database, err := db.GetDB()
		if err != nil {
			runRepoErr = err
			return
		}
		runRepo = sqlite.NewRunRepository(database)
	})
	return runRepo, runRepoErr
}

// NumberAdapter returns a new NumberAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func NumberAdapter() *cliadapter.NumberAdapter {
	return NumberAdapterWithOutput(os.Stdout)
}

// NumberAdapterWithOutput returns a new NumberAdapter writing to the given output.
func NumberAdapterWithOutput(out io.Writer) *cliadapter.NumberAdapter {
	return cliadapter.NewNumberAdapter(NumberService(), out)
}

// CompileAdapter returns a new CompileAdapter writing to stdout.
func CompileAdapter() *cliadapter.CompileAdapter {
	return CompileAdapterWithOutput(os.Stdout)
}

// CompileAdapterWithOutput returns a new CompileAdapter writing to the given output.
func CompileAdapterWithOutput(out io.Writer) *cliadapter.CompileAdapter {
	return cliadapter.NewCompileAdapter(CompileService(), out)
}

// HistoryAdapter returns a new HistoryAdapter writing to stdout.
func HistoryAdapter() *cliadapter.HistoryAdapter {
	return HistoryAdapterWithOutput(os.Stdout)
}

// HistoryAdapterWithOutput returns a new HistoryAdapter writing to the given output.
func HistoryAdapterWithOutput(out io.Writer) *cliadapter.HistoryAdapter {
	return cliadapter.NewHistoryAdapter(HistoryService(), out)
}
