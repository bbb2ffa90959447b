package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/m4tyn0/HAL9001/internal/cli"
	"github.com/m4tyn0/HAL9001/internal/config"
	"github.com/m4tyn0/HAL9001/internal/db"
	"github.com/m4tyn0/HAL9001/internal/repository"
	"github.com/m4tyn0/HAL9001/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	playerRepo := repository.NewSQLitePlayerRepo(database)
	xpLogRepo := repository.NewSQLiteXPLogRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Schedules: service.NewScheduleService(cfg.UserID, cfg.TemplatePath, scheduleRepo, uow, logger),
		Projects:  service.NewProjectService(projectRepo),
		Tasks:     service.NewTaskService(taskRepo, uow),
		Goals:     service.NewGoalService(goalRepo),
		Player:    service.NewPlayerService(playerRepo, xpLogRepo),
		Routines:  service.NewRoutineService(cfg.RoutinesDir()),

		ConfigPath:   configPath(),
		TemplatePath: cfg.TemplatePath,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// configPath is ~/.hal9001/config.yaml, or ./config.yaml when no home
// directory is available.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".hal9001", "config.yaml")
}

func newLogger(cfg config.LoggingConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var out = os.Stderr
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if cfg.Pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out})
	}
	return logger, nil
}
