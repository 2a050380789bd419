// Package app initializes and runs the profiles application: it loads
// configuration, opens the database, runs schema migrations, and hands
// control to the management console.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/profiles/internal/cli"
	"github.com/dmitrijs2005/profiles/internal/config"
	"github.com/dmitrijs2005/profiles/internal/logging"
	"github.com/dmitrijs2005/profiles/internal/repositories/repomanager"
	"github.com/dmitrijs2005/profiles/internal/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	manager  repomanager.RepositoryManager
	accounts *services.AccountService
}

func NewApp(cfg *config.Config) (*App, error) {

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(log)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	accounts := services.NewAccountService(db, manager, cfg)

	return &App{config: cfg, logger: logger, db: db, manager: manager, accounts: accounts}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run applies pending migrations and dispatches the console command.
func (app *App) Run(ctx context.Context, args []string) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)
	defer app.db.Close()

	if err := app.manager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	console := cli.NewApp(app.accounts, app.logger)
	return console.Run(ctx, args)
}
