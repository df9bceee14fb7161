// Package server wires configuration, the database pool, the account
// service and the HTTP surface together and runs them until a shutdown
// signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/jwtauth/internal/logging"
	"github.com/dmitrijs2005/jwtauth/internal/server/config"
	"github.com/dmitrijs2005/jwtauth/internal/server/httpserver"
	"github.com/dmitrijs2005/jwtauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/jwtauth/internal/server/services"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	accountService *services.AccountService
}

// NewApp validates the config, opens the pool and applies migrations.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN, repomanager.PoolOptions{
		MaxOpenConns: c.DBMaxOpenConns,
		MaxIdleConns: c.DBMaxIdleConns,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	as, err := services.NewAccountService(db, rm, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("account service init error: %w", err)
	}

	return &App{config: c, logger: logger, db: db, accountService: as}, nil
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

// Run serves HTTP until a signal arrives or the server fails, then closes
// the pool.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "environment", app.config.Environment, "secure_cookies", !app.config.IsLocal())

	app.initSignalHandler(cancelFunc)

	s := httpserver.NewServer(app.config, app.logger, app.accountService, app.db)
	err := s.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "http server error", "error", err)
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "closing db", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
