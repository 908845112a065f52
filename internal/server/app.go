// Package server wires the newsroom API together: configuration, the
// PostgreSQL pool and migrations, services, the JSON API and the gRPC health
// endpoint. It also handles graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/newsroom/internal/dbx"
	"github.com/dmitrijs2005/newsroom/internal/logging"
	"github.com/dmitrijs2005/newsroom/internal/server/auth"
	"github.com/dmitrijs2005/newsroom/internal/server/config"
	"github.com/dmitrijs2005/newsroom/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/newsroom/internal/server/rest"
	"github.com/dmitrijs2005/newsroom/internal/server/services"

	gs "github.com/dmitrijs2005/newsroom/internal/server/grpc"
)

const driverName = "pgx"

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	deps   rest.Deps
}

// NewApp opens the database, applies migrations when configured to, and
// builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if c.UsesDefaultSecret() {
		logger.Warn(ctx, "using the built-in development secret key; set NEWSROOM_SECRET_KEY or -s in production")
	}

	db, err := dbx.OpenPool(ctx, driverName, c.DatabaseDSN, dbx.PoolOptions{
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if c.MigrateOnStart {
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		logger.Info(ctx, "migrations applied")
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	hasher := auth.NewBcryptHasher(c.BcryptCost)

	deps := rest.Deps{
		Users:          services.NewUserService(db, rm, tokens, hasher),
		Articles:       services.NewArticleService(db, rm),
		Comments:       services.NewCommentService(db, rm),
		Likes:          services.NewLikeService(db, rm),
		Photos:         services.NewPhotoService(c),
		AI:             services.NewAIService(),
		Auth:           auth.NewAuthenticator(tokens),
		Logger:         logger,
		AllowedOrigins: c.CORSAllowedOrigins,
	}

	return &App{config: c, logger: logger, db: db, deps: deps}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.EndpointAddrHTTP, rest.NewRouter(app.deps), app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server", "error", err)
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewHealthServer(app.config.EndpointAddrGRPC, app.logger, app.db)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server", "error", err)
		cancelFunc()
	}
}

// Run serves until a termination signal arrives or ctx is cancelled, then
// waits for both servers to stop and closes the database pool.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
