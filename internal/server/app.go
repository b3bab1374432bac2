// Package server initializes and runs the portal backend: it opens the
// database, applies migrations, selects the record store backend, and starts
// the HTTP API with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/healophile/internal/logging"
	"github.com/dmitrijs2005/healophile/internal/server/config"
	"github.com/dmitrijs2005/healophile/internal/server/httpapi"
	"github.com/dmitrijs2005/healophile/internal/server/records"
	recordstore "github.com/dmitrijs2005/healophile/internal/server/repositories/records"
	"github.com/dmitrijs2005/healophile/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/healophile/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	userService   *services.UserService
	recordService *services.RecordService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager()
	if err != nil {
		return nil, fmt.Errorf("repository init error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	slot, err := newRecordSlot(cfg, db, rm)
	if err != nil {
		return nil, err
	}
	store := recordstore.NewStore(slot, records.Seed)

	us := services.NewUserService(db, rm, cfg)
	rs := services.NewRecordService(store, db, rm, services.NewS3Presigner(cfg))

	return &App{config: cfg, logger: logger, db: db, userService: us, recordService: rs}, nil
}

// newRecordSlot picks the storage backend the record document lives in.
func newRecordSlot(cfg *config.Config, db *sql.DB, rm repomanager.RepositoryManager) (recordstore.Slot, error) {
	switch cfg.RecordsBackend {
	case config.RecordsBackendFile:
		return recordstore.NewFileSlot(cfg.RecordsFilePath), nil
	case config.RecordsBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return recordstore.NewRedisSlot(client, cfg.RecordsSlotName), nil
	case config.RecordsBackendPostgres:
		return rm.RecordSlot(db, cfg.RecordsSlotName), nil
	default:
		return nil, fmt.Errorf("unknown records backend: %q", cfg.RecordsBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.recordService, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...", "backend", app.config.RecordsBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
