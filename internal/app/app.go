package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/brokermart/brokermart/internal/cache"
	"github.com/brokermart/brokermart/internal/config"
	"github.com/brokermart/brokermart/internal/handlers"
	"github.com/brokermart/brokermart/internal/metrics"
	"github.com/brokermart/brokermart/internal/notify"
	"github.com/brokermart/brokermart/internal/pg"
	"github.com/brokermart/brokermart/internal/repo"
	"github.com/brokermart/brokermart/internal/service"
	"github.com/brokermart/brokermart/internal/service/walletservice"
	"github.com/brokermart/brokermart/pkg/auth"
	"github.com/brokermart/brokermart/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	notifier *notify.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	auth.SetSecret(cfg.JWTSecret)
	metrics.Register()

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, a.buildNotifier(cfg), a.buildCache(ctx, cfg))
	a.api = handlers.New(a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildNotifier wires the kafka event pipeline, or a noop when no brokers are
// configured.
func (a *Application) buildNotifier(cfg *config.Config) service.Notifier {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		zap.L().Info("no kafka brokers configured, events disabled")
		return notify.Noop{}
	}
	a.notifier = notify.New(notify.NewKafkaProducer(brokers))
	return a.notifier
}

// buildCache wires the redis wallet cache, falling back to a noop when redis
// is not configured or unreachable.
func (a *Application) buildCache(ctx context.Context, cfg *config.Config) walletservice.Cache {
	if cfg.RedisAddr == "" {
		zap.L().Info("no redis address configured, wallet cache disabled")
		return cache.Noop{}
	}
	client, err := cache.NewClient(ctx, cfg.RedisAddr)
	if err != nil {
		zap.L().Warn("redis unavailable, wallet cache disabled", zap.Error(err))
		return cache.Noop{}
	}
	return client
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		if a.notifier != nil {
			a.notifier.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		// ErrServerClosed is the normal outcome of Shutdown, not a failure.
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
