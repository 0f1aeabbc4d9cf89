package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/clock"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/config"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/handler"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/inventory"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/middleware"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/notification"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/pricing"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/repository"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/router"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/scheduler"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/service"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/service/ports"
	"github.com/Shakesdigital/shakestravelapp-sub001/migrations"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BookingEngine",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initInventory(clk clock.Clock) (ports.InventoryStore, error) {
	switch a.cfg.Inventory.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("pinging redis: %w", err)
		}
		a.redis = client
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
			logger.String("addr", a.cfg.Redis.Addr),
		)
		return inventory.NewRedis(client, clk), nil
	case "memory":
		a.log.Warn("in-memory inventory selected, capacity is lost on restart")
		return inventory.NewMemory(clk), nil
	default:
		return repository.NewInventoryRepo(a.db, clk), nil
	}
}

func (a *App) initPricing() (*pricing.Calculator, error) {
	fee, err := decimal.NewFromString(a.cfg.Pricing.PlatformFeePercent)
	if err != nil {
		return nil, fmt.Errorf("platform fee percent: %w", err)
	}
	tax, err := decimal.NewFromString(a.cfg.Pricing.TaxPercent)
	if err != nil {
		return nil, fmt.Errorf("tax percent: %w", err)
	}
	return pricing.NewCalculator(
		pricing.WithPlatformFeePercent(fee),
		pricing.WithTaxPercent(tax),
	), nil
}

func (a *App) initServices() error {
	clk := clock.NewSystem()

	bookingRepo := repository.NewBookingRepo(a.db)
	listingRepo := repository.NewListingRepo(a.db)

	store, err := a.initInventory(clk)
	if err != nil {
		return fmt.Errorf("init inventory: %w", err)
	}

	calc, err := a.initPricing()
	if err != nil {
		return fmt.Errorf("init pricing: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	listingService := service.NewListingService(listingRepo, store)
	bookingService := service.NewBookingService(bookingRepo, store, listingRepo, n, calc, clk, a.log,
		service.BookingConfig{
			PendingTTL:        a.cfg.Booking.PendingTTL,
			SweepBatch:        a.cfg.Booking.SweepBatch,
			ReferenceAttempts: a.cfg.Booking.ReferenceAttempts,
			ConflictRetry: retry.Strategy{
				Attempts: a.cfg.Booking.ConflictAttempts,
				Delay:    a.cfg.Booking.ConflictDelay,
				Backoff:  2,
			},
		},
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(listingService, bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		return err
	}

	a.log.Info("migrations applied successfully")
	return nil
}
