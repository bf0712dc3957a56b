package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/natefinch/lumberjack.v2"

	"adwatch/internal/adapter/guard"
	httpadapter "adwatch/internal/adapter/http"
	"adwatch/internal/adapter/metrics"
	"adwatch/internal/adapter/postgres"
	"adwatch/internal/adapter/scheduler"
	"adwatch/internal/adapter/scraper"
	"adwatch/internal/adapter/usecase"
	"adwatch/internal/config"
	"adwatch/internal/config/configs"
	"adwatch/internal/core/port"
	"adwatch/internal/db"
)

// main is the entry point of adwatch. It loads configuration, optionally
// runs database migrations and seeding, wires the scraper, reconciler and
// reporting services, then starts the scheduler and the HTTP server. On
// receiving a termination signal it stops the scheduler and gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger, closeLog := newLogger(cfg.Log)
	defer closeLog()
	logger = logger.With(slog.String("env", cfg.Env))

	loc, err := cfg.Scrape.Location()
	if err != nil {
		logger.Error("invalid timezone", slog.Any("error", err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.RunMigrations && len(cfg.Seed.Businesses) > 0 {
		n, err := db.Seed(ctx, pool, cfg.Seed.Businesses)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("businesses seeded", slog.Int64("inserted", n))
	}

	runGuard, closeGuard, err := newGuard(ctx, cfg, logger)
	if err != nil {
		logger.Error("run guard error", slog.Any("error", err))
		return
	}
	defer closeGuard()

	businesses := postgres.NewBusinessRepository(pool)
	creatives := postgres.NewCreativeRepository(pool)

	source, closeBrowser, err := scraper.New(scraper.Config{
		RemoteURL:       cfg.Browser.RemoteURL,
		Headless:        cfg.Browser.Headless,
		NavTimeout:      cfg.Browser.NavTimeout,
		CookieWait:      cfg.Browser.CookieWait,
		Scrolls:         cfg.Browser.Scrolls,
		ScrollPause:     cfg.Browser.ScrollPause,
		Settle:          cfg.Browser.Settle,
		DownloadTimeout: cfg.Browser.DownloadTimeout,
		ImagesDir:       cfg.ImagesDir,
		URLTemplate:     cfg.AdsURLTemplate,
	}, creatives, logger.With(slog.String("component", "scraper")))
	if err != nil {
		logger.Error("browser error", slog.Any("error", err))
		return
	}
	defer closeBrowser()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(reg)

	reconciler := usecase.NewReconciler(creatives, loc, logger.With(slog.String("component", "reconciler")))
	coordinator := usecase.NewCoordinator(runGuard, businesses, source, reconciler, recorder,
		logger.With(slog.String("component", "coordinator")))
	reports := usecase.NewReportService(businesses, creatives, cfg.SimilarityThreshold, loc)
	admin := usecase.NewBusinessService(businesses, logger)

	stopScheduler := scheduler.New(coordinator, cfg.Scrape.Interval, cfg.Scrape.OnStart,
		logger.With(slog.String("component", "scheduler"))).Start(ctx)

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Scrape:     coordinator,
		Reports:    reports,
		Businesses: admin,
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Instrument: recorder.Middleware,
	}, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	stopScheduler()
}

// newLogger builds the slog logger. With LOG_FILE set, records also go to a
// lumberjack rotated file.
func newLogger(cfg configs.Logger) (*slog.Logger, func()) {
	var (
		out     io.Writer = os.Stdout
		closeFn           = func() {}
	)
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, file)
		closeFn = func() { _ = file.Close() }
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), closeFn
}

func newGuard(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.RunGuard, func(), error) {
	switch cfg.Guard.Backend {
	case configs.GuardLocal:
		return guard.NewLocal(), func() {}, nil
	case configs.GuardRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using redis run guard", slog.String("addr", cfg.Redis.Address), slog.String("key", cfg.Redis.LockKey))
		g := guard.NewRedis(client, cfg.Redis.LockKey, cfg.Redis.LockTTL, logger.With(slog.String("component", "guard")))
		return g, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown guard backend %q", cfg.Guard.Backend)
	}
}
