package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/analytics"
	"resume-builder/internal/config"
	"resume-builder/internal/editor"
	"resume-builder/internal/export"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/store"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, closeRecords := openRecords(ctx, cfg)
	defer closeRecords()

	kv, closeKV, err := openKV(ctx, cfg)
	if err != nil {
		slog.Error("storage unavailable", "error", err)
		os.Exit(1)
	}
	defer closeKV()

	st := store.New(kv)

	var sink analytics.Sink = analytics.Discard{}
	if cfg.Analytics.URL != "" {
		sink = analytics.NewHTTPSink(cfg.Analytics.URL)
	}
	tracker := analytics.NewTracker(context.WithoutCancel(ctx), sink, cfg.Analytics.Debounce)
	defer tracker.Close()
	st.Subscribe(tracker.Observe)

	pipeline := export.NewPipeline(infra.NewChromedpRenderer(cfg.Export.ChromePath), cfg.Export.Dir)
	session := editor.NewSession(st, pipeline)
	defer session.Close()

	if ok, err := session.Load(ctx); err != nil {
		slog.Error("initial load failed", "error", err)
	} else {
		slog.Info("editor ready", "restored", ok)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Resume Builder",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		ErrorHandler: httpadapter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	httpadapter.Register(app,
		httpadapter.NewHandler(session, pipeline.Jobs()),
		httpadapter.NewAnalyticsHandler(usecase.NewAnalytics(records)),
	)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "time": time.Now()})
	})

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	slog.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	if err := app.Listen(addr); err != nil {
		slog.Error("server failed", "error", err)
	}
}

var newAnalyticsPool = infra.NewAnalyticsPool

// openRecords returns the analytics log: postgres when a database url is
// configured and reachable, memory otherwise.
func openRecords(ctx context.Context, cfg *config.Config) (usecase.RecordsRepo, func()) {
	if cfg.Analytics.DatabaseURL == "" {
		slog.Info("no analytics database configured, keeping records in memory")
		return repo.NewMemoryRecords(), func() {}
	}
	pool, err := newAnalyticsPool(ctx, cfg.Analytics.DatabaseURL)
	if err != nil {
		slog.Warn("analytics DB not available, keeping records in memory", "error", err)
		return repo.NewMemoryRecords(), func() {}
	}
	if err := migration.RunMigrations(ctx, pool); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	return repo.NewRecordsRepo(pool), pool.Close
}

// openKV picks redis when an address is configured and files otherwise.
func openKV(ctx context.Context, cfg *config.Config) (store.KV, func(), error) {
	if cfg.Redis.Addr != "" {
		r := infra.NewRedisKV(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Namespace)
		if err := r.Ping(ctx); err != nil {
			r.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
		}
		return r, func() { _ = r.Close() }, nil
	}
	f, err := infra.NewFileKV(cfg.Storage.Dir)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {}, nil
}
