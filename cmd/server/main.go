package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httpadapter "akwana/internal/adapters/http"
	"akwana/internal/adapters/memory"
	pg "akwana/internal/adapters/postgres"
	"akwana/internal/adapters/remote"
	"akwana/internal/adapters/simulated"
	"akwana/internal/adapters/textintent"
	"akwana/internal/catalog"
	"akwana/internal/config"
	"akwana/internal/logging"
	"akwana/internal/metrics"
	"akwana/internal/ports"
	"akwana/internal/services/advisor"
	"akwana/internal/services/advisory"
	"akwana/internal/services/classifier"
	"akwana/internal/services/recommend"
	"akwana/internal/services/scanner"
	"akwana/internal/services/weather"
	"akwana/internal/workers/archiver"
	"akwana/internal/workers/scanrunner"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, cfgErr := config.Load()
	logger, level, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if cfgErr != nil {
		logger.Warn("config", zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("rule catalog: %w", err)
	}
	logger.Info("rule catalog loaded", zap.String("version", cat.Version()))

	var images ports.ImageClassifier
	if cfg.ClassifierURL != "" {
		images = remote.New(cfg.ClassifierURL, logger)
		logger.Info("using remote image classifier", zap.String("url", cfg.ClassifierURL))
	} else {
		images = simulated.New(cfg.SimulatedDelay)
		logger.Info("using simulated image classifier", zap.Duration("delay", cfg.SimulatedDelay))
	}
	cls := classifier.New(cat, images,
		classifier.WithTextIntent(textintent.New(nil)),
		classifier.WithFallbackConfidence(cfg.FallbackConfidence))

	var repo ports.ArtifactRepository
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx, logger); err != nil {
			return err
		}
		repo = db
	} else {
		logger.Warn("DATABASE_URL not set, artifacts kept in memory", zap.Int("capacity", cfg.MemoryArtifacts))
		repo = memory.NewArtifacts(cfg.MemoryArtifacts)
	}

	m := metrics.New()
	arch := archiver.New(repo, archiver.DefaultBuffer, logger)
	sink := advisory.NewSink(cfg.HistoryRetention, logger)
	sink.Subscribe("metrics", m.Publish)
	sink.Subscribe("archive", arch.Publish)

	runner := scanrunner.New(cls, scanrunner.Options{
		Workers:   cfg.ScanWorkers,
		QueueSize: cfg.ScanQueueSize,
		Timeout:   cfg.ClassifyTimeout,
	}, logger)
	sessions := scanner.New(runner, recommend.New(), sink, cfg.MaxSessions, logger)
	sessions.Observe(m.ObserveTransition)

	srv := httpadapter.New(httpadapter.Deps{
		Sessions:   sessions,
		Advisories: sink,
		Artifacts:  repo,
		Catalog:    cat,
		Advisor:    advisor.New(sessions, logger),
		Weather:    weather.New(cat, simulated.NewForecast(nil), logger),
		Metrics:    m.Handler(),
		LogLevel:   level,
		Logger:     logger,
	})
	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	runner.Start(gctx)
	logger.Info("scan workers started", zap.Int("workers", cfg.ScanWorkers))
	g.Go(func() error {
		runner.Wait()
		return nil
	})
	g.Go(func() error { return arch.Run(gctx) })
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.RulesPath != "" {
		return catalog.LoadFile(cfg.RulesPath)
	}
	return catalog.Builtin()
}
