package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetcare-portal/internal/config"
	"vetcare-portal/internal/platform/logger"
	"vetcare-portal/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title VetCare Portal API
// @version 1.0
// @description API del portal de la clínica: mascotas, turnos, catálogo y carrito.
// @host localhost:8080
// @BasePath /
func main() {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "configs/config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		// todavía no hay logger configurado
		logger.NewFromEnv().Error("config load failed", map[string]any{"err": err, "path": path})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.App.Name,
		File:   cfg.Logging.File,
	})
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := wire(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	r := router.NewRouter(router.Options{
		AuthVerifier: deps.verifier,
		DB:           deps.db,
		Gorm:         deps.gorm,
		Logger:       log,
		Uploader:     deps.uploader,
		CartStore:    deps.cartStore,
		Schedule:     deps.schedule,
		Catalog:      deps.catalog,
		UploadsDir:   deps.uploadsDir,
		UploadsPath:  cfg.Storage.PublicBaseURL,
		Metrics:      cfg.Metrics.Enabled,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTP.ReadTimeout(),
		WriteTimeout:      cfg.HTTP.WriteTimeout(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{
			"addr":        cfg.HTTP.Addr,
			"auth_mode":   cfg.Auth.Mode,
			"cart":        cfg.Cart.Backend,
			"storage":     cfg.Storage.Mode,
			"postgres":    deps.db != nil,
			"environment": cfg.App.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
