package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"settings_hub/internal/config"
	"settings_hub/internal/handlers"
	"settings_hub/internal/logger"
	"settings_hub/internal/repository"
	"settings_hub/internal/server"
	"settings_hub/internal/service"
)

const configDir = "configs" // configs/config.yml

func main() {
	// load config.yml
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger with configured level
	log := logger.Get(cfg.LogLevel)

	// open DB
	db, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, log, cfg.SigningKey)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// register seed devices declared in config
	seedDevices(ctx, cfg, services, log)

	// start diagnostics reporter
	go services.Reporter.Run(ctx, cfg.ReporterTick)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	if cfg.DBPath == config.DefaultDBPath {
		log.Infow("db.path not set in config; using default file", "default", config.DefaultDBPath)
	}
	return repository.InitDB(cfg.DBPath)
}

// seedDevices registers config-declared devices that are not stored yet.
func seedDevices(ctx context.Context, cfg *config.Config, services *service.Service, log *logger.Logger) {
	for _, seed := range cfg.Seeds {
		dev, err := services.Registry.Register(ctx, seed.Name, seed.Settings)
		if err != nil {
			if errors.Is(err, service.ErrDeviceExists) {
				continue // already stored; config does not overwrite
			}
			log.Errorw("seed_register_failed", "device", seed.Name, "err", err)
			continue
		}
		log.Infow("seed_registered", "device", dev.Name, "settings", dev.Settings.String())
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
