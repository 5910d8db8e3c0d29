// Package main provides the entry point for lockmap-server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yndnr/lockmap-go/internal/core/service"
	"github.com/yndnr/lockmap-go/internal/infra/buildinfo"
	"github.com/yndnr/lockmap-go/internal/infra/confloader"
	"github.com/yndnr/lockmap-go/internal/infra/shutdown"
	"github.com/yndnr/lockmap-go/internal/server/config"
	"github.com/yndnr/lockmap-go/internal/server/httpserver"
	"github.com/yndnr/lockmap-go/internal/server/respserver"
	"github.com/yndnr/lockmap-go/internal/telemetry/logger"
	"github.com/yndnr/lockmap-go/internal/telemetry/metric"
	"github.com/yndnr/lockmap-go/pkg/tsmap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("lockmap-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting lockmap-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	m, err := tsmap.New(cfg.Map.Capacity)
	if err != nil {
		return fmt.Errorf("create map: %w", err)
	}
	log.Info("map initialized", "capacity", cfg.Map.Capacity)

	metrics := metric.NewRegistry()
	mapSvc := service.NewMapService(m, log.Slog(), metrics)

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		MapService: mapSvc,
		Metrics:    metrics,
		Logger:     log,
		RateLimit:  cfg.Server.HTTP.RateLimit,
	})

	httpCfg := httpserver.DefaultConfig()
	httpCfg.Addr = cfg.Server.HTTP.Addr
	httpSrv := httpserver.New(httpCfg, router, log.Slog())

	shutdownHandler := shutdown.NewHandler(cfg.Server.ShutdownTimeout)

	ctx := context.Background()
	if err := httpSrv.Start(ctx); err != nil {
		return fmt.Errorf("start http server: %w", err)
	}
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down http server")
		return httpSrv.Shutdown(ctx)
	})

	if cfg.Server.RESP.Enabled {
		respSrv := respserver.New(&respserver.Config{
			Addr:         cfg.Server.RESP.Addr,
			ReadTimeout:  cfg.Server.RESP.ReadTimeout,
			WriteTimeout: cfg.Server.RESP.WriteTimeout,
			IdleTimeout:  cfg.Server.RESP.IdleTimeout,
			RateLimit:    cfg.Server.RESP.RateLimit,
		}, mapSvc, metrics, log.Slog())

		if err := respSrv.Start(ctx); err != nil {
			return fmt.Errorf("start resp server: %w", err)
		}
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down resp server")
			return respSrv.Shutdown(ctx)
		})
	}

	if *configFile != "" {
		watcher, err := startConfigWatcher(*configFile, log)
		if err != nil {
			// Reload is a convenience, not a startup requirement.
			log.Warn("config watcher disabled", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger and installs it as the
// process default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// startConfigWatcher re-applies the log level when the config file
// changes. Other settings require a restart.
func startConfigWatcher(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log.Slog()))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(string) {
		cfg, err := loadConfig(configFile)
		if err != nil {
			log.Warn("config reload failed", "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
	})

	watcher.StartAsync()
	return watcher, nil
}
