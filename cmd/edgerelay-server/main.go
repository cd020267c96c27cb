// Package main provides the entry point for edgerelay-server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/edgerelay/edgerelay-go/internal/admin"
	"github.com/edgerelay/edgerelay-go/internal/certinfo"
	"github.com/edgerelay/edgerelay-go/internal/healthcheck"
	"github.com/edgerelay/edgerelay-go/internal/infra/buildinfo"
	"github.com/edgerelay/edgerelay-go/internal/infra/confloader"
	"github.com/edgerelay/edgerelay-go/internal/infra/shutdown"
	"github.com/edgerelay/edgerelay-go/internal/profiling"
	"github.com/edgerelay/edgerelay-go/internal/runtimekv"
	"github.com/edgerelay/edgerelay-go/internal/server/config"
	"github.com/edgerelay/edgerelay-go/internal/server/httpserver"
	"github.com/edgerelay/edgerelay-go/internal/server/localserver"
	"github.com/edgerelay/edgerelay-go/internal/stats"
	"github.com/edgerelay/edgerelay-go/internal/telemetry/logger"
	"github.com/edgerelay/edgerelay-go/internal/upstream"
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
		fmt.Printf("edgerelay-server %s\n", buildinfo.String())
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

	log.Info("starting edgerelay-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	// Process state the admin surface reads and controls.
	store := stats.NewStore()
	clusters := upstream.NewMemoryManager()
	runtime := runtimekv.NewStore()
	health := &healthcheck.Override{}
	profiler := profiling.New(cfg.Admin.ProfilePath)
	certs := certinfo.NewStore()

	seedState(cfg, clusters, runtime, certs, log)

	shutdownHandler := shutdown.NewHandler(30 * time.Second)

	adm := admin.New(admin.Options{
		Logger:   logger.Component("admin", loggerConfig(cfg)),
		Stats:    store,
		Clusters: clusters,
		Runtime:  runtime,
		Health:   health,
		Profiler: profiler,
		Certs:    certs,
		Listeners: func() []admin.ListenerInfo {
			out := make([]admin.ListenerInfo, 0, len(cfg.Server.Listeners))
			for _, l := range cfg.Server.Listeners {
				out = append(out, admin.ListenerInfo{Name: l.Name, Addr: l.Addr})
			}
			return out
		},
		Quit: shutdownHandler.Trigger,
	})

	registerConfigDump(adm, cfg)

	handler := admin.NewPolicy(admin.PolicyConfig{
		RateLimit: cfg.Admin.RateLimit,
		RateBurst: cfg.Admin.RateBurst,
		Stats:     store,
	}, adm)

	adminServer := httpserver.New(cfg.Admin, handler)
	localServer := localserver.New(cfg.Server.Local.Path, adm)

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down local socket server")
		return localServer.Shutdown(ctx)
	})
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down admin server")
		return adminServer.Shutdown(ctx)
	})
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		profiler.Stop()
		return nil
	})

	if *configFile != "" {
		watchConfig(*configFile, runtime, shutdownHandler, log)
	}

	go func() {
		log.Info("admin server listening", "addr", cfg.Admin.Addr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("admin server error", "error", err)
		}
	}()

	go func() {
		log.Info("local socket listening", "path", cfg.Server.Local.Path)
		if err := localServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("local socket error", "error", err)
		}
	}()

	store.Gauge("server.live").Set(1)

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

func loggerConfig(cfg *config.ServerConfig) logger.Config {
	return logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	}
}

// initLogger initializes the structured logger.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(loggerConfig(cfg))
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)
	return log, nil
}

// seedState loads static config into the stores the admin surface
// reads: cluster seeds, runtime overrides, listener certificates.
func seedState(cfg *config.ServerConfig, clusters *upstream.MemoryManager, runtime *runtimekv.Store, certs *certinfo.Store, log logger.Logger) {
	for _, seed := range cfg.Static.Clusters {
		snapshot := upstream.ClusterSnapshot{
			Name: seed.Name,
			CircuitLimits: []upstream.ResourceLimits{{
				Priority:           "default",
				MaxConnections:     seed.MaxConnections,
				MaxPendingRequests: seed.MaxPendingRequests,
				MaxRequests:        seed.MaxRequests,
				MaxRetries:         seed.MaxRetries,
			}},
		}
		for _, h := range seed.Hosts {
			snapshot.Hosts = append(snapshot.Hosts, upstream.HostHealth{
				Address: h,
				Healthy: true,
				Weight:  1,
			})
		}
		clusters.Put(snapshot)
	}

	for k, v := range cfg.Static.Runtime {
		runtime.Set(k, v)
	}

	for _, l := range cfg.Server.Listeners {
		if l.TLSCertFile == "" {
			continue
		}
		if err := certs.AddFile(l.TLSCertFile); err != nil {
			log.Warn("could not load listener certificate",
				"listener", l.Name, "file", l.TLSCertFile, "error", err)
		}
	}
}

// watchConfig reloads dynamic configuration when the config file
// changes: log level and runtime overrides. Listener and admin policy
// changes still require a restart.
func watchConfig(configFile string, runtime *runtimekv.Store, sh *shutdown.Handler, log logger.Logger) {
	watcher, err := confloader.NewWatcher()
	if err != nil {
		log.Warn("config watcher unavailable", "error", err)
		return
	}

	watcher.OnChange(func(path string) {
		newCfg, err := loadConfig(configFile)
		if err != nil {
			log.Error("config reload failed", "file", path, "error", err)
			return
		}

		if lvl, err := logger.ParseLevel(newCfg.Log.Level); err == nil {
			logger.SetAllLevels(lvl)
		}

		// Re-seed runtime overrides. Keys removed from the file keep
		// their last value until restart.
		for k, v := range newCfg.Static.Runtime {
			runtime.Set(k, v)
		}

		log.Info("configuration reloaded", "file", path)
	})

	if err := watcher.Watch(configFile); err != nil {
		log.Warn("could not watch config file", "file", configFile, "error", err)
		return
	}

	watcher.StartAsync()
	sh.OnShutdown(func(ctx context.Context) error {
		return watcher.Stop()
	})
}

// registerConfigDump exposes the effective configuration sections on
// /config_dump.
func registerConfigDump(adm *admin.Admin, cfg *config.ServerConfig) {
	sanitized := config.Sanitize(cfg)

	adm.ConfigTracker().Add("admin", func() (any, error) {
		return map[string]any{
			"addr":             sanitized.Admin.Addr,
			"profile_path":     sanitized.Admin.ProfilePath,
			"rate_limit":       sanitized.Admin.RateLimit,
			"rate_burst":       sanitized.Admin.RateBurst,
			"max_header_bytes": sanitized.Admin.MaxHeaderBytes,
		}, nil
	})
	adm.ConfigTracker().Add("listeners", func() (any, error) {
		return sanitized.Server.Listeners, nil
	})
	adm.ConfigTracker().Add("static", func() (any, error) {
		return sanitized.Static, nil
	})
	adm.ConfigTracker().Add("log", func() (any, error) {
		return sanitized.Log, nil
	})
}
