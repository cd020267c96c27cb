package admin

import (
	"time"

	"github.com/google/uuid"

	"github.com/edgerelay/edgerelay-go/internal/certinfo"
	"github.com/edgerelay/edgerelay-go/internal/healthcheck"
	"github.com/edgerelay/edgerelay-go/internal/infra/buildinfo"
	"github.com/edgerelay/edgerelay-go/internal/profiling"
	"github.com/edgerelay/edgerelay-go/internal/runtimekv"
	"github.com/edgerelay/edgerelay-go/internal/stats"
	"github.com/edgerelay/edgerelay-go/internal/telemetry/logger"
	"github.com/edgerelay/edgerelay-go/internal/upstream"
)

// ListenerInfo is the admin view of one data-path listener.
type ListenerInfo struct {
	Name string `json:"name"`
	Addr string `json:"addr"`
}

// Options are the collaborators the admin endpoint reads and controls.
// Nil fields get inert defaults so a partially-wired Admin stays safe
// to dispatch against.
type Options struct {
	Logger    logger.Logger
	Stats     *stats.Store
	Clusters  upstream.Manager
	Runtime   *runtimekv.Store
	Health    *healthcheck.Override
	Profiler  *profiling.Profiler
	Certs     *certinfo.Store
	Listeners func() []ListenerInfo
	Quit      func()
}

// Admin is the administrative endpoint: the handler registry, the
// dispatcher, and the built-in handlers over the process state.
type Admin struct {
	registry   *registry
	log        logger.Logger
	stats      *stats.Store
	clusters   upstream.Manager
	runtime    *runtimekv.Store
	health     *healthcheck.Override
	profiler   *profiling.Profiler
	certs      *certinfo.Store
	configDump *ConfigTracker
	listeners  func() []ListenerInfo
	quit       func()

	startTime time.Time
	runID     string
	build     buildinfo.Info
}

// New creates the admin endpoint and registers the built-in handlers.
func New(opts Options) *Admin {
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}
	if opts.Stats == nil {
		opts.Stats = stats.NewStore()
	}
	if opts.Clusters == nil {
		opts.Clusters = upstream.NewMemoryManager()
	}
	if opts.Runtime == nil {
		opts.Runtime = runtimekv.NewStore()
	}
	if opts.Health == nil {
		opts.Health = &healthcheck.Override{}
	}
	if opts.Certs == nil {
		opts.Certs = certinfo.NewStore()
	}
	if opts.Listeners == nil {
		opts.Listeners = func() []ListenerInfo { return nil }
	}
	if opts.Quit == nil {
		opts.Quit = func() {}
	}

	a := &Admin{
		registry:   newRegistry(),
		log:        opts.Logger,
		stats:      opts.Stats,
		clusters:   opts.Clusters,
		runtime:    opts.Runtime,
		health:     opts.Health,
		profiler:   opts.Profiler,
		certs:      opts.Certs,
		configDump: NewConfigTracker(),
		listeners:  opts.Listeners,
		quit:       opts.Quit,
		startTime:  time.Now(),
		runID:      uuid.NewString(),
		build:      buildinfo.Get(),
	}

	a.registerBuiltins()
	return a
}

// ConfigTracker returns the tracker behind /config_dump. Collaborators
// register providers on it to extend the dump.
func (a *Admin) ConfigTracker() *ConfigTracker { return a.configDump }

func (a *Admin) registerBuiltins() {
	builtins := []HandlerEntry{
		{Prefix: "/", HelpText: "Admin home page", Handler: a.handleHome},
		{Prefix: "/help", HelpText: "Print a list of admin endpoints", Handler: a.handleHelp},
		{Prefix: "/server_info", HelpText: "Print server version and status information", Handler: a.handleServerInfo},
		{Prefix: "/listeners", HelpText: "Print the data-path listeners", Handler: a.handleListeners},
		{Prefix: "/clusters", HelpText: "Print upstream cluster status", Handler: a.handleClusters},
		{Prefix: "/stats", HelpText: "Print server stats (counters and gauges)", Handler: a.handleStats},
		{Prefix: "/stats/prometheus", HelpText: "Print server stats in Prometheus format", Handler: a.handleStatsPrometheus},
		{Prefix: "/config_dump", HelpText: "Dump the effective configuration", Handler: a.handleConfigDump},
		{Prefix: "/certs", HelpText: "Print loaded certificate details", Handler: a.handleCerts},
		{Prefix: "/runtime", HelpText: "Print runtime key/value overrides", Handler: a.handleRuntime},
		{Prefix: "/logging", HelpText: "Query/change logging levels", Handler: a.handleLogging, MutatesState: true},
		{Prefix: "/healthcheck/fail", HelpText: "Force the server to fail health checks", Handler: a.handleHealthcheckFail, MutatesState: true},
		{Prefix: "/healthcheck/ok", HelpText: "Resume normal health check behavior", Handler: a.handleHealthcheckOK, MutatesState: true},
		{Prefix: "/reset_counters", HelpText: "Reset all counters to zero", Handler: a.handleResetCounters, MutatesState: true},
		{Prefix: "/cpuprofiler", HelpText: "Enable/disable the CPU profiler", Handler: a.handleCPUProfiler, MutatesState: true},
		{Prefix: "/quitquitquit", HelpText: "Begin graceful shutdown", Handler: a.handleQuit, MutatesState: true},
		{Prefix: "/hot_restart_version", HelpText: "Print the hot restart compatibility version", Handler: a.handleHotRestartVersion},
	}

	for _, e := range builtins {
		a.registry.add(e)
	}
}
