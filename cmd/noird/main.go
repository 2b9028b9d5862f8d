package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	appconfig "github.com/vulpemventures/noir/internal/app-config"
	"github.com/vulpemventures/noir/internal/config"
	"github.com/vulpemventures/noir/internal/interfaces"
	grpc_interface "github.com/vulpemventures/noir/internal/interfaces/grpc"
	"github.com/vulpemventures/noir/pkg/profiler"
)

var (
	// Build info.
	version string
	commit  string
	date    string

	// Config from env vars.
	logLevel        = config.GetInt(config.LogLevelKey)
	datadir         = config.GetDatadir()
	port            = config.GetInt(config.PortKey)
	profilerPort    = config.GetInt(config.ProfilerPortKey)
	noTLS           = config.GetBool(config.NoTLSKey)
	noProfiler      = config.GetBool(config.NoProfilerKey)
	tlsDir          = filepath.Join(datadir, config.TLSLocation)
	profilerDir     = filepath.Join(datadir, config.ProfilerLocation)
	tlsExtraIPs     = config.GetStringSlice(config.TLSExtraIPKey)
	tlsExtraDomains = config.GetStringSlice(config.TLSExtraDomainKey)
	statsInterval   = config.GetStatsInterval()
	entropySize     = config.GetEntropySize()
	addressFormat   = config.GetAddressFormat()
	maxConcurrency  = config.GetInt(config.MaxConcurrencyKey)
	requestTimeout  = config.GetRequestTimeout()
)

func main() {
	log.SetLevel(log.Level(logLevel))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if profilerEnabled := !noProfiler; profilerEnabled {
		profilerSvc, err := profiler.NewService(profiler.ServiceOpts{
			Port:          profilerPort,
			StatsInterval: statsInterval,
			Datadir:       profilerDir,
			Gatherer:      registry,
		})
		if err != nil {
			log.WithError(err).Fatal("profiler: error while initializing")
		}

		if err := profilerSvc.Start(); err != nil {
			log.WithError(err).Fatal("profiler: error while starting")
		}
		defer func() {
			profilerSvc.Stop()
		}()
	}

	serviceCfg := grpc_interface.ServiceConfig{
		Port:         port,
		NoTLS:        noTLS,
		TLSLocation:  tlsDir,
		ExtraIPs:     tlsExtraIPs,
		ExtraDomains: tlsExtraDomains,
	}
	appCfg := &appconfig.AppConfig{
		Version:           version,
		Commit:            commit,
		Date:              date,
		EntropySize:       entropySize,
		AddressFormat:     string(addressFormat),
		MaxConcurrency:    maxConcurrency,
		RequestTimeout:    requestTimeout,
		MetricsRegisterer: registry,
	}

	serviceManager, err := interfaces.NewGrpcServiceManager(serviceCfg, appCfg)
	if err != nil {
		log.WithError(err).Fatal("service: error while initializing")
	}
	defer func() {
		serviceManager.Service.Stop()
	}()

	if err := serviceManager.Service.Start(); err != nil {
		log.WithError(err).Fatal("service: error while starting")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
}
