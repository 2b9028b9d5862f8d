package appconfig

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vulpemventures/noir/internal/core/application"
	"github.com/vulpemventures/noir/internal/core/ports"
	prometheusmetrics "github.com/vulpemventures/noir/internal/infrastructure/metrics/prometheus"
	"github.com/vulpemventures/noir/pkg/wallet/address"
	"github.com/vulpemventures/noir/pkg/wallet/mnemonic"
)

// AppConfig is the struct holding all configuration options for the keygen
// application service. This data structure acts also as a factory of the
// mentioned service and the portable services used by it.
// Public config args:
//   - EntropySize - (optional) Size in bits of generated mnemonics' entropy (defaults to 256).
//   - AddressFormat - (optional) Format of the main address of derived keys (defaults to cosmos).
//   - MaxConcurrency - (optional) Size of the worker pool (defaults to the number of CPUs).
//   - RequestTimeout - (optional) Max duration of every request, 0 disables it.
//   - MetricsRegisterer - (optional) Prometheus registerer for the service metrics, metrics are disabled if not defined.
type AppConfig struct {
	Version string
	Commit  string
	Date    string

	EntropySize       uint32
	AddressFormat     string
	MaxConcurrency    int
	RequestTimeout    time.Duration
	MetricsRegisterer prometheus.Registerer

	metrics   ports.Metrics
	keygenSvc *application.KeygenService
}

func (c *AppConfig) Validate() error {
	if c.EntropySize > 0 {
		if err := mnemonic.ValidateEntropySize(c.EntropySize); err != nil {
			return err
		}
	}
	if c.AddressFormat != "" {
		if _, err := address.ParseFormat(c.AddressFormat); err != nil {
			return err
		}
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max concurrency must not be negative")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	if _, err := c.metricsService(); err != nil {
		return err
	}
	if _, err := c.keygenService(); err != nil {
		return err
	}
	return nil
}

func (c *AppConfig) Metrics() ports.Metrics {
	return c.metrics
}

func (c *AppConfig) KeygenService() *application.KeygenService {
	svc, _ := c.keygenService()
	return svc
}

func (c *AppConfig) metricsService() (ports.Metrics, error) {
	if c.metrics != nil || c.MetricsRegisterer == nil {
		return c.metrics, nil
	}

	metrics, err := prometheusmetrics.NewService(c.MetricsRegisterer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	c.metrics = metrics
	return c.metrics, nil
}

func (c *AppConfig) keygenService() (*application.KeygenService, error) {
	if c.keygenSvc != nil {
		return c.keygenSvc, nil
	}

	var format address.Format
	if c.AddressFormat != "" {
		format, _ = address.ParseFormat(c.AddressFormat)
	}
	metrics, err := c.metricsService()
	if err != nil {
		return nil, err
	}

	svc, err := application.NewKeygenService(application.KeygenServiceOpts{
		EntropySize:    c.EntropySize,
		AddressFormat:  format,
		MaxConcurrency: c.MaxConcurrency,
		RequestTimeout: c.RequestTimeout,
		Metrics:        metrics,
		BuildInfo:      c.buildInfo(),
	})
	if err != nil {
		return nil, err
	}
	c.keygenSvc = svc
	return c.keygenSvc, nil
}

func (c *AppConfig) buildInfo() application.BuildInfo {
	version := "dev"
	if c.Version != "" {
		version = c.Version
	}
	commit := "none"
	if c.Commit != "" {
		commit = c.Commit
	}
	date := "unknown"
	if c.Date != "" {
		date = c.Date
	}
	return application.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
