package appconfig_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	appconfig "github.com/vulpemventures/noir/internal/app-config"
)

func TestAppConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &appconfig.AppConfig{
			Version:           "v0.1.0",
			EntropySize:       128,
			AddressFormat:     "Ethereum",
			MaxConcurrency:    2,
			RequestTimeout:    time.Second,
			MetricsRegisterer: prometheus.NewRegistry(),
		}
		require.NoError(t, cfg.Validate())
		require.NotNil(t, cfg.Metrics())

		svc := cfg.KeygenService()
		require.NotNil(t, svc)
		require.Same(t, svc, cfg.KeygenService())

		info := svc.GetInfo(context.Background())
		require.Equal(t, "v0.1.0", info.Version)
		require.Equal(t, "none", info.Commit)
		require.Equal(t, "ethereum", info.AddressFormat)
		require.Equal(t, uint32(128), info.EntropySize)
	})

	t.Run("without metrics", func(t *testing.T) {
		cfg := &appconfig.AppConfig{}
		require.NoError(t, cfg.Validate())
		require.Nil(t, cfg.Metrics())
		require.NotNil(t, cfg.KeygenService())
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			name string
			cfg  *appconfig.AppConfig
		}{
			{"entropy size", &appconfig.AppConfig{EntropySize: 100}},
			{"address format", &appconfig.AppConfig{AddressFormat: "dogecoin"}},
			{"max concurrency", &appconfig.AppConfig{MaxConcurrency: -1}},
			{"request timeout", &appconfig.AppConfig{RequestTimeout: -time.Second}},
		}
		for _, tt := range tests {
			require.Error(t, tt.cfg.Validate(), tt.name)
		}

		reg := prometheus.NewRegistry()
		require.NoError(t, (&appconfig.AppConfig{MetricsRegisterer: reg}).Validate())
		require.Error(t, (&appconfig.AppConfig{MetricsRegisterer: reg}).Validate())
	})
}
