package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
	"github.com/vulpemventures/noir/pkg/wallet/address"
	"github.com/vulpemventures/noir/pkg/wallet/mnemonic"
)

const (
	// DatadirKey is the key to customize the noir datadir.
	DatadirKey = "DATADIR"
	// PortKey is the key to customize the port where the daemon will be
	// listening to.
	PortKey = "PORT"
	// ProfilerPortKey is the key to customize the port where the profiler will
	// be listening to.
	ProfilerPortKey = "PROFILER_PORT"
	// LogLevelKey is the key to customize the log level to catch more specific
	// or more high level logs.
	LogLevelKey = "LOG_LEVEL"
	// TLSExtraIPKey is the key to bind one or more public IPs to the TLS key pair.
	// Should be used only when enabling TLS.
	TLSExtraIPKey = "TLS_EXTRA_IP"
	// TLSExtraDomainKey is the key to bind one or more public dns domains to the
	// TLS key pair. Should be used only when enabling TLS.
	TLSExtraDomainKey = "TLS_EXTRA_DOMAIN"
	// NoTLSKey is the key to disable TLS encryption.
	NoTLSKey = "NO_TLS"
	// NoProfilerKey is the key to disable Prometheus profiling.
	NoProfilerKey = "NO_PROFILER"
	// StatsIntervalKey is the key to customize the interval for the profiled to
	// gather profiling stats.
	StatsIntervalKey = "STATS_INTERVAL"
	// EntropySizeKey is the key to customize the entropy size in bits of the
	// generated mnemonics (128 -> 12 words, 256 -> 24 words).
	EntropySizeKey = "ENTROPY_SIZE"
	// AddressFormatKey is the key to customize the format of the main address
	// returned for every derived key.
	AddressFormatKey = "ADDRESS_FORMAT"
	// MaxConcurrencyKey is the key to customize the max number of derivations
	// running in parallel.
	MaxConcurrencyKey = "MAX_CONCURRENCY"
	// RequestTimeoutKey is the key to customize the max duration of a request.
	RequestTimeoutKey = "REQUEST_TIMEOUT_IN_SECONDS"

	// TLSLocation is the folder inside the datadir containing TLS key and
	// certificate.
	TLSLocation = "tls"
	// ProfilerLocation is the folder inside the datadir containing profiler
	// stats files.
	ProfilerLocation = "stats"
)

var (
	vip *viper.Viper

	defaultDatadir        = btcutil.AppDataDir("noird", false)
	defaultPort           = 18100
	defaultLogLevel       = 4
	defaultProfilerPort   = 18101
	defaultStatsInterval  = 600 // 10 minutes
	defaultEntropySize    = mnemonic.DefaultEntropySize
	defaultAddressFormat  = string(address.DefaultFormat)
	defaultMaxConcurrency = runtime.NumCPU()
	defaultRequestTimeout = 10
)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("NOIR")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(PortKey, defaultPort)
	vip.SetDefault(LogLevelKey, defaultLogLevel)
	vip.SetDefault(NoTLSKey, false)
	vip.SetDefault(NoProfilerKey, false)
	vip.SetDefault(ProfilerPortKey, defaultProfilerPort)
	vip.SetDefault(StatsIntervalKey, defaultStatsInterval)
	vip.SetDefault(EntropySizeKey, defaultEntropySize)
	vip.SetDefault(AddressFormatKey, defaultAddressFormat)
	vip.SetDefault(MaxConcurrencyKey, defaultMaxConcurrency)
	vip.SetDefault(RequestTimeoutKey, defaultRequestTimeout)

	if err := validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	if err := initDatadir(); err != nil {
		log.Fatalf("config: error while creating datadir: %s", err)
	}
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("datadir must not be null")
	}

	logLevel := GetInt(LogLevelKey)
	if logLevel < 0 || logLevel > 6 {
		return fmt.Errorf("log level must be in range [0, 6]")
	}

	if err := mnemonic.ValidateEntropySize(uint32(GetInt(EntropySizeKey))); err != nil {
		return err
	}

	if _, err := address.ParseFormat(GetString(AddressFormatKey)); err != nil {
		return err
	}

	if GetInt(MaxConcurrencyKey) <= 0 {
		return fmt.Errorf("max concurrency must be a positive number")
	}
	if GetInt(RequestTimeoutKey) < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}

	port := GetInt(PortKey)
	noProfiler := GetBool(NoProfilerKey)
	if !noProfiler {
		profilerPort := GetInt(ProfilerPortKey)
		if port == profilerPort {
			return fmt.Errorf("port and profiler port must not be equal")
		}
		if GetInt(StatsIntervalKey) <= 0 {
			return fmt.Errorf("stats interval must be a positive number")
		}
	}

	return nil
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func GetEntropySize() uint32 {
	return uint32(GetInt(EntropySizeKey))
}

func GetAddressFormat() address.Format {
	format, _ := address.ParseFormat(GetString(AddressFormatKey))
	return format
}

func GetRequestTimeout() time.Duration {
	return time.Duration(GetInt(RequestTimeoutKey)) * time.Second
}

func GetStatsInterval() time.Duration {
	return time.Duration(GetInt(StatsIntervalKey)) * time.Second
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetStringSlice(key string) []string {
	return vip.GetStringSlice(key)
}

func Set(key string, val interface{}) {
	vip.Set(key, val)
}

func Unset(key string) {
	vip.Set(key, nil)
}

func IsSet(key string) bool {
	return vip.IsSet(key)
}

func initDatadir() error {
	datadir := GetDatadir()
	if err := makeDirectoryIfNotExists(datadir); err != nil {
		return err
	}

	noProfiler := GetBool(NoProfilerKey)
	if !noProfiler {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, ProfilerLocation)); err != nil {
			return err
		}
	}

	noTls := GetBool(NoTLSKey)
	if noTls {
		return nil
	}
	if err := makeDirectoryIfNotExists(filepath.Join(datadir, TLSLocation)); err != nil {
		return err
	}
	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
