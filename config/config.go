package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading.
var (
	ErrUnknownNetwork = errors.New("config: unknown network")
	ErrBadOverride    = errors.New("config: invalid environment override")
)

// Known networks.
var validNetworks = map[string]bool{
	"athens":    true,
	"mainnet":   true,
	"localhost": true,
}

// Config is the full gateway configuration.
type Config struct {
	// Network selects the ZetaChain network: athens, mainnet, localhost.
	Network string `yaml:"network"`

	// RPCURL is the RPC endpoint threaded into commands by call sites.
	RPCURL string `yaml:"rpc_url"`

	// GatewayAddress is the gateway contract address.
	GatewayAddress string `yaml:"gateway_address"`

	CLI       CLIConfig       `yaml:"cli"`
	Cache     CacheConfig     `yaml:"cache"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// CLIConfig tunes resolution and invocation of the external program.
type CLIConfig struct {
	// Program is the CLI program name probed on PATH.
	Program string `yaml:"program"`

	// LocalDir is the project-relative directory of a pinned install.
	LocalDir string `yaml:"local_dir"`

	// Timeout is the wall-clock budget per invocation.
	Timeout time.Duration `yaml:"timeout"`

	// MaxOutputBytes caps combined stdout+stderr per invocation.
	MaxOutputBytes int64 `yaml:"max_output_bytes"`
}

// CacheConfig tunes the result cache.
type CacheConfig struct {
	DefaultTTL    time.Duration `yaml:"default_ttl"`
	MaxTTL        time.Duration `yaml:"max_ttl"`
	MaxEntries    int           `yaml:"max_entries"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// TelemetryConfig tunes the observe subsystem.
type TelemetryConfig struct {
	TracingExporter string  `yaml:"tracing_exporter"`
	MetricsExporter string  `yaml:"metrics_exporter"`
	SamplePct       float64 `yaml:"sample_pct"`
	LogLevel        string  `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Network:        "athens",
		RPCURL:         "https://zetachain-athens-evm.blockpi.network/v1/rpc/public",
		GatewayAddress: "0x6c533f7fe93fae114d0954697069df33c9b74fd7",
		CLI: CLIConfig{
			Program:        "zetachain",
			LocalDir:       "node_modules/.bin",
			Timeout:        15 * time.Second,
			MaxOutputBytes: 1 << 20,
		},
		Cache: CacheConfig{
			DefaultTTL:    30 * time.Second,
			MaxTTL:        10 * time.Minute,
			MaxEntries:    256,
			SweepInterval: time.Minute,
		},
		Telemetry: TelemetryConfig{
			LogLevel: "info",
		},
	}
}

// Load reads the configuration file at path, hydrates defaults, and
// applies ZETAGATE_* environment overrides. A missing file is not an
// error: defaults plus overrides apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Fall through to defaults.
		case err != nil:
			return Config{}, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	cfg = hydrateDefaults(cfg)

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	if !validNetworks[cfg.Network] {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, cfg.Network)
	}

	return cfg, nil
}

func hydrateDefaults(cfg Config) Config {
	def := Default()

	if cfg.Network == "" {
		cfg.Network = def.Network
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = def.RPCURL
	}
	if cfg.GatewayAddress == "" {
		cfg.GatewayAddress = def.GatewayAddress
	}
	if cfg.CLI.Program == "" {
		cfg.CLI.Program = def.CLI.Program
	}
	if cfg.CLI.LocalDir == "" {
		cfg.CLI.LocalDir = def.CLI.LocalDir
	}
	if cfg.CLI.Timeout <= 0 {
		cfg.CLI.Timeout = def.CLI.Timeout
	}
	if cfg.CLI.MaxOutputBytes <= 0 {
		cfg.CLI.MaxOutputBytes = def.CLI.MaxOutputBytes
	}
	if cfg.Cache.DefaultTTL <= 0 {
		cfg.Cache.DefaultTTL = def.Cache.DefaultTTL
	}
	if cfg.Cache.MaxTTL <= 0 {
		cfg.Cache.MaxTTL = def.Cache.MaxTTL
	}
	if cfg.Cache.MaxEntries <= 0 {
		cfg.Cache.MaxEntries = def.Cache.MaxEntries
	}
	if cfg.Cache.SweepInterval <= 0 {
		cfg.Cache.SweepInterval = def.Cache.SweepInterval
	}
	if cfg.Telemetry.LogLevel == "" {
		cfg.Telemetry.LogLevel = def.Telemetry.LogLevel
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ZETAGATE_NETWORK"); v != "" {
		cfg.Network = v
	}
	if v := os.Getenv("ZETAGATE_RPC_URL"); v != "" {
		cfg.RPCURL = v
	}
	if v := os.Getenv("ZETAGATE_GATEWAY"); v != "" {
		cfg.GatewayAddress = v
	}
	if v := os.Getenv("ZETAGATE_CLI_PROGRAM"); v != "" {
		cfg.CLI.Program = v
	}
	if v := os.Getenv("ZETAGATE_CLI_LOCAL_DIR"); v != "" {
		cfg.CLI.LocalDir = v
	}
	if v := os.Getenv("ZETAGATE_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return fmt.Errorf("%w: ZETAGATE_TIMEOUT_MS=%q", ErrBadOverride, v)
		}
		cfg.CLI.Timeout = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("ZETAGATE_LOG_LEVEL"); v != "" {
		cfg.Telemetry.LogLevel = v
	}
	return nil
}
