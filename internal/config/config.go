package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

const envPrefix = "SCHEDSIM"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Algorithm string          `mapstructure:"algorithm"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Output    OutputConfig    `mapstructure:"output"`
	Server    ServerConfig    `mapstructure:"server"`
}

type SchedulerConfig struct {
	RoundRobin RoundRobinConfig `mapstructure:"round_robin"`
}

type RoundRobinConfig struct {
	TimeQuantum   int  `mapstructure:"time_quantum"`
	IgnoreArrival bool `mapstructure:"ignore_arrival"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	Chart  string `mapstructure:"chart"`
}

type ServerConfig struct {
	Port      int             `mapstructure:"port"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Limits    LimitsConfig    `mapstructure:"limits"`
}

// RateLimitConfig limits requests per client IP. A non-positive RPS
// disables limiting. Clients idle for IdleTTL lose their limiter.
type RateLimitConfig struct {
	RPS     float64       `mapstructure:"rps"`
	Burst   int           `mapstructure:"burst"`
	IdleTTL time.Duration `mapstructure:"idle_ttl"`
}

// LimitsConfig bounds the work a single API request may ask for.
type LimitsConfig struct {
	MaxProcesses  int `mapstructure:"max_processes"`
	MaxDispatches int `mapstructure:"max_dispatches"`
}

const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault("algorithm", string(scheduler.AlgorithmFCFS))
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.round_robin.ignore_arrival", false)
	v.SetDefault("output.format", FormatPlain)
	v.SetDefault("output.chart", "")
	v.SetDefault("server.port", 9095)
	v.SetDefault("server.rate_limit.rps", 10)
	v.SetDefault("server.rate_limit.burst", 20)
	v.SetDefault("server.rate_limit.idle_ttl", 10*time.Minute)
	v.SetDefault("server.limits.max_processes", 1000)
	v.SetDefault("server.limits.max_dispatches", 100000)
}

// Explicit reports whether key was given by the config file or the
// environment rather than left at its default. Flags are checked by the
// caller, which owns the flag set.
func Explicit(v *viper.Viper, key string) bool {
	if v.InConfig(key) {
		return true
	}
	_, ok := os.LookupEnv(envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	return ok
}

// Load reads configuration from defaults, the optional file at path and
// SCHEDSIM_* environment variables, plus any flags already bound to v.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := scheduler.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %v", ErrInvalidConfig, err)
	}
	if c.Scheduler.RoundRobin.TimeQuantum <= 0 {
		return fmt.Errorf("%w: scheduler.round_robin.time_quantum %d: %v",
			ErrInvalidConfig, c.Scheduler.RoundRobin.TimeQuantum, scheduler.ErrInvalidQuantum)
	}
	switch c.Output.Format {
	case FormatPlain, FormatTable, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output.Format)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.RateLimit.RPS > 0 && c.Server.RateLimit.Burst < 1 {
		return fmt.Errorf("%w: server.rate_limit.burst must be at least 1", ErrInvalidConfig)
	}
	if c.Server.Limits.MaxProcesses < 1 || c.Server.Limits.MaxDispatches < 1 {
		return fmt.Errorf("%w: server.limits must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// Options converts the scheduler section into simulator options.
func (c *Config) Options() scheduler.Options {
	return scheduler.Options{
		Quantum:       c.Scheduler.RoundRobin.TimeQuantum,
		IgnoreArrival: c.Scheduler.RoundRobin.IgnoreArrival,
	}
}

// AlgorithmName returns the configured algorithm. Validate has already
// checked that it parses.
func (c *Config) AlgorithmName() scheduler.Algorithm {
	alg, _ := scheduler.ParseAlgorithm(c.Algorithm)
	return alg
}
