package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, scheduler.AlgorithmFCFS, cfg.AlgorithmName())
	assert.Equal(t, scheduler.Options{Quantum: 2}, cfg.Options())
	assert.Equal(t, FormatPlain, cfg.Output.Format)
	assert.Equal(t, 9095, cfg.Server.Port)
	assert.Equal(t, RateLimitConfig{RPS: 10, Burst: 20, IdleTTL: 10 * time.Minute}, cfg.Server.RateLimit)
	assert.Equal(t, LimitsConfig{MaxProcesses: 1000, MaxDispatches: 100000}, cfg.Server.Limits)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithm: round-robin
scheduler:
  round_robin:
    time_quantum: 4
    ignore_arrival: true
output:
  format: table
server:
  port: 8081
  rate_limit:
    idle_ttl: 30s
  limits:
    max_processes: 50
`), 0o600))
	t.Setenv("SCHEDSIM_OUTPUT_FORMAT", "json")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, scheduler.AlgorithmRoundRobin, cfg.AlgorithmName())
	assert.Equal(t, scheduler.Options{Quantum: 4, IgnoreArrival: true}, cfg.Options())
	assert.Equal(t, FormatJSON, cfg.Output.Format, "env overrides file")
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RateLimit.IdleTTL)
	assert.Equal(t, LimitsConfig{MaxProcesses: 50, MaxDispatches: 100000}, cfg.Server.Limits)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"algorithm":   "algorithm: lottery\n",
		"quantum":     "scheduler:\n  round_robin:\n    time_quantum: 0\n",
		"format":      "output:\n  format: xml\n",
		"server port": "server:\n  port: 70000\n",
		"limits":      "server:\n  limits:\n    max_dispatches: 0\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "schedsim.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := Load(viper.New(), path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scheduler:\n  round_robin:\n    time_quantum: 3\n"), 0o600))
	t.Setenv("SCHEDSIM_ALGORITHM", "sjf")

	v := viper.New()
	_, err := Load(v, path)
	require.NoError(t, err)

	assert.True(t, Explicit(v, "algorithm"), "set by env")
	assert.True(t, Explicit(v, "scheduler.round_robin.time_quantum"), "set by file")
	assert.False(t, Explicit(v, "output.format"), "default only")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
