package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2, cfg.Jobs.CacheLimit)
	assert.Equal(t, 60*time.Second, cfg.Solver.TimeLimit)
	assert.Equal(t, "0hard/0medium/10soft", cfg.Solver.BestScoreLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SCHEDULER_SERVER_PORT", "9999")
	t.Setenv("SCHEDULER_SOLVER_TIME_LIMIT", "5s")
	t.Setenv("SCHEDULER_SOLVER_SEED", "42")
	t.Setenv("SCHEDULER_JOBS_CACHE_LIMIT", "5")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Solver.TimeLimit)
	assert.Equal(t, int64(42), cfg.Solver.Seed)
	assert.Equal(t, 5, cfg.Jobs.CacheLimit)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SCHEDULER_SERVER_PORT", "99999")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("SCHEDULER_LOGGING_LEVEL", "verbose")

	_, err := Load()

	assert.Error(t, err)
}

func TestAddr(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
}
