package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thirteen/internal/bot"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Simulation.Matches)
	assert.Len(t, cfg.Seats, 4)
	require.NoError(t, cfg.Validate())
}

func TestLoadParsesSeatsAndTuning(t *testing.T) {
	path := writeConfig(t, `
simulation {
  matches   = 25
  seed      = 7
  log_level = "debug"
}

seat "hero" {
  level = "tactician"
}

seat "villain" {
  level = "rookie"
}

tuning {
  pass_threshold   = -5.0
  threat_threshold = 2
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 25, cfg.Simulation.Matches)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, "debug", cfg.Simulation.LogLevel)
	require.Len(t, cfg.Seats, 2)
	assert.Equal(t, "hero", cfg.Seats[0].Name)
	assert.Equal(t, "tactician", cfg.Seats[0].Level)

	tuning := cfg.BotTuning()
	assert.Equal(t, -5.0, tuning.PassThreshold)
	assert.Equal(t, 2, tuning.ThreatThreshold)
	// Untouched knobs keep their defaults.
	assert.Equal(t, bot.DefaultTuning.Mid, tuning.Mid)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Simulation.Matches)
	assert.Equal(t, "info", cfg.Simulation.LogLevel)
	assert.Len(t, cfg.Seats, 4)
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cfg := Default()
	cfg.Seats[0].Level = "grandmaster"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Seats = cfg.Seats[:1]
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Seats[1].Name = cfg.Seats[0].Name
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Simulation.Matches = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `simulation { matches = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestBotTuningWithoutOverrides(t *testing.T) {
	cfg := Default()
	assert.Equal(t, bot.DefaultTuning, cfg.BotTuning())
}
