package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"thirteen/internal/bot"
)

// Config is the simulation configuration loaded from HCL.
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Seats      []SeatConfig       `hcl:"seat,block"`
	Tuning     *TuningConfig      `hcl:"tuning,block"`
}

// SimulationSettings controls the match runner.
type SimulationSettings struct {
	Matches  int    `hcl:"matches,optional"`
	Seed     int64  `hcl:"seed,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// SeatConfig assigns a strategy tier to a named seat.
type SeatConfig struct {
	Name  string `hcl:"name,label"`
	Level string `hcl:"level"`
}

// TuningConfig overrides pieces of the default strategy tuning.
type TuningConfig struct {
	PassThreshold   *float64 `hcl:"pass_threshold,optional"`
	ThreatThreshold *int     `hcl:"threat_threshold,optional"`
}

// Default returns the built-in configuration: one tactician against a
// balanced pair and a rookie.
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Matches:  100,
			LogLevel: "info",
		},
		Seats: []SeatConfig{
			{Name: "north", Level: "tactician"},
			{Name: "east", Level: "balanced"},
			{Name: "south", Level: "balanced"},
			{Name: "west", Level: "rookie"},
		},
	}
}

// Load reads configuration from an HCL file, falling back to Default when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Simulation.Matches == 0 {
		cfg.Simulation.Matches = 100
	}
	if cfg.Simulation.LogLevel == "" {
		cfg.Simulation.LogLevel = "info"
	}
	if len(cfg.Seats) == 0 {
		cfg.Seats = Default().Seats
	}

	return &cfg, nil
}

// Validate checks seat count and strategy names.
func (c *Config) Validate() error {
	if c.Simulation.Matches < 1 {
		return fmt.Errorf("matches must be positive, got %d", c.Simulation.Matches)
	}
	if len(c.Seats) < 2 || len(c.Seats) > 4 {
		return fmt.Errorf("need 2 to 4 seats, got %d", len(c.Seats))
	}

	names := map[string]bool{}
	for _, seat := range c.Seats {
		if names[seat.Name] {
			return fmt.Errorf("duplicate seat name %q", seat.Name)
		}
		names[seat.Name] = true
		if _, err := bot.ParseBotLevel(seat.Level); err != nil {
			return fmt.Errorf("seat %s: %w", seat.Name, err)
		}
	}
	return nil
}

// BotTuning merges the overrides over the default tuning.
func (c *Config) BotTuning() bot.Tuning {
	tuning := bot.DefaultTuning
	if c.Tuning == nil {
		return tuning
	}
	if c.Tuning.PassThreshold != nil {
		tuning.PassThreshold = *c.Tuning.PassThreshold
	}
	if c.Tuning.ThreatThreshold != nil {
		tuning.ThreatThreshold = *c.Tuning.ThreatThreshold
	}
	return tuning
}
