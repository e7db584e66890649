// Package config provides YAML-based configuration loading for VoltKid.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/voltkid/internal/circuit"
)

// Config contains all runtime configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// BoardConfig defines how the hex board is drawn in the terminal.
type BoardConfig struct {
	HexSize   float64 `yaml:"hex_size"`   // hex radius in layout units
	CellWidth int     `yaml:"cell_width"` // terminal columns per hex
}

// RulesConfig selects how a board is judged and graded.
type RulesConfig struct {
	Mode           string           `yaml:"mode"` // "proxy" or "strict"
	Difficulty     DifficultyPreset `yaml:"difficulty"`
	StarThresholds ThresholdsConfig `yaml:"star_thresholds"`
}

// ThresholdsConfig holds the step ratios for star ratings.
// Zero values fall back to the difficulty preset.
type ThresholdsConfig struct {
	Three float64 `yaml:"three"`
	Two   float64 `yaml:"two"`
}

// LevelsConfig points at an optional level directory.
// An empty Dir means the builtin pack.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig defines where progress is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig controls logger verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig defines the SSH server settings.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Rule returns the evaluation rule selected by Rules.Mode.
func (c Config) Rule() circuit.Rule {
	r, _ := circuit.ParseRule(c.Rules.Mode)
	return r
}

// Thresholds returns the star thresholds in effect.
// Explicit thresholds override the difficulty preset.
func (c Config) Thresholds() circuit.StarThresholds {
	th := ThresholdsForPreset(c.Rules.Difficulty)
	if c.Rules.StarThresholds.Three > 0 {
		th.Three = c.Rules.StarThresholds.Three
	}
	if c.Rules.StarThresholds.Two > 0 {
		th.Two = c.Rules.StarThresholds.Two
	}
	return th
}

// SessionOptions returns the options to start a session with.
func (c Config) SessionOptions() []circuit.SessionOption {
	return []circuit.SessionOption{
		circuit.WithRule(c.Rule()),
		circuit.WithThresholds(c.Thresholds()),
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Board.HexSize <= 0 {
		return fmt.Errorf("config: board.hex_size must be positive, got %v", c.Board.HexSize)
	}
	if c.Board.CellWidth <= 0 {
		return fmt.Errorf("config: board.cell_width must be positive, got %d", c.Board.CellWidth)
	}
	if _, ok := circuit.ParseRule(c.Rules.Mode); !ok {
		return fmt.Errorf("config: unknown rules.mode %q", c.Rules.Mode)
	}
	if !IsValidPreset(c.Rules.Difficulty) {
		return fmt.Errorf("config: unknown rules.difficulty %q", c.Rules.Difficulty)
	}
	th := c.Thresholds()
	if th.Three < 1 || th.Two < th.Three {
		return fmt.Errorf("config: star thresholds must satisfy 1 <= three <= two, got %v/%v", th.Three, th.Two)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path is empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout is negative")
	}
	return nil
}
