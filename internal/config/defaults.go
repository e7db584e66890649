package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/voltkid.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when no file is found.
func Default() Config {
	return Config{
		Board: BoardConfig{
			HexSize:   1.0,
			CellWidth: 4,
		},
		Rules: RulesConfig{
			Mode:       "proxy",
			Difficulty: DifficultyNormal,
		},
		Storage: StorageConfig{
			DBPath: "~/.voltkid/progress.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     "0.0.0.0:23234",
			HostKeyPath: ".ssh/voltkid_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}
