package config

import (
	_ "embed"
)

//go:embed defaults/consolekit.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		DelayMS: 0,
		Driver:  DriverTea,
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
		},
		Storage: StorageConfig{
			DB: "~/.consolekit/entries.db",
		},
		SSH: SSHConfig{
			Address:        ":23234",
			IdleTimeoutMin: 30,
		},
	}
}
