package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds scc configuration.
type Config struct {
	// DataDir holds the connections file. Defaults to ~/.scc.
	DataDir string `json:"data_dir,omitempty"`

	// Schema is the connections file layout: "extended" or "simple".
	Schema string `json:"schema,omitempty"`

	// Watch reloads the connection list when the file is edited outside scc.
	Watch *bool `json:"watch,omitempty"`
}

const connectionsFile = "connections"

// DefaultDataDir returns ~/.scc.
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".scc")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	watch := true
	return Config{
		DataDir: DefaultDataDir(),
		Schema:  "extended",
		Watch:   &watch,
	}
}

// configPath returns the path to the config file.
func configPath() string {
	return filepath.Join(DefaultDataDir(), "config.json")
}

// LoadFrom reads the config from the given path, or returns defaults if not found or invalid.
func LoadFrom(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	// Parse JSON, keeping defaults for missing fields
	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return cfg
	}

	// Override defaults with loaded values
	if loaded.DataDir != "" {
		cfg.DataDir = loaded.DataDir
	}
	if loaded.Schema == "simple" || loaded.Schema == "extended" {
		cfg.Schema = loaded.Schema
	}
	if loaded.Watch != nil {
		cfg.Watch = loaded.Watch
	}

	return cfg
}

// Load reads the config from disk, or returns defaults if not found.
func Load() Config {
	return LoadFrom(configPath())
}

// GetDataDir returns the data directory with ~ expanded to the home directory.
func (c Config) GetDataDir() string {
	d := c.DataDir
	if d == "" {
		return DefaultDataDir()
	}
	if d[0] == '~' {
		home, _ := os.UserHomeDir()
		d = filepath.Join(home, d[1:])
	}
	return d
}

// ConnectionsPath returns the path of the connections file.
func (c Config) ConnectionsPath() string {
	return filepath.Join(c.GetDataDir(), connectionsFile)
}

// WatchEnabled reports whether external edits should be picked up.
func (c Config) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}

// EnsureDataDir creates the data directory if it does not exist.
func (c Config) EnsureDataDir() error {
	return os.MkdirAll(c.GetDataDir(), 0o700)
}
