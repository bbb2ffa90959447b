package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application settings loaded from the YAML config file.
// Environment variables HAL9001_DB and HAL9001_DATA override the file.
type Config struct {
	// UserID scopes schedules; a local install has a single user.
	UserID string `yaml:"user_id,omitempty"`

	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path,omitempty"`

	// DataDir holds the schedule template, routines and player data.
	DataDir string `yaml:"data_dir,omitempty"`

	// TemplatePath overrides the default <data_dir>/schedule_template.json.
	TemplatePath string `yaml:"template_path,omitempty"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
}

type LoggingConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
	// Pretty switches from JSON to console output.
	Pretty bool `yaml:"pretty,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	dataDir := "data"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".hal9001")
	}
	return &Config{
		UserID:  "default",
		DBPath:  filepath.Join(dataDir, "hal9001.db"),
		DataDir: dataDir,
		Logging: LoggingConfig{Level: "info", Pretty: true},
	}
}

// Load reads the YAML config at path, fills unset fields from defaults
// and applies environment overrides. A missing file is not an error;
// defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if v := os.Getenv("HAL9001_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("HAL9001_DATA"); v != "" {
		cfg.DataDir = v
	}

	if cfg.UserID == "" {
		cfg.UserID = "default"
	}
	if cfg.TemplatePath == "" {
		cfg.TemplatePath = filepath.Join(cfg.DataDir, "schedule_template.json")
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	return cfg, nil
}

// RoutinesDir is where routine markdown files live.
func (c *Config) RoutinesDir() string {
	return filepath.Join(c.DataDir, "routines")
}
