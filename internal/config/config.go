// Package config loads memoir configuration from the store directory.
//
// Configuration is resolved once per invocation and threaded into the
// store and ranker as plain parameters; nothing in the core reads
// ambient state.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// StoreDirName is the per-project store directory.
const StoreDirName = ".memoir"

const configFile = "config.json"

// Config holds the values threaded into store and ranker construction.
type Config struct {
	StorePath           string  `json:"store_path" mapstructure:"store_path"`
	DefaultExportFormat string  `json:"default_export_format" mapstructure:"default_export_format"`
	MaxResults          int     `json:"max_results" mapstructure:"max_results"`
	TimeDecayLambda     float64 `json:"time_decay_lambda" mapstructure:"time_decay_lambda"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StorePath:           StoreDirName,
		DefaultExportFormat: "md",
		MaxResults:          10,
		TimeDecayLambda:     0.01,
	}
}

// Load resolves the store directory starting at startDir and merges
// config.json from it (if present) and MEMOIR_* environment variables
// over the defaults. Returns the merged config and the resolved store
// directory.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir := findStoreDir(startDir, cfg.StorePath)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("MEMOIR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults must be registered for env-only overrides to reach
	// Unmarshal.
	v.SetDefault("store_path", cfg.StorePath)
	v.SetDefault("default_export_format", cfg.DefaultExportFormat)
	v.SetDefault("max_results", cfg.MaxResults)
	v.SetDefault("time_decay_lambda", cfg.TimeDecayLambda)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, dir, fmt.Errorf("read config: %w", err)
		}
		// No config file; defaults and env only.
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, dir, fmt.Errorf("parse config: %w", err)
	}

	// store_path may redirect the store somewhere else entirely.
	if cfg.StorePath != StoreDirName {
		dir = findStoreDir(startDir, cfg.StorePath)
	}
	return cfg, dir, nil
}

// WriteDefault creates config.json with the default values in dir,
// leaving an existing file untouched.
func WriteDefault(dir string) error {
	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	b, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// findStoreDir walks up from startDir looking for an existing store
// directory with the given name, falling back to startDir/<name>.
// Absolute names are used directly.
func findStoreDir(startDir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	dir := startDir
	for {
		cand := filepath.Join(dir, name)
		if fi, err := os.Stat(cand); err == nil && fi.IsDir() {
			return cand
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return filepath.Join(startDir, name)
}
