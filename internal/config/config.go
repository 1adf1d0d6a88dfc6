/*
Package config manages the TOML configuration of the wordset tool.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/aglyzov/go-dict/tokenize"
)

// Config holds the entire config structure
type Config struct {
	Log    LogConfig    `toml:"log"`
	Input  InputConfig  `toml:"input"`
	Dict   DictConfig   `toml:"dict"`
	Output OutputConfig `toml:"output"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// InputConfig holds options for reading word files.
type InputConfig struct {
	Encoding string `toml:"encoding"`
}

// DictConfig holds word set options.
type DictConfig struct {
	// Verify checks the trie invariants around every added word.
	Verify bool `toml:"verify"`
}

// OutputConfig selects what is printed once the input is loaded.
type OutputConfig struct {
	List  bool `toml:"list"`
	Count bool `toml:"count"`
}

// Default returns the builtin defaults.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Input:  InputConfig{Encoding: tokenize.EncodingUTF8},
		Output: OutputConfig{Count: true},
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Config file %s not found, using builtin defaults", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	for _, key := range meta.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every value can be used.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := tokenize.ParseEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
