package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rawbytedev/u16view"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable LoadFromEnv reads.
const EnvPath = "U16VIEW_CONFIG"

var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the CLI settings.
type Config struct {
	LogLevel        string      `toml:"log_level" yaml:"log_level"`
	CaseSensitivity string      `toml:"case_sensitivity" yaml:"case_sensitivity"`
	SplitBehavior   string      `toml:"split_behavior" yaml:"split_behavior"`
	LocalEncoding   string      `toml:"local_encoding" yaml:"local_encoding"`
	InputEncoding   string      `toml:"input_encoding" yaml:"input_encoding"`
	Frame           FrameConfig `toml:"frame" yaml:"frame"`
}

// FrameConfig holds compactwire settings
type FrameConfig struct {
	Compress       bool `toml:"compress" yaml:"compress"`
	CheckAlignment bool `toml:"check_alignment" yaml:"check_alignment"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:        "info",
		CaseSensitivity: "sensitive",
		SplitBehavior:   "keep",
		InputEncoding:   "utf8",
		Frame:           FrameConfig{CheckAlignment: true},
	}
}

// Load reads a TOML or YAML file, chosen by extension, over the defaults. An
// empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, filepath.Ext(path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by U16VIEW_CONFIG, or the defaults when it
// is unset.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvPath))
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.CaseSensitivity {
	case "sensitive", "insensitive":
	default:
		return fmt.Errorf("%w: case_sensitivity %q", ErrInvalidConfig, c.CaseSensitivity)
	}
	switch c.SplitBehavior {
	case "keep", "skip":
	default:
		return fmt.Errorf("%w: split_behavior %q", ErrInvalidConfig, c.SplitBehavior)
	}
	switch c.InputEncoding {
	case "utf8", "utf16":
	default:
		return fmt.Errorf("%w: input_encoding %q", ErrInvalidConfig, c.InputEncoding)
	}
	return nil
}

func (c *Config) Case() u16view.CaseSensitivity {
	if c.CaseSensitivity == "insensitive" {
		return u16view.CaseInsensitive
	}
	return u16view.CaseSensitive
}

func (c *Config) Behavior() u16view.SplitBehavior {
	if c.SplitBehavior == "skip" {
		return u16view.SkipEmptyParts
	}
	return u16view.KeepEmptyParts
}
