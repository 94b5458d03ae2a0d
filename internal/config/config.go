// Package config loads the YAML configuration of the funtom command.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/funtom_go/internal/logging"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of a funtom.yaml file.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Memo   MemoConfig   `yaml:"memo"`
	Random RandomConfig `yaml:"random"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type MemoConfig struct {
	// MaxTableSize bounds each generation of a tableized function.
	MaxTableSize uint32 `yaml:"max_table_size"`
}

type RandomConfig struct {
	// Seed of the PCG source used by random effects. Zero means seed from
	// the runtime.
	Seed uint64 `yaml:"seed"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:    logging.LevelInfo,
			Encoding: logging.EncodingJSON,
		},
		Memo: MemoConfig{
			MaxTableSize: 128,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error

	switch c.Log.Level {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %s: %q", ErrInvalidConfig, ConfigLogLevel, c.Log.Level))
	}

	switch c.Log.Encoding {
	case logging.EncodingJSON, logging.EncodingConsole:
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %s: %q", ErrInvalidConfig, ConfigLogEncoding, c.Log.Encoding))
	}

	if c.Memo.MaxTableSize == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %s must be greater than 0", ErrInvalidConfig, ConfigMemoMaxTableSize))
	}

	return err
}
