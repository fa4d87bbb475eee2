package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/checksums/internal/serialize"
	"github.com/iamNilotpal/checksums/pkg/checksum"
	"github.com/iamNilotpal/checksums/pkg/errors"
)

type Config struct {
	Algorithm checksum.Algorithm `yaml:"algorithm" json:"algorithm"` // Algorithm used to hash files
	Logging   LoggingConfig      `yaml:"logging" json:"logging"`
}

// Holds logger configuration
type LoggingConfig struct {
	Level       string `yaml:"level" json:"level"`             // Minimum level (debug, info, warn, error)
	Development bool   `yaml:"development" json:"development"` // Human readable output
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Algorithm: checksum.SHA1,
		Logging: LoggingConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Loads configuration from a YAML file, or a JSON file when the name ends in ".json".
// Fields missing from the file keep their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		err = serialize.UnMarshalJSON(data, config)
	} else {
		err = decodeYAML(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Unknown keys are rejected. An empty document leaves dest untouched.
func decodeYAML(data []byte, dest *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(dest); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Validate reports the first field holding an unusable value as a *errors.ValidationError.
func (c *Config) Validate() error {
	if !c.Algorithm.IsValid() {
		return errors.NewValidationError(
			"algorithm", c.Algorithm, fmt.Errorf("unknown algorithm value %d", uint8(c.Algorithm)),
		)
	}

	if err := validateLoggingConfig(&c.Logging); err != nil {
		return err
	}

	return nil
}

// ZapLevel returns the parsed logging level, or Info if Level does not parse.
func (c *LoggingConfig) ZapLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func validateLoggingConfig(config *LoggingConfig) error {
	if _, err := zapcore.ParseLevel(config.Level); err != nil {
		return errors.NewValidationError("logging.level", config.Level, err)
	}
	return nil
}
