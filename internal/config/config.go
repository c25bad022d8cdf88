// Configuration management
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how the CLI parses, validates and emits SWIFT MT
// messages. Rescoped from the teacher's gateway/ledger/bank settings
// down to the concerns an offline codec actually has: which message
// types it will accept, how strict parsing is, and where output goes.
type Config struct {
	Version string       `yaml:"version"`
	Parse   ParseConfig  `yaml:"parse"`
	Output  OutputConfig `yaml:"output"`
}

// ParseConfig controls the message assembler's tolerance for input
// that deviates from the strict grammar.
type ParseConfig struct {
	// AcceptedMessageTypes lists MT codes. It is loaded but not read
	// anywhere: ParseMessageAuto dispatches every type the codec
	// implements whatever this list holds.
	AcceptedMessageTypes []string `yaml:"accepted_message_types"`
	// Strict defaults to true. It is loaded but not read anywhere:
	// parsing always fails on the first missing or malformed field,
	// and there is no permissive parse mode.
	Strict bool `yaml:"strict"`
	// StopOnFirstValidationError controls whether ValidateNetworkRules
	// halts at the first rule failure or collects every violation.
	StopOnFirstValidationError bool `yaml:"stop_on_first_validation_error"`
}

// OutputConfig controls how the CLI renders results.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the built-in configuration used when no config file
// is found and no environment overrides are set.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Parse: ParseConfig{
			AcceptedMessageTypes:       nil,
			Strict:                     true,
			StopOnFirstValidationError: false,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load loads configuration from file or environment, in the same
// two-stage order the teacher's gateway config uses: a file path from
// an environment variable (falling back to a conventional default
// filename), then per-field environment overrides applied on top.
func Load() (*Config, error) {
	configPath := os.Getenv("SWIFTMT_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		return loadFromFile(configPath)
	}

	cfg := Default()
	applyEnvOverrides(cfg)
	return cfg, nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if format := os.Getenv("SWIFTMT_OUTPUT_FORMAT"); format != "" {
		cfg.Output.Format = format
	}
	if strict := os.Getenv("SWIFTMT_STRICT"); strict == "false" {
		cfg.Parse.Strict = false
	} else if strict == "true" {
		cfg.Parse.Strict = true
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be \"text\" or \"json\", got %q", c.Output.Format)
	}
	return nil
}
