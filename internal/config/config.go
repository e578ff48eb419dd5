// Package config provides configuration loading and validation for Caveat.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/caveat-dev/caveat/internal/analyzer"
	"github.com/caveat-dev/caveat/pkg/pathutil"
)

// Config represents the complete configuration for an analysis run.
type Config struct {
	Analyzer AnalyzerConfig   `yaml:"analyzer,omitempty"`
	Engine   EngineConfig     `yaml:"engine,omitempty"`
	Context  analyzer.Context `yaml:"context,omitempty"`
}

// AnalyzerConfig selects and configures the external clause analyzer.
// APIKeyEnv names the environment variable holding the credential so keys
// never land in config files.
type AnalyzerConfig struct {
	Driver      string  `yaml:"driver,omitempty"`
	Model       string  `yaml:"model,omitempty"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	APIKeyEnv   string  `yaml:"api_key_env,omitempty"`
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	Temperature float32 `yaml:"temperature,omitempty"`
}

// EngineConfig tunes the analysis pipeline.
type EngineConfig struct {
	Workers       int      `yaml:"workers,omitempty"`
	ClauseTimeout Duration `yaml:"clause_timeout,omitempty"`
	TotalTimeout  Duration `yaml:"total_timeout,omitempty"`
}

// Duration wraps time.Duration so YAML values like "30s" parse naturally.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns a configuration with all defaults applied and no external
// analyzer configured.
func Default() *Config {
	cfg := &Config{Context: analyzer.DefaultContext()}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a YAML configuration file. The path is validated
// before reading.
func Load(path string) (*Config, error) {
	validated, err := pathutil.ValidateConfigPath(path)
	if err != nil {
		return nil, fmt.Errorf("validating config path: %w", err)
	}

	data, err := os.ReadFile(validated) //nolint:gosec // Path validated above
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Engine.Workers <= 0 {
		c.Engine.Workers = 5
	}
	if c.Engine.ClauseTimeout <= 0 {
		c.Engine.ClauseTimeout = Duration(30 * time.Second)
	}
	if c.Engine.TotalTimeout <= 0 {
		c.Engine.TotalTimeout = Duration(5 * time.Minute)
	}
	if c.Context.DocumentType == "" {
		c.Context = analyzer.DefaultContext()
	}
	if c.Analyzer.Driver != "" && c.Analyzer.APIKeyEnv == "" {
		c.Analyzer.APIKeyEnv = "CAVEAT_API_KEY"
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Engine.Workers > 100 {
		return fmt.Errorf("engine.workers must be at most 100, got %d", c.Engine.Workers)
	}
	if c.Analyzer.Driver != "" && !analyzer.DefaultRegistry.Has(c.Analyzer.Driver) {
		return fmt.Errorf("analyzer.driver: %w", &analyzer.DriverNotFoundError{Name: c.Analyzer.Driver})
	}
	return nil
}

// BuildAnalyzer constructs the configured analyzer driver, or returns nil
// when no external analyzer is configured. A configured driver with a
// missing credential is an error rather than a silent rule-based downgrade.
func (c *Config) BuildAnalyzer() (analyzer.Analyzer, error) {
	if c.Analyzer.Driver == "" {
		return nil, nil
	}

	apiKey := os.Getenv(c.Analyzer.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("analyzer configured but %s is not set", c.Analyzer.APIKeyEnv)
	}

	return analyzer.DefaultRegistry.Get(c.Analyzer.Driver, analyzer.DriverConfig{
		APIKey:      apiKey,
		BaseURL:     c.Analyzer.BaseURL,
		Model:       c.Analyzer.Model,
		MaxTokens:   c.Analyzer.MaxTokens,
		Temperature: c.Analyzer.Temperature,
	})
}
