// Package config holds the yaml configuration for subtran.
package config

//go:generate go run ../tools/schema-generator

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProviderConfig selects and configures the translation provider.
type ProviderConfig struct {
	// Name of the registered provider: "openai" (default) or "mock".
	Name string `yaml:"name,omitempty"`

	// Model passed to the provider, e.g. "gpt-4o".
	Model string `yaml:"model,omitempty"`

	// BaseURL overrides the provider endpoint, for OpenAI-compatible APIs.
	BaseURL string `yaml:"base_url,omitempty"`

	// APIKey for the provider. Falls back to the OPENAI_API_KEY
	// environment variable when empty.
	APIKey string `yaml:"api_key,omitempty"`

	// Context is a one-line description of the material being translated,
	// folded into the prompt, e.g. "a documentary about game development".
	Context string `yaml:"context,omitempty"`
}

// TranslateConfig defines settings for the translate stage.
type TranslateConfig struct {
	Provider ProviderConfig `yaml:"provider,omitempty"`

	// BatchSize is the number of subtitles sent per request (default 50).
	BatchSize int `yaml:"batch_size,omitempty"`

	// MaxRetries bounds the per-batch retry loop (default 5).
	MaxRetries int `yaml:"max_retries,omitempty"`
}

// SanitizeConfig defines settings for the sanitize stage.
type SanitizeConfig struct {
	// Conversion is the OpenCC scheme applied to translations,
	// e.g. "s2t" or "s2twp" (default).
	Conversion string `yaml:"conversion,omitempty"`
}

// Config is the top-level configuration structure for subtran.
type Config struct {
	Translate TranslateConfig `yaml:"translate,omitempty"`
	Sanitize  SanitizeConfig  `yaml:"sanitize,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Translate: TranslateConfig{
			Provider:   ProviderConfig{Name: "openai"},
			BatchSize:  50,
			MaxRetries: 5,
		},
		Sanitize: SanitizeConfig{Conversion: "s2twp"},
	}
}

// DefaultPath returns the standard config location under the user's home.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "subtran", "config.yml"), nil
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields the defaults. Environment fallbacks and
// default values are applied before returning.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.normalize()
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, cfg.Validate()
}

func (c *Config) normalize() {
	if c.Translate.Provider.Name == "" {
		c.Translate.Provider.Name = "openai"
	}
	if c.Translate.Provider.APIKey == "" {
		c.Translate.Provider.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Translate.BatchSize <= 0 {
		c.Translate.BatchSize = 50
	}
	if c.Translate.MaxRetries <= 0 {
		c.Translate.MaxRetries = 5
	}
	if c.Sanitize.Conversion == "" {
		c.Sanitize.Conversion = "s2twp"
	}
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Translate.BatchSize > 500 {
		return fmt.Errorf("translate.batch_size %d is too large (max 500)", c.Translate.BatchSize)
	}
	return nil
}
