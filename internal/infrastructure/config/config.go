// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for story configuration.
	DefaultConfigDir = ".story"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultPresetsFile is the default presets file name.
	DefaultPresetsFile = "presets.yaml"
	// DefaultDatabaseFile is the SQLite file used when sqlite.path is unset.
	DefaultDatabaseFile = "stories.db"
	// DefaultEnvFile is loaded from the base path before env overrides.
	DefaultEnvFile = ".env"
)

// LLM providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default models per provider.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-1.5-flash"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	LLM     LLMConfig     `yaml:"llm,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	SQLite  SQLiteConfig  `yaml:"sqlite,omitempty"`
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
}

// LLMConfig holds configuration for the story model.
type LLMConfig struct {
	Provider    string  `yaml:"provider,omitempty" validate:"oneof=openai gemini"`
	Model       string  `yaml:"model,omitempty"`
	APIKey      string  `yaml:"api_key,omitempty"`
	BaseURL     string  `yaml:"base_url,omitempty" validate:"omitempty,url"`
	Temperature float32 `yaml:"temperature,omitempty" validate:"gte=0,lte=2"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr         string          `yaml:"addr,omitempty" validate:"required"`
	EscapeHTML   bool            `yaml:"escape_html"`
	TrustProxy   bool            `yaml:"trust_proxy"` // take client addresses from X-Forwarded-For
	ReadTimeout  time.Duration   `yaml:"read_timeout,omitempty" validate:"gte=0"`
	WriteTimeout time.Duration   `yaml:"write_timeout,omitempty" validate:"gte=0"`
	RateLimit    RateLimitConfig `yaml:"rate_limit,omitempty"`
}

// RateLimitConfig limits generation requests per client.
// A zero RequestsPerMinute disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute float64 `yaml:"requests_per_minute,omitempty" validate:"gte=0"`
	Burst             int     `yaml:"burst,omitempty" validate:"gte=1"`
}

// SQLiteConfig holds configuration for the SQLite story database.
type SQLiteConfig struct {
	// Path is the database file. Relative paths are resolved against the
	// base path; empty selects .story/stories.db.
	Path string `yaml:"path,omitempty"`
}

// CatalogConfig selects the phrase catalog.
type CatalogConfig struct {
	// Path is a YAML catalog file. Empty uses the built-in catalog.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    ProviderGemini,
			Model:       DefaultGeminiModel,
			Temperature: 0.9,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			EscapeHTML:   true,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 2 * time.Minute,
			RateLimit: RateLimitConfig{
				RequestsPerMinute: 10,
				Burst:             3,
			},
		},
	}
}

// Load loads configuration from the .story directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'story init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return parse(basePath, data)
}

// LoadOrDefault is like Load but falls back to defaults when no config
// file exists.
func LoadOrDefault(basePath string) (*Config, error) {
	data, err := os.ReadFile(ConfigFilePath(basePath))
	if errors.Is(err, os.ErrNotExist) {
		return parse(basePath, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return parse(basePath, data)
}

func parse(basePath string, data []byte) (*Config, error) {
	// Start with defaults
	cfg := Default()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// A missing .env file is fine.
	_ = godotenv.Load(filepath.Join(basePath, DefaultEnvFile))

	cfg.applyEnvOverrides()
	cfg.applyModelDefault()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case ProviderOpenAI:
			c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case ProviderGemini:
			c.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
}

// applyModelDefault picks the provider's default model when none is set,
// or when the default of the other provider was left in place.
func (c *Config) applyModelDefault() {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.Model == "" || c.LLM.Model == DefaultGeminiModel {
			c.LLM.Model = DefaultOpenAIModel
		}
	case ProviderGemini:
		if c.LLM.Model == "" || c.LLM.Model == DefaultOpenAIModel {
			c.LLM.Model = DefaultGeminiModel
		}
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SQLitePath returns the database path, resolved against basePath.
func (c *Config) SQLitePath(basePath string) string {
	switch {
	case c.SQLite.Path == "":
		return filepath.Join(basePath, DefaultConfigDir, DefaultDatabaseFile)
	case c.SQLite.Path == ":memory:" || filepath.IsAbs(c.SQLite.Path):
		return c.SQLite.Path
	default:
		return filepath.Join(basePath, c.SQLite.Path)
	}
}

// CatalogPath returns the catalog file path resolved against basePath, or
// "" for the built-in catalog.
func (c *Config) CatalogPath(basePath string) string {
	if c.Catalog.Path == "" || filepath.IsAbs(c.Catalog.Path) {
		return c.Catalog.Path
	}
	return filepath.Join(basePath, c.Catalog.Path)
}

// ConfigDir returns the path to the .story config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// PresetsFilePath returns the path to the presets file.
func PresetsFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultPresetsFile)
}

// Exists checks if a story config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
