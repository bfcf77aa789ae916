package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Story-Core Configuration

llm:
  provider: gemini          # gemini or openai
  model: gemini-1.5-flash
  temperature: 0.9
  # api_key: your-api-key (or set GEMINI_API_KEY / OPENAI_API_KEY env var)
  # base_url: https://api.openai.com/v1 (openai-compatible endpoints only)

server:
  addr: ":8080"             # PORT env var overrides
  escape_html: true
  trust_proxy: false        # true only behind a proxy that sets X-Forwarded-For
  read_timeout: 15s
  write_timeout: 2m
  rate_limit:
    requests_per_minute: 10
    burst: 3

sqlite:
  path: .story/stories.db

catalog:
  # path: catalog.yaml (empty uses the built-in phrase catalog)
`

// WriteDefault creates the .story directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	configDir := ConfigDir(basePath)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
