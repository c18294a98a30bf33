package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// AI Models
	Models ModelConfig `json:"models"`

	// UI Preferences
	UI UIConfig `json:"ui"`
}

// ModelConfig holds AI model settings
type ModelConfig struct {
	Claude ModelSettings `json:"claude"`
	Gemini ModelSettings `json:"gemini"`
	Ollama ModelSettings `json:"ollama"`
}

// ModelSettings for a single AI provider
type ModelSettings struct {
	Enabled  bool   `json:"enabled"`
	APIKey   string `json:"api_key,omitempty"`
	Endpoint string `json:"endpoint,omitempty"` // For Ollama or custom endpoints
	Model    string `json:"model,omitempty"`    // Specific model to use
	Priority int    `json:"priority"`           // Lower = higher priority for fallback
}

// UIConfig holds UI preferences
type UIConfig struct {
	Theme       string `json:"theme"`
	DensityMode string `json:"density_mode"` // "comfortable" or "compact"
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Models: ModelConfig{
			Claude: ModelSettings{
				Enabled:  true,
				Priority: 1,
				Model:    "claude-sonnet-4-5-20250929",
			},
			Gemini: ModelSettings{
				Enabled:  false,
				Priority: 2,
				Model:    "gemini-3-flash-preview",
			},
			Ollama: ModelSettings{
				Enabled:  false,
				Priority: 3,
				Endpoint: "http://localhost:11434",
				// Model auto-detected from Ollama if not specified
			},
		},
		UI: UIConfig{
			Theme:       "dark",
			DensityMode: "comfortable",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".medlens", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: auto-populate from environment and write the
			// file so users have something to edit
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			// Best effort; running without a config file is fine
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600) // Restrictive permissions for API keys
}

// AutoPopulateFromEnv fills in API keys from environment variables
func (c *Config) AutoPopulateFromEnv() {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		c.Models.Claude.APIKey = key
		c.Models.Claude.Enabled = true
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.Models.Gemini.APIKey = key
		c.Models.Gemini.Enabled = true
	}
	if endpoint := os.Getenv("OLLAMA_HOST"); endpoint != "" {
		c.Models.Ollama.Endpoint = endpoint
		c.Models.Ollama.Enabled = true
	}
}

// GetEnabledModels returns models that are enabled and usable
func (c *Config) GetEnabledModels() []string {
	var models []string
	if c.Models.Claude.Enabled && c.Models.Claude.APIKey != "" {
		models = append(models, "claude")
	}
	if c.Models.Gemini.Enabled && c.Models.Gemini.APIKey != "" {
		models = append(models, "gemini")
	}
	if c.Models.Ollama.Enabled {
		models = append(models, "ollama")
	}
	return models
}
