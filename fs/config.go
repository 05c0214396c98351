// Package fs implements file-based configuration loading.
package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/commitgen"
)

// Config holds the CLI's user-level settings. All fields have usable
// defaults; API keys usually come from the environment rather than the file.
type Config struct {
	Provider    string       `json:"provider"`     // "gemini" or "openai"
	Forge       string       `json:"forge"`        // "github" or "gitlab"
	HistoryPath string       `json:"history_path"` // JSONL file for generated messages
	Gemini      GeminiConfig `json:"gemini"`
	OpenAI      OpenAIConfig `json:"openai"`
	GitHub      TokenConfig  `json:"github"`
	GitLab      TokenConfig  `json:"gitlab"`
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
}

// OpenAIConfig configures the OpenAI provider.
type OpenAIConfig struct {
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url"`
}

// TokenConfig configures a forge backend.
type TokenConfig struct {
	Token   string `json:"token"`
	BaseURL string `json:"base_url"`
}

// DefaultPath returns the standard config file location,
// e.g. ~/.config/commitgen/config.json on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "commitgen", "config.json"), nil
}

// DefaultHistoryPath returns the standard history file location.
func DefaultHistoryPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "commitgen", "history.jsonl"), nil
}

// LoadConfig reads the config file at path and applies environment
// overrides. A missing file is not an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Provider: string(commitgen.ProviderGemini),
		Forge:    string(commitgen.ForgeGitHub),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to env overrides
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.HistoryPath == "" {
		if hp, err := DefaultHistoryPath(); err == nil {
			cfg.HistoryPath = hp
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets environment variables override file values. API keys are
// expected in the environment for most setups.
func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Provider, "COMMITGEN_PROVIDER")
	set(&cfg.Forge, "COMMITGEN_FORGE")
	set(&cfg.HistoryPath, "COMMITGEN_HISTORY")
	set(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	set(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	set(&cfg.GitHub.Token, "GITHUB_TOKEN")
	set(&cfg.GitLab.Token, "GITLAB_TOKEN")
}

func (c *Config) validate() error {
	switch commitgen.Provider(c.Provider) {
	case commitgen.ProviderGemini, commitgen.ProviderOpenAI:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	switch commitgen.ForgeKind(c.Forge) {
	case commitgen.ForgeGitHub, commitgen.ForgeGitLab:
	default:
		return fmt.Errorf("unknown forge %q", c.Forge)
	}
	return nil
}
