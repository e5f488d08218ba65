// Package models defines configuration and result structures shared by the
// CLI commands.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Values come from an optional
// config.yaml merged with CLI flag overrides.
type Config struct {
	Model           string   `yaml:"model"`
	OllamaURL       string   `yaml:"ollama_url"`
	AvailableModels []string `yaml:"available_models"`
	Workers         int      `yaml:"workers"`
	OutputDir       string   `yaml:"output_dir"`
	VocabDB         string   `yaml:"vocab_db"`
	LexiconFile     string   `yaml:"lexicon_file"`
}

// DefaultConfig returns the built-in defaults: a local Ollama endpoint and
// the model lineup the tool is tested against.
func DefaultConfig() *Config {
	return &Config{
		Model:     "qwen3:8b",
		OllamaURL: "http://localhost:11434",
		AvailableModels: []string{
			"huihui_ai/qwenlong-abliterated:latest",
			"gemma3:12b",
			"gemma3:27b",
			"qwen3:32b",
			"qwen3:8b",
			"gemma3:4b",
			"phi4:latest",
		},
		Workers:   1,
		OutputDir: "reports",
		VocabDB:   "vocabulary.db",
	}
}

// LoadConfig reads path and merges it over the defaults. A missing file is
// not an error; the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SetModel switches the active model, rejecting names outside the
// configured list.
func (c *Config) SetModel(name string) error {
	for _, m := range c.AvailableModels {
		if m == name {
			c.Model = name
			return nil
		}
	}
	return fmt.Errorf("model %q is not in the configured model list", name)
}
