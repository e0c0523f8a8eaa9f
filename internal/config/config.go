// Package config loads agent settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// OllamaHost is the base URL of the Ollama server; the OpenAI-compatible
	// endpoint lives under its /v1 path.
	OllamaHost string `env:"OLLAMA_HOST" envDefault:"http://localhost:11434"`
	Model      string `env:"AGENT_MODEL" envDefault:"qwen3:14b"`
	// APIKey is required by the OpenAI wire protocol but ignored by Ollama.
	APIKey string `env:"OPENAI_API_KEY" envDefault:"ollama"`
	// SystemPromptPath optionally overrides the built-in agent prompt.
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH"`
}

func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
