// Package config loads service configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "5s" parse naturally.
type Duration time.Duration

// UnmarshalYAML parses Go duration strings and bare nanosecond integers.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		var ns int64
		if intErr := value.Decode(&ns); intErr != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		parsed = time.Duration(ns)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the full service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	LLM        LLMConfig        `yaml:"llm"`
	Research   ResearchConfig   `yaml:"research"`
	Generation GenerationConfig `yaml:"generation"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port         string  `yaml:"port"`
	DataDir      string  `yaml:"data_dir"`
	RateLimit    float64 `yaml:"rate_limit"`
	RateBurst    int     `yaml:"rate_burst"`
	AllowOrigins string  `yaml:"allow_origins"`
}

// LLMConfig configures the completion client.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
}

// ResearchConfig configures the external keyword research client.
type ResearchConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Budget   Duration `yaml:"budget"`
	CacheTTL Duration `yaml:"cache_ttl"`
}

// GenerationConfig configures pipeline defaults.
type GenerationConfig struct {
	CacheTTL     Duration `yaml:"cache_ttl"`
	MaxCacheSize int      `yaml:"max_cache_size"`
	LLMTimeout   Duration `yaml:"llm_timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			DataDir:      "./data",
			RateLimit:    2,
			RateBurst:    5,
			AllowOrigins: "*",
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
		Research: ResearchConfig{
			Enabled:  true,
			Budget:   Duration(10 * time.Second),
			CacheTTL: Duration(30 * time.Minute),
		},
		Generation: GenerationConfig{
			CacheTTL:     Duration(30 * time.Minute),
			MaxCacheSize: 1000,
			LLMTimeout:   Duration(90 * time.Second),
		},
	}
}

// Load reads the YAML file at path (if it exists) on top of the defaults,
// then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Server.DataDir = v
	}
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		c.Server.AllowOrigins = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("RESEARCH_ENABLED"); v != "" {
		c.Research.Enabled = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv("RESEARCH_BUDGET"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Research.Budget = Duration(d)
		}
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Server.RateLimit = f
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.LLM.Provider == "" {
		return fmt.Errorf("llm provider must not be empty")
	}
	if c.Research.Budget <= 0 {
		return fmt.Errorf("research budget must be positive")
	}
	return nil
}
