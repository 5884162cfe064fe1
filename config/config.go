package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Inference server
	Ollama     OllamaConfig
	Similarity SimilarityConfig

	// Cross-cutting
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OllamaConfig struct {
	BaseURL     string
	EmbedModel  string
	PromptModel string
	Timeout     time.Duration
	JSONOutput  bool
}

type SimilarityConfig struct {
	// MaxConcurrency caps in-flight candidate embeddings; 0 means no cap.
	MaxConcurrency int
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Ollama
	cfg.Ollama.BaseURL = v.GetString("ollama.base_url")
	if ollamaURL := v.GetString("ollama_url"); ollamaURL != "" {
		cfg.Ollama.BaseURL = ollamaURL
	}
	cfg.Ollama.EmbedModel = v.GetString("ollama.embed_model")
	cfg.Ollama.PromptModel = v.GetString("ollama.prompt_model")
	cfg.Ollama.JSONOutput = v.GetBool("ollama.json_output")

	timeout, err := time.ParseDuration(v.GetString("ollama.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid ollama.timeout: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid ollama.timeout: must be positive, got %s", timeout)
	}
	cfg.Ollama.Timeout = timeout

	// Similarity
	cfg.Similarity.MaxConcurrency = v.GetInt("similarity.max_concurrency")
	if cfg.Similarity.MaxConcurrency < 0 {
		return nil, fmt.Errorf("invalid similarity.max_concurrency: must not be negative")
	}

	// Rate limit & metrics
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = v.GetString("metrics.namespace")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Ollama defaults
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.embed_model", "snowflake-arctic-embed2:latest")
	v.SetDefault("ollama.prompt_model", "granite3.3:2b")
	v.SetDefault("ollama.timeout", "70s")
	v.SetDefault("ollama.json_output", true)

	v.SetDefault("similarity.max_concurrency", 0)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "alpaca")
}
