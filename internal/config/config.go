package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// PlaceholderAPIKey is the value shipped in the example .env file.
const PlaceholderAPIKey = "your_gemini_api_key_here"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	LLM    LLMConfig
	Upload UploadConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// responseMargin is kept back from the write timeout for rendering and sending the response.
const responseMargin = 5 * time.Second

// AnalysisTimeout bounds one analysis request so its response is written before
// WriteTimeout closes the connection. Zero means unbounded.
func (s *ServerConfig) AnalysisTimeout() time.Duration {
	if s.WriteTimeout <= 0 {
		return 0
	}
	return s.WriteTimeout - responseMargin
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LLMConfig selects exactly one completion provider, model and credential.
type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
	MaxRetries  int     `mapstructure:"max_retries"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Timeout returns the per-call timeout, defaulting to 60s.
func (l *LLMConfig) Timeout() time.Duration {
	if l.TimeoutSecs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(l.TimeoutSecs) * time.Second
}

// UploadConfig holds policy document upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// providerKeyEnv lists the provider-native API key variables honoured when
// AUTOPOLICY_LLM_API_KEY is not set.
var providerKeyEnv = map[string]string{
	"gemini": "GOOGLE_API_KEY",
	"openai": "OPENAI_API_KEY",
	"claude": "ANTHROPIC_API_KEY",
}

// Load reads configuration from a .env file (if present) and environment variables
// with the AUTOPOLICY_ prefix.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("AUTOPOLICY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// LLM defaults
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.timeout_secs", 60)
	v.SetDefault("llm.max_retries", 1)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 2000)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	v.SetDefault("cors.allowed_origins", "http://localhost:8080,http://127.0.0.1:8080")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "AUTOPOLICY_SERVER_PORT",
		"server.read_timeout":     "AUTOPOLICY_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "AUTOPOLICY_SERVER_WRITE_TIMEOUT",
		"server.environment":      "AUTOPOLICY_SERVER_ENVIRONMENT",
		"log.level":               "AUTOPOLICY_LOG_LEVEL",
		"log.format":              "AUTOPOLICY_LOG_FORMAT",
		"llm.provider":            "AUTOPOLICY_LLM_PROVIDER",
		"llm.api_key":             "AUTOPOLICY_LLM_API_KEY",
		"llm.model":               "AUTOPOLICY_LLM_MODEL",
		"llm.timeout_secs":        "AUTOPOLICY_LLM_TIMEOUT_SECS",
		"llm.max_retries":         "AUTOPOLICY_LLM_MAX_RETRIES",
		"llm.temperature":         "AUTOPOLICY_LLM_TEMPERATURE",
		"llm.max_tokens":          "AUTOPOLICY_LLM_MAX_TOKENS",
		"upload.max_file_size_mb": "AUTOPOLICY_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":    "AUTOPOLICY_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if AUTOPOLICY_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("AUTOPOLICY_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	provider := strings.ToLower(strings.TrimSpace(v.GetString("llm.provider")))
	apiKey := strings.TrimSpace(v.GetString("llm.api_key"))
	if apiKey == "" {
		if env, ok := providerKeyEnv[provider]; ok {
			apiKey = strings.TrimSpace(os.Getenv(env))
		}
	}
	cfg.LLM = LLMConfig{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       v.GetString("llm.model"),
		TimeoutSecs: v.GetInt("llm.timeout_secs"),
		MaxRetries:  v.GetInt("llm.max_retries"),
		Temperature: v.GetFloat64("llm.temperature"),
		MaxTokens:   v.GetInt("llm.max_tokens"),
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}

// Validate reports configuration that makes the service unable to analyze anything.
// A missing API key is fatal at startup.
func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		return errors.New("llm provider is not configured")
	}
	if c.LLM.APIKey == "" {
		env := providerKeyEnv[c.LLM.Provider]
		if env == "" {
			env = "AUTOPOLICY_LLM_API_KEY"
		}
		return fmt.Errorf("llm api key is not configured: set %s or AUTOPOLICY_LLM_API_KEY", env)
	}
	if c.LLM.APIKey == PlaceholderAPIKey {
		return errors.New("llm api key is still the example placeholder")
	}
	if c.Upload.MaxFileSizeMB <= 0 {
		return errors.New("upload.max_file_size_mb must be positive")
	}
	if c.Server.WriteTimeout > 0 && c.Server.AnalysisTimeout() < c.LLM.Timeout() {
		return fmt.Errorf("server.write_timeout %s must exceed llm.timeout_secs (%s) by at least %s",
			c.Server.WriteTimeout, c.LLM.Timeout(), responseMargin)
	}
	return nil
}
