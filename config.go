package tokage

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultBaseURL = "https://api.jikan.moe/v3"

// Config holds client configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	UserAgent  string
	Debug      bool
	Logging    LoggingConfig
}

// LoggingConfig controls the optional file logger.
type LoggingConfig struct {
	Level      string
	Format     string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// DefaultConfig returns the stock configuration pointing at the public
// Jikan API.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    defaultBaseURL,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		UserAgent:  "tokage/1.0",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads configuration from an optional config file and
// TOKAGE_* environment variables (e.g. TOKAGE_API_BASE_URL). Unset keys
// fall back to the defaults.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", defaultBaseURL)
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.max_retries", 3)
	v.SetDefault("api.user_agent", "tokage/1.0")
	v.SetDefault("api.debug", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 28)

	v.SetEnvPrefix("TOKAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{
		BaseURL:    v.GetString("api.base_url"),
		Timeout:    v.GetDuration("api.timeout"),
		MaxRetries: v.GetInt("api.max_retries"),
		UserAgent:  v.GetString("api.user_agent"),
		Debug:      v.GetBool("api.debug"),
		Logging: LoggingConfig{
			Level:      v.GetString("logging.level"),
			Format:     v.GetString("logging.format"),
			File:       v.GetString("logging.file"),
			MaxSize:    v.GetInt("logging.max_size"),
			MaxBackups: v.GetInt("logging.max_backups"),
			MaxAge:     v.GetInt("logging.max_age"),
			Compress:   v.GetBool("logging.compress"),
		},
	}, nil
}
