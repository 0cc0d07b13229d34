package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"port" default:"8080"`
	GinMode   string `mapstructure:"gin_mode" default:"release"`
	LogLevel  string `mapstructure:"log_level" default:"info"`
	GitHubURL string `mapstructure:"github_api_url"`
	Token     string `mapstructure:"github_token"`
}

var keys = []string{"port", "gin_mode", "log_level", "github_api_url", "github_token"}

// Load reads configuration from the environment (and .env, if present) on
// top of the struct defaults.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom is Load with a caller-supplied viper instance, so flags can be
// bound before reading.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("binding %s: %w", k, err)
		}
	}

	// Unset keys are skipped, leaving the struct defaults in place.
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test (got %q)", c.GinMode)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
