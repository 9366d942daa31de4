// Package config wraps Viper the way the teacher's backend/pkg/config
// does: a mapstructure-tagged struct, explicit defaults, and a single
// LoadConfig entry point. It covers only the driver's and API layer's
// concerns — nothing the core parses out of its own inputs (role file,
// player table) ever flows through here.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the ambient settings for the CLI driver and the optional
// HTTP API surface.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// HTTP API (cmd/teamselect-api)
	Port string `mapstructure:"PORT"`

	// Redis-backed report cache (internal/cache)
	RedisURL      string        `mapstructure:"REDIS_URL"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
	CacheEnabled  bool          `mapstructure:"CACHE_ENABLED"`

	// Default role-file/table paths. Loaded here but not read by
	// cmd/teamselect, whose --roles and --table flags are required.
	DefaultRoleFile string `mapstructure:"DEFAULT_ROLE_FILE"`
	DefaultTable    string `mapstructure:"DEFAULT_TABLE"`
}

// IsDevelopment reports whether Env names a non-production environment.
func (c *Config) IsDevelopment() bool {
	return strings.ToLower(c.Env) != "production"
}

// LoadConfig reads TEAMSELECT_-prefixed environment variables (and an
// optional .env file in the working directory) into a Config, falling back
// to the defaults set below.
func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("TEAMSELECT")
	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("PORT", "8090")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_DB", 3)
	viper.SetDefault("CACHE_TTL", 10*time.Minute)
	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("DEFAULT_ROLE_FILE", "")
	viper.SetDefault("DEFAULT_TABLE", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
