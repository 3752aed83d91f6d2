package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file, with environment overrides
// under the BLATHERS_ prefix (e.g. BLATHERS_NOOKIPEDIA_API_KEY).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Environment overrides
	v.SetEnvPrefix("BLATHERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".blathers"))
		}

		// Check /etc
		v.AddConfigPath("/etc/blathers/")
	}

	// Read config file; a missing file is fine when the key comes from
	// the environment.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Nookipedia defaults
	v.SetDefault("nookipedia.url", "https://api.nookipedia.com/")
	v.SetDefault("nookipedia.timeout", 30)

	// Island defaults
	v.SetDefault("island.hemisphere", "north")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Nookipedia.URL == "" {
		return fmt.Errorf("nookipedia.url is required")
	}

	if cfg.Nookipedia.APIKey == "" || cfg.Nookipedia.APIKey == "your-api-key-here" {
		return fmt.Errorf("nookipedia.api_key must be set to a valid API key")
	}

	if cfg.Nookipedia.Timeout <= 0 {
		return fmt.Errorf("nookipedia.timeout must be positive")
	}

	hemisphere := strings.ToLower(cfg.Island.Hemisphere)
	if hemisphere != "north" && hemisphere != "south" {
		return fmt.Errorf("invalid island.hemisphere: %s (must be 'north' or 'south')", cfg.Island.Hemisphere)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
