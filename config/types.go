package config

// Config represents the complete configuration structure
type Config struct {
	Nookipedia NookipediaConfig `mapstructure:"nookipedia"`
	Island     IslandConfig     `mapstructure:"island"`
	Filter     FilterConfig     `mapstructure:"filter"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// NookipediaConfig holds Nookipedia API connection details
type NookipediaConfig struct {
	URL     string `mapstructure:"url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"`
}

// IslandConfig describes the player's island, used to pick the right
// hemisphere when reporting critter availability
type IslandConfig struct {
	Hemisphere string `mapstructure:"hemisphere"`
}

// FilterConfig contains filter settings and named presets
type FilterConfig struct {
	DefaultExpression string            `mapstructure:"default"`
	Presets           map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
