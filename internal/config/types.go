package config

// Config is the root configuration structure
type Config struct {
	// Display is the X display name, empty for $DISPLAY
	Display string `yaml:"display" json:"display"`
	Debug   bool   `yaml:"debug" json:"debug"`
	Quiet   bool   `yaml:"quiet" json:"quiet"`
	Color   bool   `yaml:"color" json:"color"`
	// LogFile receives JSON log lines when set
	LogFile string `yaml:"logFile,omitempty" json:"logFile,omitempty"`
	// LegacyFallback enables the _WIN_* property alternatives
	LegacyFallback bool `yaml:"legacyFallback" json:"legacyFallback"`
	// MaxPropertyLength bounds the bytes fetched per property read
	MaxPropertyLength uint32 `yaml:"maxPropertyLength" json:"maxPropertyLength"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Color:             true,
		LegacyFallback:    true,
		MaxPropertyLength: DefaultMaxPropertyLength,
	}
}
