package config

import (
	"fmt"
	"strings"

	"github.com/mbroemme/fbctrl/internal/property"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.MaxPropertyLength == 0 {
		return fmt.Errorf("maxPropertyLength must be positive")
	}
	if c.MaxPropertyLength%property.WordSize != 0 {
		return fmt.Errorf("maxPropertyLength %d is not a multiple of %d", c.MaxPropertyLength, property.WordSize)
	}

	if strings.ContainsAny(c.Display, " \t\n") {
		return fmt.Errorf("invalid display name: %q", c.Display)
	}

	if c.LogFile != "" && strings.HasSuffix(c.LogFile, "/") {
		return fmt.Errorf("logFile must name a file, got directory %s", c.LogFile)
	}

	return nil
}
