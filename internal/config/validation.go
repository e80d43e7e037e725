package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func validate(c *Config) error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.InputPath == c.OutputPath {
		return fmt.Errorf("input and output must be different files")
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	return nil
}
