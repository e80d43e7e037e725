package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// Quiet suppresses the stdout copy of the document; output.json is still written
	Quiet bool

	// Files are fixed; they are fields so tests can point them at a temp dir
	InputPath  string
	OutputPath string
}

// Load builds a Config by combining defaults, environment variables, and CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("json_log", DefaultJSONLog)

	cfg := &Config{
		LogLevel:   strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		JSONLog:    v.GetBool("json_log"),
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}

	// Read CLI flags if provided
	if cmd != nil {
		if f := cmd.Flags().Lookup("json-log"); f != nil {
			if f.Value.String() == "true" {
				cfg.JSONLog = true
			}
		}
		if f := cmd.Flags().Lookup("quiet"); f != nil {
			if f.Value.String() == "true" {
				cfg.Quiet = true
			}
		}
		if f := cmd.Flags().Lookup("verbose"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "debug"
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
