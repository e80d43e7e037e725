package config

// Default constants for application configuration
const (
	DefaultLogLevel   = "info"
	DefaultJSONLog    = false
	DefaultInputPath  = "input.json"
	DefaultOutputPath = "output.json"

	// EnvPrefix namespaces environment overrides, e.g. SALESURL_LOG_LEVEL
	EnvPrefix = "SALESURL"
)
