// Package config loads CLI configuration from defaults, an optional
// sqlgram.yaml, environment variables, and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Dialect string `koanf:"dialect"`
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDialect = "ansi"
	DefaultOutput  = "table" // table|json|yaml where a command supports it
)
