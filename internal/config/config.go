// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// SeedFile optionally points to a YAML file that replaces the built-in
	// activity seed. Empty means the nine built-in activities.
	SeedFile string `koanf:"seed_file"`
}

// New creates a Config with defaults applied.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":8000",
		SeedFile: "",
	}
}
