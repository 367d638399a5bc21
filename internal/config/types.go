package config

import "time"

// Config represents the complete ovmcp configuration.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Toolkit ToolkitConfig `yaml:"toolkit"`
	Query   QueryConfig   `yaml:"query"`
	API     APIConfig     `yaml:"api,omitempty"`
}

// ServiceConfig defines core service settings.
type ServiceConfig struct {
	Name     string `yaml:"name"`
	LogLevel string `yaml:"log_level"`
}

// ToolkitConfig defines how the external toolkit executable is invoked.
type ToolkitConfig struct {
	// Executable is the toolkit entry point, resolved via PATH when bare.
	Executable string        `yaml:"executable"`
	Timeout    time.Duration `yaml:"timeout"`
}

// QueryConfig bounds the ad-hoc result-database query operation.
type QueryConfig struct {
	// DefaultLimit is appended to statements that carry no LIMIT clause.
	DefaultLimit int `yaml:"default_limit"`
	// MaxLimit caps the client-supplied limit parameter.
	MaxLimit int `yaml:"max_limit"`
}

// APIConfig defines the optional HTTP surface.
type APIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Defaults returns a Config with sensible defaults.
func Defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:     "ovmcp",
			LogLevel: "info",
		},
		Toolkit: ToolkitConfig{
			Executable: "ov",
			// Annotation pipeline runs can take minutes; the transport owns
			// cancellation, this is only a backstop against hung processes.
			Timeout: 30 * time.Minute,
		},
		Query: QueryConfig{
			DefaultLimit: 100,
			MaxLimit:     10000,
		},
		API: APIConfig{
			Enabled: false,
			Listen:  "127.0.0.1:8765",
		},
	}
}

// ChecksumManifest is the on-disk format of the .checksums sidecar.
type ChecksumManifest struct {
	Version     int               `yaml:"version"`
	GeneratedAt string            `yaml:"generated_at"`
	Hashes      map[string]string `yaml:"hashes"`
}
