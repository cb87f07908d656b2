// Package config provides YAML-based application configuration with
// the usual search-path fallbacks.
package config

// Config holds the playform application settings.
type Config struct {
	// Storage configures the local catalog store.
	Storage StorageConfig `yaml:"storage"`

	// Canvas configures the studio drawing surface.
	Canvas CanvasConfig `yaml:"canvas"`

	// SSH configures the remote serving endpoint.
	SSH SSHConfig `yaml:"ssh"`
}

// StorageConfig locates the catalog database.
type StorageConfig struct {
	// Path to the sqlite file; a leading ~ expands to the home dir.
	Path string `yaml:"path"`

	// Seed controls one-time sample-data seeding on startup.
	Seed bool `yaml:"seed"`
}

// CanvasConfig sizes and paces the game surface.
type CanvasConfig struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	TickRate int   `yaml:"tick_rate"` // frame callbacks per second
	RandSeed int64 `yaml:"rand_seed"` // 0 means time-derived
}

// SSHConfig configures the wish server.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes"`
}
