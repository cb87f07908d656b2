package config

// defaultYAML is the embedded fallback configuration.
var defaultYAML = []byte(`
storage:
  path: ~/.playform/catalog.db
  seed: true

canvas:
  width: 80
  height: 24
  tick_rate: 30
  rand_seed: 0

ssh:
  address: ":23235"
  host_key_path: ""
  idle_minutes: 30
`)

// Default returns the hardcoded configuration used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Path: "~/.playform/catalog.db",
			Seed: true,
		},
		Canvas: CanvasConfig{
			Width:    80,
			Height:   24,
			TickRate: 30,
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleMinutes: 30,
		},
	}
}
