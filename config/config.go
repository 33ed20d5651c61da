package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"homehub/internal/domain"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
	Devices   []DeviceConfig  `yaml:"devices"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type SchedulerConfig struct {
	Timezone string `yaml:"timezone"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type DeviceConfig struct {
	ID     string `yaml:"id"`
	Kind   string `yaml:"kind"`
	Room   string `yaml:"room"`
	Status string `yaml:"status"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// Default returns the built-in configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Scheduler.Timezone == "" {
		c.Scheduler.Timezone = "Local"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if len(c.Devices) == 0 {
		c.Devices = defaultDevices()
	}
}

// DeviceSeed converts the configured device list into domain devices,
// rejecting duplicate ids and unknown statuses up front.
func (c *Config) DeviceSeed() ([]domain.Device, error) {
	seen := make(map[string]bool, len(c.Devices))
	devices := make([]domain.Device, 0, len(c.Devices))

	for i, d := range c.Devices {
		if d.ID == "" {
			return nil, fmt.Errorf("devices[%d]: id is required", i)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("devices[%d]: duplicate id %q", i, d.ID)
		}
		seen[d.ID] = true

		status := domain.ActionOff
		if d.Status != "" {
			parsed, err := domain.ParseAction(d.Status)
			if err != nil {
				return nil, fmt.Errorf("devices[%d] (%s): %w", i, d.ID, err)
			}
			status = parsed
		}

		devices = append(devices, domain.Device{
			ID:     d.ID,
			Kind:   domain.DeviceKind(d.Kind),
			Room:   d.Room,
			Status: status,
		})
	}

	return devices, nil
}

// defaultDevices is the stock appliance set. Each fixture gets its own id;
// the kind field carries the grouping the ids used to (badly) encode.
func defaultDevices() []DeviceConfig {
	return []DeviceConfig{
		{ID: "light-livingroom", Kind: "light", Room: "Living Room"},
		{ID: "light-bedroom", Kind: "light", Room: "Bedroom"},
		{ID: "light-drawingroom", Kind: "light", Room: "Drawing Room"},
		{ID: "light-guestroom", Kind: "light", Room: "Guest Room"},
		{ID: "light-kitchen", Kind: "light", Room: "Kitchen"},
		{ID: "fan", Kind: "fan", Room: "Bedroom"},
		{ID: "tv", Kind: "tv", Room: "Living Room"},
		{ID: "ac", Kind: "ac", Room: "Bedroom"},
		{ID: "speaker", Kind: "speaker", Room: "Living Room"},
		{ID: "lock", Kind: "lock", Room: "Entrance", Status: "on"},
		{ID: "thermostat", Kind: "thermostat", Room: "Bedroom"},
		{ID: "cleaner", Kind: "vacuum", Room: "Living Room"},
		{ID: "camera", Kind: "camera", Room: "Entrance"},
	}
}
