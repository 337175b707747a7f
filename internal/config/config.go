package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"modwall/internal/domain"
	"modwall/internal/eventbus"
)

// DefaultTimeoutSeconds bounds a single delivery attempt
const DefaultTimeoutSeconds = 10

// Config represents the application configuration
type Config struct {
	Version     int            `toml:"version"`
	Brand       string         `toml:"brand"`
	CatalogPath string         `toml:"catalog_path"` // empty means the built-in catalog
	LogFile     string         `toml:"log_file"`
	Delivery    DeliveryConfig `toml:"delivery"`
	UISettings  UISettings     `toml:"ui"`
}

// DeliveryConfig selects where finished configurations are sent
type DeliveryConfig struct {
	Endpoint       string `toml:"endpoint"` // HTTP endpoint; empty means use the outbox
	TimeoutSeconds int    `toml:"timeout_seconds"`
	OutboxPath     string `toml:"outbox_path"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	WidthUnit  domain.Unit `toml:"width_unit"`
	HeightUnit domain.Unit `toml:"height_unit"`
	ShowStock  bool        `toml:"show_stock"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user's config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "modwall", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default location, falling back to defaults
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded("")
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	cs.publishLoaded(path)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) publishLoaded(path string) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
}

func (c *Config) normalize() {
	if c.UISettings.WidthUnit != domain.UnitMillimetre {
		c.UISettings.WidthUnit = domain.UnitMetre
	}
	if c.UISettings.HeightUnit != domain.UnitMetre {
		c.UISettings.HeightUnit = domain.UnitMillimetre
	}
	if c.Delivery.TimeoutSeconds <= 0 {
		c.Delivery.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Brand:   "Modwall",
		LogFile: "modwall.log",
		Delivery: DeliveryConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
			OutboxPath:     "modwall-outbox.db",
		},
		UISettings: UISettings{
			WidthUnit:  domain.UnitMetre,
			HeightUnit: domain.UnitMillimetre,
			ShowStock:  true,
		},
	}
}
