package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"noticeboard/internal/eventbus"
)

// FileName is the config file name inside the user config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version" validate:"gte=1"`
	Category   string           `toml:"category"`  // empty shows all categories
	DataFile   string           `toml:"data_file"` // empty uses the built-in dataset
	Pagination PaginationConfig `toml:"pagination"`
	Toast      ToastConfig      `toml:"toast"`
	Log        LogConfig        `toml:"log"`
}

// PaginationConfig controls how notices are revealed
type PaginationConfig struct {
	PageSize            int     `toml:"page_size" validate:"gte=1,lte=500"`
	LoadDelay           string  `toml:"load_delay" validate:"duration"`
	EndReachedThreshold float64 `toml:"end_reached_threshold" validate:"gte=0,lte=1"`
	CancelOnQueryChange bool    `toml:"cancel_on_query_change"`
}

// ToastConfig controls the confirmation shown after a page loads
type ToastConfig struct {
	Enabled  bool   `toml:"enabled"`
	Duration string `toml:"duration" validate:"duration"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	File   string `toml:"file" validate:"required"`
	Pretty bool   `toml:"pretty"` // console lines instead of JSON
}

// Delay returns the parsed load delay
func (p PaginationConfig) Delay() time.Duration {
	d, _ := time.ParseDuration(p.LoadDelay)
	return d
}

// Length returns the parsed toast duration
func (t ToastConfig) Length() time.Duration {
	d, _ := time.ParseDuration(t.Duration)
	return d
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service using the user config directory
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
		filePath: filepath.Join(configDir, "noticeboard", FileName),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Category: cfg.Category,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := Validate(config); err != nil {
		return err
	}

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

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())
		return err == nil && d >= 0
	})
	return v
}

// Validate checks the configuration values
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Pagination: PaginationConfig{
			PageSize:            10,
			LoadDelay:           "1s",
			EndReachedThreshold: 0.5,
			CancelOnQueryChange: true,
		},
		Toast: ToastConfig{
			Enabled:  true,
			Duration: "2s",
		},
		Log: LogConfig{
			Level: "info",
			File:  "noticeboard.log",
		},
	}
}
