package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"adminsearch/internal/domain"
	"adminsearch/internal/eventbus"
	"adminsearch/internal/provider"
	"adminsearch/internal/search"
)

// Input widths by search bar size
var sizeWidths = map[string]int{
	"small":  30,
	"middle": 50,
	"large":  70,
}

// Config represents the application configuration
type Config struct {
	API      APIConfig       `toml:"api"`
	Search   SearchConfig    `toml:"search"`
	Local    LocalConfig     `toml:"local"`
	Log      LogConfig       `toml:"log"`
	Sections []SectionConfig `toml:"sections"`
}

// APIConfig configures the remote catalog API
type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	TimeoutMS int    `toml:"timeout_ms"`
	PageSize  int    `toml:"page_size"`
}

// SearchConfig configures the search bar
type SearchConfig struct {
	DebounceMS          int    `toml:"debounce_ms"`
	Placeholder         string `toml:"placeholder"`
	Size                string `toml:"size"`     // small, middle or large
	Provider            string `toml:"provider"` // auto, remote or local
	TransliterateHangul bool   `toml:"transliterate_hangul"`
}

// LocalConfig configures the local provider
type LocalConfig struct {
	LatencyMS int    `toml:"latency_ms"`
	Database  string `toml:"database,omitempty"` // empty keeps the catalog in memory
}

// LogConfig configures logging
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// SectionConfig declares one search section
type SectionConfig struct {
	Key      string `toml:"key"`
	Title    string `toml:"title"`
	Color    string `toml:"color,omitempty"`
	ItemType string `toml:"item_type"`
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

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "adminsearch", "config.toml")
}

// NewConfigService creates a config service for path. An empty path uses
// DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the
// defaults, which are written back so users have something to edit.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Sections: len(cfg.Sections),
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

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   provider.DefaultBaseURL,
			TimeoutMS: int(provider.DefaultTimeout / time.Millisecond),
			PageSize:  provider.DefaultPageSize,
		},
		Search: SearchConfig{
			DebounceMS:          int(search.DefaultDebounce / time.Millisecond),
			Placeholder:         "Search products and categories...",
			Size:                "large",
			Provider:            provider.ModeAuto,
			TransliterateHangul: true,
		},
		Local: LocalConfig{
			LatencyMS: int(provider.DefaultLatency / time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
		Sections: []SectionConfig{
			{Key: domain.SectionProducts, Title: "Products", Color: "33", ItemType: domain.TypeProduct},
			{Key: domain.SectionCategories, Title: "Categories", Color: "35", ItemType: domain.TypeCategory},
		},
	}
}

// Validate checks every value. An empty section list is allowed and leaves
// the search bar in its misconfigured state.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url: unsupported scheme %q", u.Scheme)
	}
	if c.API.TimeoutMS <= 0 {
		return fmt.Errorf("api.timeout_ms must be positive, got %d", c.API.TimeoutMS)
	}
	if c.API.PageSize <= 0 {
		return fmt.Errorf("api.page_size must be positive, got %d", c.API.PageSize)
	}
	if c.Search.DebounceMS < 0 {
		return fmt.Errorf("search.debounce_ms must not be negative, got %d", c.Search.DebounceMS)
	}
	if _, ok := sizeWidths[c.Search.Size]; !ok {
		return fmt.Errorf("search.size must be small, middle or large, got %q", c.Search.Size)
	}
	if !slices.Contains(provider.Modes(), c.Search.Provider) {
		return fmt.Errorf("search.provider must be one of %v, got %q", provider.Modes(), c.Search.Provider)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.Key == "" {
			return fmt.Errorf("sections[%d]: key is required", i)
		}
		if seen[s.Key] {
			return fmt.Errorf("sections[%d]: duplicate key %q", i, s.Key)
		}
		seen[s.Key] = true
		if s.ItemType == "" {
			return fmt.Errorf("sections[%d] %q: item_type is required", i, s.Key)
		}
	}
	return nil
}

// Timeout returns the API request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutMS) * time.Millisecond
}

// Debounce returns the search debounce interval
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// Latency returns the simulated local provider latency. Zero disables it.
func (c *Config) Latency() time.Duration {
	if c.Local.LatencyMS <= 0 {
		return -1
	}
	return time.Duration(c.Local.LatencyMS) * time.Millisecond
}

// InputWidth returns the text input width for the configured size
func (c *Config) InputWidth() int {
	if w, ok := sizeWidths[c.Search.Size]; ok {
		return w
	}
	return sizeWidths["large"]
}

// SearchSections builds the search sections, all routed to onSelect
func (c *Config) SearchSections(onSelect search.SelectFunc) []search.Section {
	sections := make([]search.Section, 0, len(c.Sections))
	for _, s := range c.Sections {
		title := s.Title
		if title == "" {
			title = s.Key
		}
		sections = append(sections, search.Section{
			Key:      s.Key,
			Title:    title,
			Color:    s.Color,
			ItemType: s.ItemType,
			OnSelect: onSelect,
		})
	}
	return sections
}
