package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"facetgrip/internal/domain"
)

// ErrInvalid is returned by Validate for unusable settings
var ErrInvalid = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	UI         UISettings        `toml:"ui"`
	Search     SearchSettings    `toml:"search"`
	Categories []domain.Category `toml:"categories"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	WideThreshold int `toml:"wide_threshold"` // columns
	AnimationMS   int `toml:"animation_ms"`
	FrameMS       int `toml:"frame_ms"`
	SidebarWidth  int `toml:"sidebar_width"`
}

// SearchSettings configures the result source
type SearchSettings struct {
	HitsPerPage   int    `toml:"hits_per_page"`
	AutoLoadPages int    `toml:"auto_load_pages"` // pages loaded by scrolling before load more is needed
	LatencyMS     int    `toml:"latency_ms"`
	Catalog       string `toml:"catalog,omitempty"` // empty uses the built-in sample
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
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// DefaultPath returns the per-user config file location
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
	return filepath.Join(configDir, "facetgrip", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file
// does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
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

// Parse decodes TOML over the defaults and validates the result. Missing
// settings keep their default; a file with categories replaces the default
// category list.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Categories = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings and refinement definitions
func (c *Config) Validate() error {
	if c.UI.WideThreshold <= 0 {
		return fmt.Errorf("%w: ui.wide_threshold must be positive", ErrInvalid)
	}
	if c.UI.AnimationMS < 0 || c.UI.FrameMS <= 0 {
		return fmt.Errorf("%w: ui.animation_ms must be >= 0 and ui.frame_ms > 0", ErrInvalid)
	}
	if c.Search.HitsPerPage <= 0 {
		return fmt.Errorf("%w: search.hits_per_page must be positive", ErrInvalid)
	}
	if c.Search.AutoLoadPages < 0 || c.Search.LatencyMS < 0 {
		return fmt.Errorf("%w: search.auto_load_pages and search.latency_ms must be >= 0", ErrInvalid)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalid)
	}
	names := make(map[string]bool)
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("%w: category without a name", ErrInvalid)
		}
		if names[cat.Name] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalid, cat.Name)
		}
		names[cat.Name] = true

		ids := make(map[domain.PanelID]bool)
		for _, r := range cat.Refinements {
			if len(r.Attributes) == 0 {
				return fmt.Errorf("%w: %s refinement %q has no attributes", ErrInvalid, cat.Name, r.Header)
			}
			if !knownType(r.Type) {
				return fmt.Errorf("%w: %s refinement %q has unknown type %q", ErrInvalid, cat.Name, r.Header, r.Type)
			}
			id := domain.PanelIDFor(r)
			if ids[id] {
				return fmt.Errorf("%w: %s has two panels with id %s", ErrInvalid, cat.Name, id)
			}
			ids[id] = true
		}
	}
	return nil
}

func knownType(t domain.RefinementType) bool {
	switch t {
	case domain.RefinementList, domain.RefinementHierarchical, domain.RefinementColor,
		domain.RefinementSize, domain.RefinementRating, domain.RefinementPrice:
		return true
	}
	return false
}

// Category returns the category called name
func (c *Config) Category(name string) (domain.Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return domain.Category{}, false
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			WideThreshold: 100,
			AnimationMS:   150,
			FrameMS:       16,
			SidebarWidth:  32,
		},
		Search: SearchSettings{
			HitsPerPage:   6,
			AutoLoadPages: 2,
		},
		Categories: DefaultCategories(),
	}
}

// DefaultCategories returns the refinement sets for the sample catalog
func DefaultCategories() []domain.Category {
	shared := func(extra ...domain.Refinement) []domain.Refinement {
		rs := []domain.Refinement{
			{Type: domain.RefinementList, Header: "Brand", Attributes: []string{"brand"}, Expanded: true, MaxHeight: 5},
			{Type: domain.RefinementColor, Header: "Color", Attributes: []string{"color"}},
		}
		rs = append(rs, extra...)
		return append(rs,
			domain.Refinement{Type: domain.RefinementRating, Header: "Rating", Attributes: []string{"rating"}},
			domain.Refinement{Type: domain.RefinementPrice, Header: "Price", Attributes: []string{"price_range"}},
		)
	}
	return []domain.Category{
		{
			Name: domain.AllCategories,
			Refinements: append([]domain.Refinement{
				{Type: domain.RefinementHierarchical, Header: "Category", Attributes: []string{"category"}, Expanded: true},
			}, shared()...),
		},
		{Name: "Appliances", Refinements: shared(
			domain.Refinement{Type: domain.RefinementList, Header: "Type", Attributes: []string{"type"}, Expanded: true},
		)},
		{Name: "Audio", Refinements: shared(
			domain.Refinement{Type: domain.RefinementList, Header: "Type", Attributes: []string{"type"}, Expanded: true},
		)},
		{Name: "Laptops", Refinements: shared(
			domain.Refinement{Type: domain.RefinementSize, Header: "Screen size", Attributes: []string{"screen_size"}, Footer: "Sizes are diagonal"},
		)},
	}
}
