package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facetgrip/internal/domain"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.UI.WideThreshold)
	assert.Equal(t, 2, cfg.Search.AutoLoadPages)

	all, ok := cfg.Category(domain.AllCategories)
	require.True(t, ok)
	assert.Equal(t, "", all.Filter())
}

func TestDefaultCategoriesEndWithRatingAndPrice(t *testing.T) {
	for _, cat := range DefaultCategories() {
		n := len(cat.Refinements)
		require.GreaterOrEqual(t, n, 4, cat.Name)
		assert.Equal(t, domain.RefinementRating, cat.Refinements[n-2].Type, cat.Name)
		assert.Equal(t, domain.RefinementPrice, cat.Refinements[n-1].Type, cat.Name)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.UI.WideThreshold = 120
	cfg.Search.Catalog = "/tmp/catalog.toml"
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := NewConfigServiceAt(filepath.Join(t.TempDir(), "absent.toml"))
	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMissing(t *testing.T) {
	cs := NewConfigService()
	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[ui]
wide_threshold = 80

[[categories]]
name = "Audio"

[[categories.refinements]]
type = "list"
header = "Brand"
attributes = ["brand"]
expanded = true
`))
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.UI.WideThreshold)
	assert.Equal(t, 16, cfg.UI.FrameMS)
	require.Len(t, cfg.Categories, 1)
	assert.Equal(t, domain.PanelID("list:brand"), domain.PanelIDFor(cfg.Categories[0].Refinements[0]))
}

func TestParseWithoutCategoriesUsesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("[search]\nhits_per_page = 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.HitsPerPage)
	assert.Equal(t, DefaultCategories(), cfg.Categories)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("[ui\nwide_threshold = "))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"threshold":      func(c *Config) { c.UI.WideThreshold = 0 },
		"frame":          func(c *Config) { c.UI.FrameMS = 0 },
		"hits per page":  func(c *Config) { c.Search.HitsPerPage = 0 },
		"auto load":      func(c *Config) { c.Search.AutoLoadPages = -1 },
		"no categories":  func(c *Config) { c.Categories = nil },
		"unnamed":        func(c *Config) { c.Categories[0].Name = "" },
		"duplicate name": func(c *Config) { c.Categories[1].Name = c.Categories[0].Name },
		"no attributes":  func(c *Config) { c.Categories[0].Refinements[0].Attributes = nil },
		"unknown type":   func(c *Config) { c.Categories[0].Refinements[0].Type = "slider" },
		"duplicate panel": func(c *Config) {
			c.Categories[0].Refinements = append(c.Categories[0].Refinements, c.Categories[0].Refinements[0])
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSaveToPathWritesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, NewConfigService().SaveToPath(DefaultConfig(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[categories.refinements]]")
	assert.Contains(t, string(data), "wide_threshold = 100")
}
