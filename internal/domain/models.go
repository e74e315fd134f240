package domain

import (
	"math"
	"strconv"
	"strings"
)

// PanelID identifies one refinement panel. It is stable across re-renders of
// the same configuration.
type PanelID string

// RefinementType is the widget kind a panel hosts
type RefinementType string

const (
	RefinementList         RefinementType = "list"
	RefinementHierarchical RefinementType = "hierarchical"
	RefinementColor        RefinementType = "color"
	RefinementSize         RefinementType = "size"
	RefinementRating       RefinementType = "rating"
	RefinementPrice        RefinementType = "price"
)

// Refinement is an authored refinement definition from the config file
type Refinement struct {
	Type       RefinementType `toml:"type"`
	Header     string         `toml:"header"`
	Attributes []string       `toml:"attributes"`
	Expanded   bool           `toml:"expanded"`
	MaxHeight  int            `toml:"max_height,omitempty"` // rows; 0 means unbounded
	Footer     string         `toml:"footer,omitempty"`
}

// PanelIDFor derives the panel id of a refinement
func PanelIDFor(r Refinement) PanelID {
	parts := append([]string{string(r.Type)}, r.Attributes...)
	return PanelID(strings.Join(parts, ":"))
}

// PanelConfig is one configured panel as seen by the panel store
type PanelConfig struct {
	ID         PanelID
	Type       RefinementType
	Header     string
	Attributes []string
	Expanded   bool // authored default
	MaxHeight  int
	Footer     string
}

// PanelConfigs converts authored refinements into panel configs
func PanelConfigs(refinements []Refinement) []PanelConfig {
	configs := make([]PanelConfig, 0, len(refinements))
	for _, r := range refinements {
		configs = append(configs, PanelConfig{
			ID:         PanelIDFor(r),
			Type:       r.Type,
			Header:     r.Header,
			Attributes: append([]string(nil), r.Attributes...),
			Expanded:   r.Expanded,
			MaxHeight:  r.MaxHeight,
			Footer:     r.Footer,
		})
	}
	return configs
}

// AllCategories is the category name that does not filter products
const AllCategories = "All"

// Category groups a refinement set under a browsable name
type Category struct {
	Name        string       `toml:"name"`
	Refinements []Refinement `toml:"refinements"`
}

// Filter returns the product category this category searches, empty for all
func (c Category) Filter() string {
	if c.Name == AllCategories {
		return ""
	}
	return c.Name
}

// FacetAttributes returns every attribute its refinements need counts for
func (c Category) FacetAttributes() []string {
	seen := make(map[string]bool)
	var attrs []string
	for _, r := range c.Refinements {
		for _, a := range r.Attributes {
			if !seen[a] {
				seen[a] = true
				attrs = append(attrs, a)
			}
		}
	}
	return attrs
}

// Product is one catalog record
type Product struct {
	ObjectID   string              `toml:"id"`
	Name       string              `toml:"name"`
	Category   string              `toml:"category"`
	Price      float64             `toml:"price"`
	Rating     float64             `toml:"rating"`
	Reviews    int                 `toml:"reviews"`
	Attributes map[string][]string `toml:"attributes"`
}

// AttributeValues returns the facet values of an attribute, including the
// built-in "category" and "rating" attributes. Ratings facet on whole stars.
func (p Product) AttributeValues(attr string) []string {
	switch attr {
	case "category":
		return []string{p.Category}
	case "rating":
		if _, ok := p.Attributes[attr]; !ok {
			return []string{strconv.Itoa(int(math.Floor(p.Rating)))}
		}
	}
	return p.Attributes[attr]
}

// QuerySignature is an opaque token that changes whenever the logical search
// changes. Paging does not change it.
type QuerySignature string

// FacetValue is a single refinable value with its hit count
type FacetValue struct {
	Value     string
	Count     int
	IsRefined bool
}
