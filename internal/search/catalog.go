// Package search is the result source behind the UI: an in-memory product
// catalog and the session that tracks the current search.
package search

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"facetgrip/internal/domain"
)

//go:embed sample_catalog.toml
var sampleCatalog []byte

// ErrUnknownCategory is returned for a category no product belongs to
var ErrUnknownCategory = errors.New("unknown category")

// DefaultHitsPerPage is used when a request does not set a page size
const DefaultHitsPerPage = 8

// Sort orders hits
type Sort string

const (
	SortRelevance Sort = ""
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortRating    Sort = "rating_desc"
)

// Sorts lists every sort in display order
var Sorts = []Sort{SortRelevance, SortPriceAsc, SortPriceDesc, SortRating}

// Label returns the sort's display name
func (s Sort) Label() string {
	switch s {
	case SortPriceAsc:
		return "Price ↑"
	case SortPriceDesc:
		return "Price ↓"
	case SortRating:
		return "Rating"
	default:
		return "Relevance"
	}
}

// Request describes one page of one search
type Request struct {
	Query           string
	Category        string
	Sort            Sort
	Refinements     map[string][]string
	FacetAttributes []string
	Page            int
	HitsPerPage     int
}

// Response is one page of results with facet counts for the whole search
type Response struct {
	Hits        []domain.Product
	NbHits      int
	Page        int
	NbPages     int
	HitsPerPage int
	Facets      map[string][]domain.FacetValue
}

// Searcher runs requests. Implementations must be safe to call from a
// goroutine other than the UI loop.
type Searcher interface {
	Search(ctx context.Context, req Request) (Response, error)
}

// Catalog is an immutable product set
type Catalog struct {
	Products []domain.Product `toml:"products"`

	latency time.Duration
}

// ParseCatalog decodes a TOML catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// LoadCatalog reads a TOML catalog from disk
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// SampleCatalog returns the built-in demo catalog
func SampleCatalog() *Catalog {
	c, err := ParseCatalog(sampleCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// SampleCatalogTOML returns the raw built-in catalog file
func SampleCatalogTOML() []byte {
	return append([]byte(nil), sampleCatalog...)
}

// WithLatency returns a copy of the catalog that delays every search
func (c *Catalog) WithLatency(d time.Duration) *Catalog {
	cp := *c
	cp.latency = d
	return &cp
}

// Categories returns the distinct product categories, sorted
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range c.Products {
		if !seen[p.Category] {
			seen[p.Category] = true
			names = append(names, p.Category)
		}
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) hasCategory(name string) bool {
	for _, p := range c.Products {
		if p.Category == name {
			return true
		}
	}
	return false
}

// Search filters, pages and facets the catalog
func (c *Catalog) Search(ctx context.Context, req Request) (Response, error) {
	if c.latency > 0 {
		select {
		case <-ctx.Done():
			return Response{}, ctx.Err()
		case <-time.After(c.latency):
		}
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if req.Category != "" && !c.hasCategory(req.Category) {
		return Response{}, fmt.Errorf("%q: %w", req.Category, ErrUnknownCategory)
	}

	perPage := req.HitsPerPage
	if perPage <= 0 {
		perPage = DefaultHitsPerPage
	}

	base := make([]domain.Product, 0, len(c.Products))
	query := strings.ToLower(strings.TrimSpace(req.Query))
	for _, p := range c.Products {
		if req.Category != "" && p.Category != req.Category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		base = append(base, p)
	}

	var matched []domain.Product
	for _, p := range base {
		if matchesRefinements(p, req.Refinements, "") {
			matched = append(matched, p)
		}
	}
	sortHits(matched, req.Sort)

	resp := Response{
		NbHits:      len(matched),
		Page:        req.Page,
		HitsPerPage: perPage,
		NbPages:     (len(matched) + perPage - 1) / perPage,
		Facets:      make(map[string][]domain.FacetValue, len(req.FacetAttributes)),
	}
	start := req.Page * perPage
	if start < len(matched) {
		end := start + perPage
		if end > len(matched) {
			end = len(matched)
		}
		resp.Hits = append([]domain.Product(nil), matched[start:end]...)
	}

	for _, attr := range req.FacetAttributes {
		resp.Facets[attr] = facetValues(base, req.Refinements, attr)
	}
	return resp, nil
}

// matchesRefinements is OR within an attribute and AND across attributes.
// skip leaves one attribute out, for disjunctive facet counts.
func matchesRefinements(p domain.Product, refinements map[string][]string, skip string) bool {
	for attr, values := range refinements {
		if attr == skip || len(values) == 0 {
			continue
		}
		if !anyValue(p.AttributeValues(attr), values) {
			return false
		}
	}
	return true
}

func anyValue(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func facetValues(products []domain.Product, refinements map[string][]string, attr string) []domain.FacetValue {
	counts := make(map[string]int)
	for _, p := range products {
		if !matchesRefinements(p, refinements, attr) {
			continue
		}
		for _, v := range p.AttributeValues(attr) {
			counts[v]++
		}
	}
	refined := make(map[string]bool)
	for _, v := range refinements[attr] {
		refined[v] = true
		if _, ok := counts[v]; !ok {
			counts[v] = 0
		}
	}

	values := make([]domain.FacetValue, 0, len(counts))
	for v, n := range counts {
		values = append(values, domain.FacetValue{Value: v, Count: n, IsRefined: refined[v]})
	}
	sort.Slice(values, func(i, j int) bool {
		if values[i].Count != values[j].Count {
			return values[i].Count > values[j].Count
		}
		return values[i].Value < values[j].Value
	})
	return values
}

func sortHits(hits []domain.Product, by Sort) {
	switch by {
	case SortPriceAsc:
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].Price < hits[j].Price })
	case SortPriceDesc:
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].Price > hits[j].Price })
	case SortRating:
		sort.SliceStable(hits, func(i, j int) bool {
			if hits[i].Rating != hits[j].Rating {
				return hits[i].Rating > hits[j].Rating
			}
			return hits[i].Reviews > hits[j].Reviews
		})
	}
}
