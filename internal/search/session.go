package search

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"facetgrip/internal/domain"
	"facetgrip/internal/eventbus"
	"facetgrip/internal/signal"
)

// Query is an issued request tagged with its sequence number. Only the
// most recent query's outcome is applied.
type Query struct {
	Seq       uint64
	Request   Request
	Signature domain.QuerySignature
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithEventBus publishes search lifecycle events on bus
func WithEventBus(bus eventbus.EventBus) SessionOption {
	return func(s *Session) { s.bus = bus }
}

// WithHitsPerPage sets the page size
func WithHitsPerPage(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.req.HitsPerPage = n
		}
	}
}

// WithSignatureFunc replaces the signature generator
func WithSignatureFunc(fn func() domain.QuerySignature) SessionOption {
	return func(s *Session) { s.newSignature = fn }
}

// Session tracks the current search, its accumulated hits and whether a
// request is in flight. All methods run on the UI loop; only Execute may be
// called from another goroutine.
type Session struct {
	searcher Searcher
	bus      eventbus.EventBus

	req          Request
	seq          uint64
	hits         []domain.Product
	last         Response
	hasResults   bool
	err          error
	newSignature func() domain.QuerySignature

	stalled   *signal.Value[bool]
	signature *signal.Value[domain.QuerySignature]
}

// NewSession creates an idle session over searcher
func NewSession(searcher Searcher, opts ...SessionOption) *Session {
	s := &Session{
		searcher: searcher,
		req: Request{
			Refinements: make(map[string][]string),
			HitsPerPage: DefaultHitsPerPage,
		},
		newSignature: func() domain.QuerySignature {
			return domain.QuerySignature(uuid.NewString())
		},
		stalled:   signal.NewValue(false),
		signature: signal.NewValue(domain.QuerySignature("")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs a query against the searcher. It touches no session state.
func (s *Session) Execute(ctx context.Context, q Query) (Response, error) {
	return s.searcher.Search(ctx, q.Request)
}

// Start issues the first search
func (s *Session) Start() Query {
	return s.restart()
}

// SetQuery changes the search text
func (s *Session) SetQuery(text string) Query {
	s.req.Query = text
	return s.restart()
}

// SetCategory switches to a category, dropping refinements of the previous
// one
func (s *Session) SetCategory(cat domain.Category) Query {
	s.req.Category = cat.Filter()
	s.req.FacetAttributes = cat.FacetAttributes()
	s.req.Refinements = make(map[string][]string)
	return s.restart()
}

// ToggleRefinement adds or removes one facet value
func (s *Session) ToggleRefinement(attr, value string) Query {
	values := s.req.Refinements[attr]
	next := make([]string, 0, len(values)+1)
	found := false
	for _, v := range values {
		if v == value {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, value)
		sort.Strings(next)
	}
	refinements := make(map[string][]string, len(s.req.Refinements))
	for k, v := range s.req.Refinements {
		refinements[k] = v
	}
	if len(next) == 0 {
		delete(refinements, attr)
	} else {
		refinements[attr] = next
	}
	s.req.Refinements = refinements
	return s.restart()
}

// SetSort changes the hit order. A different order is a new search.
func (s *Session) SetSort(by Sort) Query {
	s.req.Sort = by
	return s.restart()
}

// ClearRefinements removes every refinement
func (s *Session) ClearRefinements() Query {
	s.req.Refinements = make(map[string][]string)
	return s.restart()
}

// RefineNext requests the next page of the same search
func (s *Session) RefineNext() Query {
	s.req.Page = s.nextPage()
	return s.issue()
}

func (s *Session) nextPage() int {
	if !s.hasResults {
		return 0
	}
	return s.last.Page + 1
}

func (s *Session) restart() Query {
	s.req.Page = 0
	s.signature.Set(s.newSignature())
	return s.issue()
}

func (s *Session) issue() Query {
	s.seq++
	q := Query{Seq: s.seq, Request: cloneRequest(s.req), Signature: s.signature.Get()}
	s.stalled.Set(true)
	s.publish(eventbus.SearchStartedEvent{Query: q.Request.Query, Page: q.Request.Page, Signature: q.Signature})
	return q
}

// Apply stores the response of q. It reports false and changes nothing
// when a newer query has been issued since.
func (s *Session) Apply(q Query, resp Response) bool {
	if q.Seq != s.seq {
		log.Printf("Session: dropping stale response seq=%d (current %d)", q.Seq, s.seq)
		return false
	}
	if resp.Page == 0 {
		s.hits = append([]domain.Product(nil), resp.Hits...)
	} else {
		s.hits = append(s.hits, resp.Hits...)
	}
	s.last = resp
	s.hasResults = true
	s.err = nil
	s.stalled.Set(false)
	s.publish(eventbus.ResultsUpdatedEvent{Signature: q.Signature, Page: resp.Page, NbHits: resp.NbHits, Loaded: len(s.hits)})
	return true
}

// Fail records the error of q, with the same staleness rule as Apply
func (s *Session) Fail(q Query, err error) bool {
	if q.Seq != s.seq {
		return false
	}
	s.err = fmt.Errorf("search failed: %w", err)
	s.req.Page = s.last.Page
	s.stalled.Set(false)
	s.publish(eventbus.SearchFailedEvent{Signature: q.Signature, Err: err})
	return true
}

func (s *Session) publish(ev eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(ev)
	}
}

// StalledSignal is true while a request is in flight
func (s *Session) StalledSignal() *signal.Value[bool] {
	return s.stalled
}

// SignatureSignal changes on every logically new search
func (s *Session) SignatureSignal() *signal.Value[domain.QuerySignature] {
	return s.signature
}

// Stalled reports whether a request is in flight
func (s *Session) Stalled() bool {
	return s.stalled.Get()
}

// Signature returns the current search signature
func (s *Session) Signature() domain.QuerySignature {
	return s.signature.Get()
}

// Request returns a copy of the current request
func (s *Session) Request() Request {
	return cloneRequest(s.req)
}

// Hits returns every hit loaded so far
func (s *Session) Hits() []domain.Product {
	return s.hits
}

// HasResults reports whether any response has been applied yet
func (s *Session) HasResults() bool {
	return s.hasResults
}

// Err returns the last search error, cleared by the next success
func (s *Session) Err() error {
	return s.err
}

// NbHits returns the total hit count of the search
func (s *Session) NbHits() int {
	return s.last.NbHits
}

// Facets returns the facet values of attr
func (s *Session) Facets(attr string) []domain.FacetValue {
	return s.last.Facets[attr]
}

// IsRefined reports whether value is refined for attr
func (s *Session) IsRefined(attr, value string) bool {
	for _, v := range s.req.Refinements[attr] {
		if v == value {
			return true
		}
	}
	return false
}

// RefinedCount counts refined values across attrs
func (s *Session) RefinedCount(attrs []string) int {
	n := 0
	for _, a := range attrs {
		n += len(s.req.Refinements[a])
	}
	return n
}

// Refinements returns the refined values per attribute, attributes sorted
func (s *Session) Refinements() []Refined {
	attrs := make([]string, 0, len(s.req.Refinements))
	for a := range s.req.Refinements {
		attrs = append(attrs, a)
	}
	sort.Strings(attrs)
	var out []Refined
	for _, a := range attrs {
		for _, v := range s.req.Refinements[a] {
			out = append(out, Refined{Attribute: a, Value: v})
		}
	}
	return out
}

// Refined is one active refinement
type Refined struct {
	Attribute string
	Value     string
}

// TotalRefinements counts every refined value
func (s *Session) TotalRefinements() int {
	n := 0
	for _, v := range s.req.Refinements {
		n += len(v)
	}
	return n
}

// HasFacetValues reports whether any of attrs has values in the results
func (s *Session) HasFacetValues(attrs []string) bool {
	for _, a := range attrs {
		if len(s.last.Facets[a]) > 0 {
			return true
		}
	}
	return false
}

// IsLastPage reports whether every page has been loaded
func (s *Session) IsLastPage() bool {
	if !s.hasResults {
		return false
	}
	return s.last.Page >= s.last.NbPages-1
}

// Progress returns loaded/total hits in [0,1]
func (s *Session) Progress() float64 {
	if s.last.NbHits == 0 {
		return 0
	}
	p := float64(len(s.hits)) / float64(s.last.NbHits)
	if p > 1 {
		p = 1
	}
	return p
}

func cloneRequest(r Request) Request {
	out := r
	out.Refinements = make(map[string][]string, len(r.Refinements))
	for k, v := range r.Refinements {
		out.Refinements[k] = append([]string(nil), v...)
	}
	out.FacetAttributes = append([]string(nil), r.FacetAttributes...)
	return out
}
