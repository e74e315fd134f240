package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facetgrip/internal/domain"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	n := 0
	return NewSession(testCatalog(t),
		WithHitsPerPage(1),
		WithSignatureFunc(func() domain.QuerySignature {
			n++
			return domain.QuerySignature(fmt.Sprintf("sig-%d", n))
		}))
}

func run(t *testing.T, s *Session, q Query) {
	t.Helper()
	resp, err := s.Execute(context.Background(), q)
	require.NoError(t, err)
	require.True(t, s.Apply(q, resp))
}

func TestStartMintsSignatureAndStalls(t *testing.T) {
	s := newTestSession(t)
	q := s.Start()

	assert.Equal(t, domain.QuerySignature("sig-1"), q.Signature)
	assert.True(t, s.Stalled())
	assert.False(t, s.HasResults())

	run(t, s, q)
	assert.False(t, s.Stalled())
	assert.True(t, s.HasResults())
	assert.Len(t, s.Hits(), 1)
	assert.Equal(t, 4, s.NbHits())
}

func TestRefineNextKeepsSignatureAndAppends(t *testing.T) {
	s := newTestSession(t)
	run(t, s, s.Start())

	var sigs []domain.QuerySignature
	s.SignatureSignal().Subscribe(func(sig domain.QuerySignature) { sigs = append(sigs, sig) })

	q := s.RefineNext()
	assert.Equal(t, 1, q.Request.Page)
	assert.Equal(t, domain.QuerySignature("sig-1"), q.Signature)
	run(t, s, q)

	assert.Len(t, s.Hits(), 2)
	assert.Empty(t, sigs, "paging must not change the signature")
	assert.InDelta(t, 0.5, s.Progress(), 1e-9)
	assert.False(t, s.IsLastPage())
}

func TestLogicalChangesMintNewSignatures(t *testing.T) {
	s := newTestSession(t)
	run(t, s, s.Start())

	q := s.SetQuery("sony")
	assert.Equal(t, domain.QuerySignature("sig-2"), q.Signature)
	assert.Equal(t, 0, q.Request.Page)

	q = s.ToggleRefinement("brand", "Sony")
	assert.Equal(t, domain.QuerySignature("sig-3"), q.Signature)

	q = s.SetCategory(domain.Category{Name: "Audio", Refinements: []domain.Refinement{
		{Type: domain.RefinementList, Attributes: []string{"brand"}},
	}})
	assert.Equal(t, domain.QuerySignature("sig-4"), q.Signature)
	assert.Equal(t, "Audio", q.Request.Category)
	assert.Equal(t, []string{"brand"}, q.Request.FacetAttributes)
	assert.Empty(t, q.Request.Refinements, "category change drops refinements")

	q = s.ClearRefinements()
	assert.Equal(t, domain.QuerySignature("sig-5"), q.Signature)
}

func TestStaleResponsesAreDropped(t *testing.T) {
	s := newTestSession(t)
	first := s.Start()
	second := s.SetQuery("dell")

	resp, err := s.Execute(context.Background(), first)
	require.NoError(t, err)
	assert.False(t, s.Apply(first, resp))
	assert.True(t, s.Stalled())
	assert.Empty(t, s.Hits())

	assert.False(t, s.Fail(first, errors.New("late")))

	run(t, s, second)
	require.Len(t, s.Hits(), 1)
	assert.Equal(t, "Dell Notebook", s.Hits()[0].Name)
	assert.True(t, s.IsLastPage())
}

func TestFailClearsStalledAndKeepsPage(t *testing.T) {
	s := newTestSession(t)
	run(t, s, s.Start())

	q := s.RefineNext()
	require.True(t, s.Fail(q, errors.New("backend down")))
	assert.False(t, s.Stalled())
	assert.Error(t, s.Err())

	retry := s.RefineNext()
	assert.Equal(t, 1, retry.Request.Page)
	run(t, s, retry)
	assert.NoError(t, s.Err())
}

func TestRefinementHelpers(t *testing.T) {
	s := newTestSession(t)
	s.SetCategory(domain.Category{Name: domain.AllCategories, Refinements: []domain.Refinement{
		{Type: domain.RefinementList, Attributes: []string{"brand"}},
		{Type: domain.RefinementColor, Attributes: []string{"color"}},
		{Type: domain.RefinementSize, Attributes: []string{"size"}},
	}})
	s.ToggleRefinement("brand", "Sony")
	s.ToggleRefinement("brand", "Bose")
	q := s.ToggleRefinement("color", "black")

	assert.Equal(t, "", q.Request.Category)
	assert.Equal(t, 2, s.RefinedCount([]string{"brand"}))
	assert.Equal(t, 3, s.TotalRefinements())
	assert.True(t, s.IsRefined("brand", "Bose"))

	q = s.ToggleRefinement("brand", "Bose")
	assert.False(t, s.IsRefined("brand", "Bose"))
	run(t, s, q)

	assert.True(t, s.HasFacetValues([]string{"brand"}))
	assert.False(t, s.HasFacetValues([]string{"size"}))
}

func TestStalledSignalNotifies(t *testing.T) {
	s := newTestSession(t)
	var seen []bool
	s.StalledSignal().Subscribe(func(v bool) { seen = append(seen, v) })

	run(t, s, s.Start())
	assert.Equal(t, []bool{true, false}, seen)
}

func TestDefaultSignaturesAreUnique(t *testing.T) {
	s := NewSession(testCatalog(t))
	a := s.Start().Signature
	b := s.SetQuery("x").Signature
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestSetSortIsANewSearch(t *testing.T) {
	s := newTestSession(t)
	run(t, s, s.Start())
	run(t, s, s.RefineNext())

	q := s.SetSort(SortPriceDesc)
	assert.Equal(t, domain.QuerySignature("sig-2"), q.Signature)
	assert.Equal(t, 0, q.Request.Page)
	run(t, s, q)
	require.Len(t, s.Hits(), 1)
	assert.Equal(t, "Dell Notebook", s.Hits()[0].Name)
}

func TestRefinementsListing(t *testing.T) {
	s := newTestSession(t)
	s.ToggleRefinement("color", "black")
	s.ToggleRefinement("brand", "Sony")
	assert.Equal(t, []Refined{{"brand", "Sony"}, {"color", "black"}}, s.Refinements())
}
