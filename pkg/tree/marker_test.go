package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/pkg/tree"
	"github.com/yaklabco/golst/pkg/tree/treetest"
)

func TestMarkersLookup(t *testing.T) {
	t.Parallel()

	first := tree.NewSearchResult("first")
	second := tree.NewSearchResult("second")
	m := tree.NewMarkers(tree.NewSemicolon(), first, second)

	found, ok := tree.FindFirst[tree.SearchResult](m)
	require.True(t, ok)
	assert.Equal(t, first.ID, found.ID, "lookup returns the first marker of the variant")

	assert.True(t, tree.Has[tree.Semicolon](m))
	assert.False(t, tree.Has[tree.Implicit](m))
	assert.Equal(t, []string{"Semicolon", "SearchResult", "SearchResult"}, m.Kinds())
}

func TestMarkersAreImmutable(t *testing.T) {
	t.Parallel()

	base := tree.NewMarkers(tree.NewSemicolon())
	added := base.Add(tree.NewImplicit())
	removed := tree.Remove[tree.Semicolon](added)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, added.Len())
	assert.Equal(t, []string{"Implicit"}, removed.Kinds())
}

func TestAddIfAbsent(t *testing.T) {
	t.Parallel()

	m := tree.NewMarkers(tree.NewSemicolon())
	assert.Equal(t, 1, tree.AddIfAbsent(m, tree.NewSemicolon()).Len())
	assert.Equal(t, 2, tree.AddIfAbsent(m, tree.NewImplicit()).Len())
}

func TestCompute(t *testing.T) {
	t.Parallel()

	m := tree.NewMarkers(tree.NewSemicolon(), tree.NewSearchResult("old"))
	updated := tree.Compute(m, func(existing tree.SearchResult, found bool) tree.SearchResult {
		require.True(t, found)
		existing.Description = "new"
		return existing
	})

	got, ok := tree.FindFirst[tree.SearchResult](updated)
	require.True(t, ok)
	assert.Equal(t, "new", got.Description)
	assert.Equal(t, 2, updated.Len())

	old, _ := tree.FindFirst[tree.SearchResult](m)
	assert.Equal(t, "old", old.Description)

	appended := tree.Compute(tree.Markers{}, func(_ tree.SearchResult, found bool) tree.SearchResult {
		assert.False(t, found)
		return tree.NewSearchResult("fresh")
	})
	assert.Equal(t, []string{"SearchResult"}, appended.Kinds())
}

func TestNodeMarkerHelpers(t *testing.T) {
	t.Parallel()

	id := treetest.Ident(" ", "x")
	marked := tree.AddMarker(id, tree.NewSynthesized())

	assert.True(t, tree.Has[tree.Synthesized](marked.Markers()))
	assert.False(t, tree.Has[tree.Synthesized](id.Markers()))
	assert.Equal(t, id.ID(), marked.ID())
	assert.Equal(t, id.Prefix(), marked.Prefix())

	cleared := tree.WithMarkers(marked, tree.Markers{})
	assert.True(t, cleared.Markers().IsEmpty())

	moved := tree.WithPrefix(id, tree.SpaceOf("\n"))
	assert.Equal(t, "\n", moved.Prefix().String())
	assert.Equal(t, " ", id.Prefix().String())
	assert.Equal(t, id.ID(), moved.ID())
}
