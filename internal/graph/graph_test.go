package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmendesdev/lookkg/internal/catalog"
	"github.com/lmendesdev/lookkg/internal/scoring"
)

func mustItem(t *testing.T, r catalog.Raw) catalog.Item {
	t.Helper()
	it, err := catalog.Normalize(r)
	require.NoError(t, err)
	return it
}

func sampleCatalog(t *testing.T) []catalog.Item {
	t.Helper()
	return []catalog.Item{
		mustItem(t, catalog.Raw{ItemID: "saia_1", Nome: "saia azul", Categoria: "saia", Cor: "azul", Material: "jeans"}),
		mustItem(t, catalog.Raw{ItemID: "blusa_1", Nome: "blusa branca", Categoria: "blusa", Cor: "branco", Material: "algodao"}),
		mustItem(t, catalog.Raw{ItemID: "calca_1", Nome: "calca bege", Categoria: "calca", Cor: "bege", Material: "algodao"}),
	}
}

// Graph consistency: for every unordered pair, G has an edge iff
// score_pair > 0. Edge weights are not checked here.
func TestRebuild_Consistency(t *testing.T) {
	items := sampleCatalog(t)
	g := New()
	g.Rebuild(items)

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			want := scoring.ScorePair(a, b)

			neighbors := g.Neighbors(a.ItemID)
			var found bool
			for _, n := range neighbors {
				if n.ItemID == b.ItemID {
					found = true
				}
			}
			if want.Score > 0 {
				assert.True(t, found, "expected edge between %s and %s", a.ItemID, b.ItemID)
			} else {
				assert.False(t, found, "expected no edge between %s and %s", a.ItemID, b.ItemID)
			}
		}
	}
}

func TestUpsert_DelegatesToRebuildWhenEmpty(t *testing.T) {
	items := sampleCatalog(t)
	g := New()
	stats := g.Upsert(items[0], items)
	assert.Equal(t, len(items), stats.Nodes)
}

func TestUpsert_DropsStaleEdges(t *testing.T) {
	items := sampleCatalog(t)
	g := New()
	g.Rebuild(items)

	changed := items[0]
	changed.Categoria = "blusa" // now shares blusa_1's category, so their edge scores 0
	stats := g.Upsert(changed, items)
	assert.Equal(t, len(items), stats.Nodes)

	for _, n := range g.Neighbors(changed.ItemID) {
		assert.NotEqual(t, items[1].ItemID, n.ItemID, "stale edge to %s kept", items[1].ItemID)
	}
}

func TestDelete_RemovesNodeAndEdges(t *testing.T) {
	items := sampleCatalog(t)
	g := New()
	g.Rebuild(items)

	g.Delete(items[0].ItemID)
	assert.Empty(t, g.Neighbors(items[0].ItemID))

	all := g.AllCandidates(nil)
	for _, it := range all {
		assert.NotEqual(t, items[0].ItemID, it.ItemID)
	}
}

func TestAllCandidates_ExcludesGivenSet(t *testing.T) {
	items := sampleCatalog(t)
	g := New()
	g.Rebuild(items)

	exclude := map[string]bool{items[0].ItemID: true}
	remaining := g.AllCandidates(exclude)
	for _, it := range remaining {
		assert.NotEqual(t, items[0].ItemID, it.ItemID)
	}
	assert.Len(t, remaining, len(items)-1)
}
