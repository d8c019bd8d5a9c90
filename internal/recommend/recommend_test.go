package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmendesdev/lookkg/internal/catalog"
	"github.com/lmendesdev/lookkg/internal/graph"
)

// memStore is a minimal in-memory CatalogStore double, used only to exercise
// Recommender without an embedded SQLite file.
type memStore struct {
	items map[string]catalog.Item
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]catalog.Item)}
}

func (m *memStore) LoadAll(ctx context.Context) ([]catalog.Item, error) {
	out := make([]catalog.Item, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *memStore) Get(ctx context.Context, itemID string) (*catalog.Item, error) {
	if it, ok := m.items[itemID]; ok {
		return &it, nil
	}
	return nil, nil
}

func (m *memStore) Add(ctx context.Context, item catalog.Item) (catalog.Item, error) {
	if item.ItemID == "" {
		item.ItemID = item.Categoria + "_" + item.Nome
	}
	m.items[item.ItemID] = item
	return item, nil
}

func (m *memStore) Delete(ctx context.Context, itemID string) (bool, error) {
	if _, ok := m.items[itemID]; !ok {
		return false, nil
	}
	delete(m.items, itemID)
	return true, nil
}

func (m *memStore) Search(ctx context.Context, query string, limit int) ([]catalog.Item, error) {
	return m.LoadAll(ctx)
}

func seedRecommender(t *testing.T) *Recommender {
	t.Helper()
	s := newMemStore()
	g := graph.New()
	r := New(s, g)

	raws := []catalog.Raw{
		{ItemID: "saia_azul", Nome: "saia azul", Categoria: "saia", Cor: "azul", Material: "jeans"},
		{ItemID: "blusa_branca", Nome: "blusa branca", Categoria: "blusa", Cor: "branco", Material: "algodao"},
		{ItemID: "sapato_nude", Nome: "sapato nude", Categoria: "sapato", Cor: "nude", Material: "couro"},
		{ItemID: "bolsa_marrom", Nome: "bolsa marrom", Categoria: "bolsa", Cor: "marrom", Material: "couro"},
		{ItemID: "acessorio_cinza", Nome: "acessorio cinza", Categoria: "acessorio", Cor: "cinza", Material: "metal"},
		{ItemID: "calca_bege", Nome: "calca bege", Categoria: "calca", Cor: "bege", Material: "algodao"},
	}
	ctx := context.Background()
	for _, raw := range raws {
		_, err := r.UpsertItemAndGenerateEdges(ctx, raw)
		require.NoError(t, err)
	}
	return r
}

// A single selected item should get exactly one suggestion per requested
// target category, each drawn from its own category, with nothing missing.
func TestCompleteLook_SingleItemFillsEveryTarget(t *testing.T) {
	r := seedRecommender(t)
	saia, err := r.Store.Get(context.Background(), "saia_azul")
	require.NoError(t, err)
	require.NotNil(t, saia)

	result, err := r.CompleteLook(context.Background(), []catalog.Item{*saia}, []string{"blusa", "sapato", "bolsa"}, 1)
	require.NoError(t, err)

	assert.Empty(t, result.Missing)
	for _, target := range []string{"blusa", "sapato", "bolsa"} {
		picks, ok := result.Targets[target]
		require.True(t, ok, "missing target %s", target)
		require.Len(t, picks, 1)
		assert.Equal(t, target, picks[0].Categoria)
	}
}

func TestCategoryAllowed_RejectsSameCategory(t *testing.T) {
	ctx := []catalog.Item{{Categoria: "saia"}}
	assert.False(t, CategoryAllowed(ctx, "saia"))
}

func TestCategoryAllowed_RejectsSecondSingletonRole(t *testing.T) {
	ctx := []catalog.Item{{Categoria: "saia"}}
	assert.False(t, CategoryAllowed(ctx, "calca")) // both RoleBottom, singleton
}

func TestCategoryAllowed_AllowsDifferentRoles(t *testing.T) {
	ctx := []catalog.Item{{Categoria: "saia"}}
	assert.True(t, CategoryAllowed(ctx, "blusa"))
}

// Role singleton: complete_look never places two items in the same
// singleton role.
func TestCompleteLook_NeverDuplicatesSingletonRole(t *testing.T) {
	r := seedRecommender(t)
	saia, err := r.Store.Get(context.Background(), "saia_azul")
	require.NoError(t, err)

	result, err := r.CompleteLook(context.Background(), []catalog.Item{*saia}, []string{"calca"}, 1)
	require.NoError(t, err)
	assert.Contains(t, result.Missing, "calca (já existe no look ou papel único ocupado)")
	assert.Empty(t, result.Targets["calca"])
}

func TestSuggestComplements_ExcludesSelected(t *testing.T) {
	r := seedRecommender(t)
	saia, err := r.Store.Get(context.Background(), "saia_azul")
	require.NoError(t, err)

	results, err := r.SuggestComplements(context.Background(), []catalog.Item{*saia}, 10, 0.0, nil)
	require.NoError(t, err)
	for _, res := range results {
		assert.NotEqual(t, saia.ItemID, res.ItemID)
	}
}

// Matching constraints on ocasion+clima should multiply the raw score by
// 1.05^2 before thresholding.
func TestSuggestComplements_ConstraintMultiplier(t *testing.T) {
	r := seedRecommender(t)
	saia, err := r.Store.Get(context.Background(), "saia_azul")
	require.NoError(t, err)

	withoutConstraints, err := r.SuggestComplements(context.Background(), []catalog.Item{*saia}, 10, 0.0, nil)
	require.NoError(t, err)

	withConstraints, err := r.SuggestComplements(context.Background(), []catalog.Item{*saia}, 10, 0.0,
		map[string]string{"ocasion": saia.Ocasion, "clima": saia.Clima})
	require.NoError(t, err)

	base := make(map[string]float64, len(withoutConstraints))
	for _, c := range withoutConstraints {
		base[c.ItemID] = c.Score
	}
	for _, c := range withConstraints {
		assert.InDelta(t, base[c.ItemID]*1.1025, c.Score, 1e-9)
	}
}

func TestRebuildGraph_ReportsStats(t *testing.T) {
	r := seedRecommender(t)
	stats, err := r.RebuildGraph(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Nodes)
}

func TestDeleteItem_RemovesFromStoreAndGraph(t *testing.T) {
	r := seedRecommender(t)
	ok, err := r.DeleteItem(context.Background(), "saia_azul")
	require.NoError(t, err)
	assert.True(t, ok)

	item, err := r.Store.Get(context.Background(), "saia_azul")
	require.NoError(t, err)
	assert.Nil(t, item)
}
