// Package recommend implements the recommender: role/category admission,
// ranked complement suggestions, greedy look completion, and the
// upsert/rebuild orchestration glueing the store, graph, and scoring engine
// together.
package recommend

import (
	"context"
	"sort"

	"github.com/lmendesdev/lookkg/internal/catalog"
	"github.com/lmendesdev/lookkg/internal/graph"
	"github.com/lmendesdev/lookkg/internal/scoring"
	"github.com/lmendesdev/lookkg/internal/store"
	"github.com/lmendesdev/lookkg/internal/vocab"
)

// Recommender serves complement/complete queries over a shared Graph and
// CatalogStore. Both are process-wide singletons, one per deployment.
type Recommender struct {
	Store store.CatalogStore
	Graph *graph.Manager
}

// New builds a Recommender over s and g.
func New(s store.CatalogStore, g *graph.Manager) *Recommender {
	return &Recommender{Store: s, Graph: g}
}

func presentCategories(ctx []catalog.Item) map[string]bool {
	out := make(map[string]bool, len(ctx))
	for _, it := range ctx {
		out[it.Categoria] = true
	}
	return out
}

func presentRoles(ctx []catalog.Item) map[vocab.Role]bool {
	out := make(map[vocab.Role]bool, len(ctx))
	for _, it := range ctx {
		if r, ok := vocab.RoleOf(it.Categoria); ok {
			out[r] = true
		}
	}
	return out
}

// CategoryAllowed reports whether a candidate of category cat may join a
// look alongside ctx: no duplicate category, and no duplicate occupant of a
// singleton role.
func CategoryAllowed(ctx []catalog.Item, cat string) bool {
	if presentCategories(ctx)[cat] {
		return false
	}
	role, ok := vocab.RoleOf(cat)
	if !ok {
		return true
	}
	if vocab.SingletonRoles[role] && presentRoles(ctx)[role] {
		return false
	}
	return true
}

// Candidate is one ranked recommendation result.
type Candidate struct {
	ItemID    string   `json:"item_id"`
	Nome      string   `json:"nome"`
	Categoria string   `json:"categoria"`
	Score     float64  `json:"score"`
	Rationale []string `json:"rationale"`
}

func toCandidate(it catalog.Item, score float64, rationale []string) Candidate {
	return Candidate{
		ItemID: it.ItemID, Nome: it.Nome, Categoria: it.Categoria,
		Score: score, Rationale: rationale,
	}
}

// SuggestComplements ranks the candidate pool against selected by
// bottleneck score. A non-positive topK yields no results.
func (r *Recommender) SuggestComplements(ctx context.Context, selected []catalog.Item, topK int, threshold float64, constraints map[string]string) ([]Candidate, error) {
	exclude := make(map[string]bool, len(selected))
	for _, s := range selected {
		exclude[s.ItemID] = true
	}

	pool := r.Graph.AllCandidates(exclude)
	var results []Candidate
	for _, c := range pool {
		if !CategoryAllowed(selected, c.Categoria) {
			continue
		}
		res, err := scoring.ScoreBottleneck(ctx, selected, c)
		if err != nil {
			return nil, err
		}
		sc := res.Score
		if constraints != nil {
			sc *= scoring.ConstraintMultiplier(c, constraints)
		}
		if sc >= threshold {
			results = append(results, toCandidate(c, sc, res.Rationale))
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if topK < 0 {
		topK = 0
	}
	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

// CompleteLookResult is the output of CompleteLook.
type CompleteLookResult struct {
	Targets map[string][]Candidate
	Missing []string
}

// CompleteLook greedily fills each target category in order, appending the
// best pick to the working context before moving to the next target. A
// non-positive topK yields no picks for any target (all land in Missing).
func (r *Recommender) CompleteLook(ctx context.Context, selected []catalog.Item, targets []string, topK int) (CompleteLookResult, error) {
	out := CompleteLookResult{Targets: make(map[string][]Candidate)}
	working := append([]catalog.Item(nil), selected...)
	allCands := r.Graph.AllCandidates(nil)

	for _, t := range targets {
		if !CategoryAllowed(working, t) {
			out.Missing = append(out.Missing, t+" (já existe no look ou papel único ocupado)")
			continue
		}

		var pool []catalog.Item
		for _, c := range allCands {
			if c.Categoria == t && CategoryAllowed(working, c.Categoria) {
				pool = append(pool, c)
			}
		}

		type scored struct {
			item      catalog.Item
			score     float64
			rationale []string
		}
		var candidates []scored
		for _, c := range pool {
			res, err := scoring.ScoreBottleneck(ctx, working, c)
			if err != nil {
				return CompleteLookResult{}, err
			}
			candidates = append(candidates, scored{item: c, score: res.Score, rationale: res.Rationale})
		}
		sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

		if len(candidates) > 0 && candidates[0].score > 0 && topK > 0 {
			n := topK
			if n > len(candidates) {
				n = len(candidates)
			}
			picks := make([]Candidate, 0, n)
			for i := 0; i < n; i++ {
				picks = append(picks, toCandidate(candidates[i].item, candidates[i].score, candidates[i].rationale))
			}
			out.Targets[t] = picks
			working = append(working, candidates[0].item)
		} else {
			out.Missing = append(out.Missing, t)
		}
	}

	return out, nil
}

// UpsertItemAndGenerateEdges normalizes raw, persists it through Store, and
// incrementally updates Graph against the full catalog.
func (r *Recommender) UpsertItemAndGenerateEdges(ctx context.Context, raw catalog.Raw) (catalog.Item, error) {
	item, err := catalog.Normalize(raw)
	if err != nil {
		return catalog.Item{}, err
	}
	saved, err := r.Store.Add(ctx, item)
	if err != nil {
		return catalog.Item{}, err
	}
	all, err := r.Store.LoadAll(ctx)
	if err != nil {
		return catalog.Item{}, err
	}
	r.Graph.Upsert(saved, all)
	return saved, nil
}

// DeleteItem removes an item from the store, then removes its node and all
// incident edges from the graph. ok reports whether the store held the item.
func (r *Recommender) DeleteItem(ctx context.Context, itemID string) (bool, error) {
	ok, err := r.Store.Delete(ctx, itemID)
	if err != nil {
		return false, err
	}
	r.Graph.Delete(itemID)
	return ok, nil
}

// RebuildGraph reloads the full catalog from Store and rebuilds Graph from
// scratch.
func (r *Recommender) RebuildGraph(ctx context.Context) (graph.Stats, error) {
	all, err := r.Store.LoadAll(ctx)
	if err != nil {
		return graph.Stats{}, err
	}
	return r.Graph.Rebuild(all), nil
}
