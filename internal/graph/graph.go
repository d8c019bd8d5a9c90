// Package graph maintains the undirected weighted compatibility graph over
// catalog items: one node per item, an edge between any pair with a
// positive pairwise score. Implemented as a small hand-rolled adjacency
// structure rather than a pulled-in graph library, matching how the rest of
// this codebase keeps its data-access layer hand-rolled.
package graph

import (
	"sync"

	"github.com/lmendesdev/lookkg/internal/catalog"
	"github.com/lmendesdev/lookkg/internal/scoring"
)

// Stats reports node/edge counts after a mutating operation.
type Stats struct {
	Nodes int
	Edges int
}

// Manager is an undirected weighted graph whose nodes are catalog items
// (keyed by item_id) and whose edges carry a positive compatibility score.
// All mutating and reading operations are safe for concurrent use.
type Manager struct {
	mu    sync.RWMutex
	nodes map[string]catalog.Item
	adj   map[string]map[string]float64
}

// New creates an empty graph.
func New() *Manager {
	return &Manager{
		nodes: make(map[string]catalog.Item),
		adj:   make(map[string]map[string]float64),
	}
}

func (m *Manager) edgeCount() int {
	n := 0
	for _, row := range m.adj {
		n += len(row)
	}
	return n / 2
}

func (m *Manager) stats() Stats {
	return Stats{Nodes: len(m.nodes), Edges: m.edgeCount()}
}

func (m *Manager) setEdge(a, b string, score float64) {
	if m.adj[a] == nil {
		m.adj[a] = make(map[string]float64)
	}
	if m.adj[b] == nil {
		m.adj[b] = make(map[string]float64)
	}
	m.adj[a][b] = score
	m.adj[b][a] = score
}

func (m *Manager) removeEdge(a, b string) {
	delete(m.adj[a], b)
	delete(m.adj[b], a)
}

// Rebuild discards the current graph and reconstructs it from scratch:
// one node per item, an edge between every pair with a positive
// score_pair.
func (m *Manager) Rebuild(items []catalog.Item) Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nodes = make(map[string]catalog.Item, len(items))
	m.adj = make(map[string]map[string]float64, len(items))

	for _, it := range items {
		m.nodes[it.ItemID] = it
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			r := scoring.ScorePair(a, b)
			if r.Score > 0 {
				m.setEdge(a.ItemID, b.ItemID, r.Score)
			}
		}
	}
	return m.stats()
}

// Upsert inserts or replaces the node for item, then recomputes its edges
// against every other item in the catalog, adding/updating edges that score
// positive and dropping any that no longer do. If the graph is empty,
// Upsert delegates to Rebuild.
func (m *Manager) Upsert(item catalog.Item, items []catalog.Item) Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.nodes) == 0 {
		m.nodes = make(map[string]catalog.Item, len(items))
		m.adj = make(map[string]map[string]float64, len(items))
		for _, it := range items {
			m.nodes[it.ItemID] = it
		}
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				a, b := items[i], items[j]
				r := scoring.ScorePair(a, b)
				if r.Score > 0 {
					m.setEdge(a.ItemID, b.ItemID, r.Score)
				}
			}
		}
		return m.stats()
	}

	m.nodes[item.ItemID] = item
	for _, other := range items {
		if other.ItemID == item.ItemID {
			continue
		}
		r := scoring.ScorePair(item, other)
		if r.Score > 0 {
			m.setEdge(item.ItemID, other.ItemID, r.Score)
		} else {
			m.removeEdge(item.ItemID, other.ItemID)
		}
	}
	return m.stats()
}

// Delete removes the node for itemID and all incident edges, if present.
func (m *Manager) Delete(itemID string) Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	for other := range m.adj[itemID] {
		delete(m.adj[other], itemID)
	}
	delete(m.adj, itemID)
	delete(m.nodes, itemID)
	return m.stats()
}

// Neighbors returns the item data of every node adjacent to itemID.
func (m *Manager) Neighbors(itemID string) []catalog.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]catalog.Item, 0, len(m.adj[itemID]))
	for id := range m.adj[itemID] {
		out = append(out, m.nodes[id])
	}
	return out
}

// AllCandidates returns the item data of every node not in exclude.
func (m *Manager) AllCandidates(exclude map[string]bool) []catalog.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]catalog.Item, 0, len(m.nodes))
	for id, it := range m.nodes {
		if exclude[id] {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Stats returns the current node/edge counts.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats()
}
