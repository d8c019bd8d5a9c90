// Package handlers implements the HTTP surface over internal/recommend:
// item creation, lookup, search, deletion, graph rebuild, and the two
// recommendation endpoints.
package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lmendesdev/lookkg/internal/apperr"
	"github.com/lmendesdev/lookkg/internal/catalog"
	"github.com/lmendesdev/lookkg/internal/config"
	"github.com/lmendesdev/lookkg/internal/recommend"
)

type Handlers struct {
	config      *config.Config
	recommender *recommend.Recommender
}

func NewHandlers(cfg *config.Config, r *recommend.Recommender) *Handlers {
	return &Handlers{config: cfg, recommender: r}
}

// CreateItem handles POST /v1/graph/items and POST /v1/items.
func (h *Handlers) CreateItem(c echo.Context) error {
	var raw catalog.Raw
	if err := c.Bind(&raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo inválido")
	}

	item, err := h.recommender.UpsertItemAndGenerateEdges(c.Request().Context(), raw)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"item_id": item.ItemID, "item": item})
}

// RebuildGraph handles POST /v1/graph/rebuild.
func (h *Handlers) RebuildGraph(c echo.Context) error {
	stats, err := h.recommender.RebuildGraph(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "nodes": stats.Nodes, "edges": stats.Edges})
}

// GetItem handles GET /v1/items/{item_id}.
func (h *Handlers) GetItem(c echo.Context) error {
	id := c.Param("item_id")
	item, err := h.recommender.Store.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperr.NewNotFound("item", id)
	}
	return c.JSON(http.StatusOK, item)
}

// ListCatalog handles GET /v1/items/catalog.
func (h *Handlers) ListCatalog(c echo.Context) error {
	items, err := h.recommender.Store.LoadAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

type searchIn struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// SearchItems handles POST /v1/items/search.
func (h *Handlers) SearchItems(c echo.Context) error {
	var in searchIn
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo inválido")
	}
	items, err := h.recommender.Store.Search(c.Request().Context(), in.Query, in.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteItem handles DELETE /v1/items/{item_id}.
func (h *Handlers) DeleteItem(c echo.Context) error {
	id := c.Param("item_id")
	ok, err := h.recommender.DeleteItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NewNotFound("item", id)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

type recommendComplementarIn struct {
	Query       string            `json:"query"`
	ItemID      string            `json:"item_id"`
	Itens       []string          `json:"itens"`
	TopK        *int              `json:"top_k"`
	Threshold   *float64          `json:"threshold"`
	Constraints map[string]string `json:"constraints"`
}

// resolveSelected implements the RecommendComplementarIn resolution
// precedence: item_id → itens (match by nome or item_id) → query (first
// substring match on nome, lowercased) → fallback to first catalog item.
func resolveSelected(all []catalog.Item, in recommendComplementarIn) []catalog.Item {
	byID := make(map[string]catalog.Item, len(all))
	for _, it := range all {
		byID[it.ItemID] = it
	}

	if in.ItemID != "" {
		if it, ok := byID[in.ItemID]; ok {
			return []catalog.Item{it}
		}
	}

	if len(in.Itens) > 0 {
		var out []catalog.Item
		for _, ref := range in.Itens {
			if it, ok := byID[ref]; ok {
				out = append(out, it)
				continue
			}
			for _, cand := range all {
				if cand.Nome == strings.ToLower(strings.TrimSpace(ref)) {
					out = append(out, cand)
					break
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	if in.Query != "" {
		q := strings.ToLower(strings.TrimSpace(in.Query))
		for _, cand := range all {
			if strings.Contains(cand.Nome, q) {
				return []catalog.Item{cand}
			}
		}
	}

	if len(all) > 0 {
		return []catalog.Item{all[0]}
	}
	return nil
}

// RecommendComplementar handles POST /v1/recommend/complementar.
func (h *Handlers) RecommendComplementar(c echo.Context) error {
	var in recommendComplementarIn
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo inválido")
	}

	ctx := c.Request().Context()
	all, err := h.recommender.Store.LoadAll(ctx)
	if err != nil {
		return err
	}

	selected := resolveSelected(all, in)

	topK := h.config.Recommend.DefaultTopK
	if in.TopK != nil {
		topK = *in.TopK
	}
	threshold := h.config.Recommend.DefaultThreshold
	if in.Threshold != nil {
		threshold = *in.Threshold
	}

	results, err := h.recommender.SuggestComplements(ctx, selected, topK, threshold, in.Constraints)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"results": results})
}

type recommendCompletarIn struct {
	Itens   []string `json:"itens"`
	TopK    *int     `json:"top_k"`
	Targets []string `json:"targets"`
}

// RecommendCompletar handles POST /v1/recommend/completar.
func (h *Handlers) RecommendCompletar(c echo.Context) error {
	var in recommendCompletarIn
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo inválido")
	}

	ctx := c.Request().Context()
	all, err := h.recommender.Store.LoadAll(ctx)
	if err != nil {
		return err
	}

	byID := make(map[string]catalog.Item, len(all))
	for _, it := range all {
		byID[it.ItemID] = it
	}
	var selected []catalog.Item
	for _, ref := range in.Itens {
		if it, ok := byID[ref]; ok {
			selected = append(selected, it)
			continue
		}
		q := strings.ToLower(strings.TrimSpace(ref))
		for _, cand := range all {
			if cand.Nome == q {
				selected = append(selected, cand)
				break
			}
		}
	}

	targets := in.Targets
	if len(targets) == 0 {
		targets = []string{"sapato", "bolsa", "acessorio"}
	}
	topK := h.config.Recommend.DefaultCompleteTopK
	if in.TopK != nil {
		topK = *in.TopK
	}

	result, err := h.recommender.CompleteLook(ctx, selected, targets, topK)
	if err != nil {
		return err
	}

	body := map[string]any{"targets": result.Targets, "missing": result.Missing}
	if len(result.Missing) > 0 {
		body["message"] = "alguns alvos não puderam ser preenchidos"
	}
	return c.JSON(http.StatusOK, body)
}
