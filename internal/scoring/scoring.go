// Package scoring implements the pairwise and contextual compatibility
// scoring rules the recommender ranks candidates with.
package scoring

import (
	"context"

	"github.com/lmendesdev/lookkg/internal/apperr"
	"github.com/lmendesdev/lookkg/internal/catalog"
	"github.com/lmendesdev/lookkg/internal/vocab"
)

// Result is a pairwise or bottleneck score plus its ordered rationale.
type Result struct {
	Score     float64
	Rationale []string
}

func roleIncompatible(ca, cb string) bool {
	ra, okA := vocab.RoleOf(ca)
	rb, okB := vocab.RoleOf(cb)
	if !okA || !okB {
		return false
	}
	if ra == vocab.RoleBottom && rb == vocab.RoleBottom {
		return true
	}
	return ra == rb && vocab.SingletonRoles[ra]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ScorePair computes the pairwise compatibility score between a and b as a
// sum of weighted rule contributions (color, style, occasion, climate,
// material, pattern), clamped to [0,1]. Same categoria or an incompatible
// role pairing short-circuits to 0. The result is symmetric in a and b.
func ScorePair(a, b catalog.Item) Result {
	if a.Categoria == b.Categoria {
		return Result{Score: 0, Rationale: []string{"mesma categoria"}}
	}
	if roleIncompatible(a.Categoria, b.Categoria) {
		return Result{Score: 0, Rationale: []string{"papéis incompatíveis"}}
	}

	var rationale []string
	total := 0.0

	// 1. Color contribution — first matching rule wins.
	switch {
	case a.Cor == b.Cor:
		total += 0.6
		rationale = append(rationale, "mesma cor")
	case vocab.IsAnalogous(a.Cor, b.Cor):
		total += 0.45
		rationale = append(rationale, "análogas")
	case vocab.IsComplementary(a.Cor, b.Cor):
		total += 0.5
		rationale = append(rationale, "complementares")
	case vocab.SameTriad(a.Cor, b.Cor):
		total += 0.35
		rationale = append(rationale, "tríade")
	case vocab.NeutralColors[a.Cor] || vocab.NeutralColors[b.Cor]:
		total += 0.4
		rationale = append(rationale, "neutro")
	default:
		total += 0.2
		rationale = append(rationale, "baixo contraste")
	}

	// 2. Style matrix.
	styleRaw := vocab.LookupStyle(a.Estilo, b.Estilo)
	total += styleRaw * 0.3
	switch {
	case styleRaw >= 0.7:
		rationale = append(rationale, "estilo compatível")
	case styleRaw >= 0.5:
		rationale = append(rationale, "estilo aceitável")
	default:
		rationale = append(rationale, "estilo distante")
	}

	// 3. Occasion matrix.
	occRaw := vocab.LookupOccasion(a.Ocasion, b.Ocasion)
	total += occRaw * 0.3
	switch {
	case occRaw >= 0.7:
		rationale = append(rationale, "ocasião compatível")
	case occRaw >= 0.5:
		rationale = append(rationale, "ocasião aceitável")
	default:
		rationale = append(rationale, "ocasião distante")
	}

	// 4. Climate matrix.
	climRaw := vocab.LookupClimate(a.Clima, b.Clima)
	total += climRaw * 0.3
	switch {
	case climRaw >= 0.7:
		rationale = append(rationale, "clima compatível")
	case climRaw >= 0.5:
		rationale = append(rationale, "clima aceitável")
	default:
		rationale = append(rationale, "clima distante")
	}

	// 5. Material.
	if a.Material == "" || b.Material == "" {
		total += 0.05
		rationale = append(rationale, "materiais neutros")
	} else {
		ga := vocab.MaterialGroupOf[a.Material]
		gb := vocab.MaterialGroupOf[b.Material]
		matRaw := vocab.LookupMaterialGroup(ga, gb)
		total += matRaw * 0.25
		rationale = append(rationale, "materiais coerentes")
	}

	// 6. Pattern penalty.
	patRaw := vocab.LookupPattern(a.Padrao, b.Padrao)
	total += patRaw
	if patRaw < 0 {
		rationale = append(rationale, "padrões colidem")
	}

	return Result{Score: clamp01(total), Rationale: rationale}
}

// ScoreBottleneck scores a candidate against a whole selection as the
// candidate's worst (minimum) pairwise link across the selection, with
// rationale de-duplicated across context items in first-seen order.
// ctx.Done() is checked between context items so long sweeps can be
// cancelled by the caller.
func ScoreBottleneck(ctx context.Context, selected []catalog.Item, c catalog.Item) (Result, error) {
	if len(selected) == 0 {
		return Result{Score: 0, Rationale: nil}, nil
	}

	min := 1.1 // above the [0,1] range so the first iteration always sets it
	var rationale []string
	seen := map[string]bool{}

	for _, s := range selected {
		select {
		case <-ctx.Done():
			return Result{}, apperr.NewCancelled(ctx.Err())
		default:
		}
		r := ScorePair(s, c)
		if r.Score < min {
			min = r.Score
		}
		for _, reason := range r.Rationale {
			if !seen[reason] {
				seen[reason] = true
				rationale = append(rationale, reason)
			}
		}
	}

	return Result{Score: min, Rationale: rationale}, nil
}

// ConstraintMultiplier returns the multiplier c's score should be scaled by
// given a set of requested constraints: 1.05 per recognized, matching key.
func ConstraintMultiplier(c catalog.Item, constraints map[string]string) float64 {
	mult := 1.0
	if v, ok := constraints["ocasion"]; ok && v == c.Ocasion {
		mult *= 1.05
	}
	if v, ok := constraints["clima"]; ok && v == c.Clima {
		mult *= 1.05
	}
	return mult
}
