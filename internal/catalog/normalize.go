package catalog

import (
	"strings"

	"github.com/lmendesdev/lookkg/internal/apperr"
	"github.com/lmendesdev/lookkg/internal/vocab"
)

const (
	defaultPadrao  = "liso"
	defaultEstilo  = "classico"
	defaultOcasion = "casual"
	defaultClima   = "quente"
)

func normString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func canonicalize(synonyms map[string]string, v string) string {
	if c, ok := synonyms[v]; ok {
		return c
	}
	return v
}

// Normalize canonicalizes a Raw payload into an Item, or returns an
// *apperr.ValidationError if a required enum field falls outside its
// domain after synonym resolution. Normalize is pure and idempotent:
// Normalize(Normalize(x).AsRaw()) == Normalize(x).
func Normalize(r Raw) (Item, error) {
	nome := normString(r.Nome)
	categoria := canonicalize(vocab.CategorySynonyms, normString(r.Categoria))
	cor := canonicalize(vocab.ColorSynonyms, normString(r.Cor))

	padrao := normString(r.Padrao)
	if padrao == "" {
		padrao = defaultPadrao
	}
	estilo := normString(r.Estilo)
	if estilo == "" {
		estilo = defaultEstilo
	}
	ocasion := normString(r.Ocasion)
	if ocasion == "" {
		ocasion = defaultOcasion
	}
	clima := normString(r.Clima)
	if clima == "" {
		clima = defaultClima
	}

	material := ""
	if normString(r.Material) != "" {
		material = canonicalize(vocab.MaterialSynonyms, normString(r.Material))
	}

	if nome == "" {
		return Item{}, apperr.NewValidationError("nome", r.Nome)
	}
	if !vocab.Categories[categoria] {
		return Item{}, apperr.NewValidationError("categoria", r.Categoria)
	}
	if !vocab.Colors[cor] {
		return Item{}, apperr.NewValidationError("cor", r.Cor)
	}
	if !vocab.Patterns[padrao] {
		return Item{}, apperr.NewValidationError("padrao", r.Padrao)
	}
	if !vocab.Styles[estilo] {
		return Item{}, apperr.NewValidationError("estilo", r.Estilo)
	}
	if !vocab.Occasions[ocasion] {
		return Item{}, apperr.NewValidationError("ocasion", r.Ocasion)
	}
	if !vocab.Climates[clima] {
		return Item{}, apperr.NewValidationError("clima", r.Clima)
	}
	if material != "" && !vocab.Materials[material] {
		return Item{}, apperr.NewValidationError("material", r.Material)
	}

	return Item{
		ItemID:    strings.TrimSpace(r.ItemID),
		Nome:      nome,
		Categoria: categoria,
		Cor:       cor,
		Padrao:    padrao,
		Material:  material,
		Estilo:    estilo,
		Ocasion:   ocasion,
		Clima:     clima,
		Paleta:    vocab.Palette(cor),
	}, nil
}

// AsRaw converts an already-normalized Item back into a Raw payload, so that
// Normalize(item.AsRaw()) can be checked for idempotence.
func (it Item) AsRaw() Raw {
	return Raw{
		ItemID:    it.ItemID,
		Nome:      it.Nome,
		Categoria: it.Categoria,
		Cor:       it.Cor,
		Padrao:    it.Padrao,
		Material:  it.Material,
		Estilo:    it.Estilo,
		Ocasion:   it.Ocasion,
		Clima:     it.Clima,
	}
}
