package store

import (
	"context"

	"github.com/lmendesdev/lookkg/internal/catalog"
)

// SeedItems is a small demo catalog, already in canonical form: one item for
// each category except jaqueta, plus a second, formal blusa.
var SeedItems = []catalog.Raw{
	{Nome: "saia azul jeans", Categoria: "saia", Cor: "azul", Padrao: "liso", Material: "jeans", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "blusa branca algodao", Categoria: "blusa", Cor: "branco", Padrao: "liso", Material: "algodao", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "sapato nude", Categoria: "sapato", Cor: "nude", Padrao: "liso", Material: "couro", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "bolsa marrom pequena", Categoria: "bolsa", Cor: "marrom", Padrao: "liso", Material: "couro", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "colar prata minimal", Categoria: "acessorio", Cor: "cinza", Padrao: "liso", Material: "metal", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "calca bege chino", Categoria: "calca", Cor: "bege", Padrao: "liso", Material: "algodao", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "camisa social preta", Categoria: "blusa", Cor: "preto", Padrao: "liso", Material: "algodao", Estilo: "formal", Ocasion: "formal", Clima: "frio"},
}

// Seed loads SeedItems into s, normalizing each one first. Used by tests and
// cmd/api's -seed flag; never used in production deployments.
func Seed(ctx context.Context, s CatalogStore) error {
	for _, raw := range SeedItems {
		item, err := catalog.Normalize(raw)
		if err != nil {
			return err
		}
		if _, err := s.Add(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
