package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmendesdev/lookkg/internal/apperr"
)

func TestNormalize_Defaults(t *testing.T) {
	it, err := Normalize(Raw{Nome: "Saia Azul", Categoria: "SAIA", Cor: "Azul"})
	require.NoError(t, err)
	assert.Equal(t, "saia azul", it.Nome)
	assert.Equal(t, "saia", it.Categoria)
	assert.Equal(t, "azul", it.Cor)
	assert.Equal(t, "liso", it.Padrao)
	assert.Equal(t, "classico", it.Estilo)
	assert.Equal(t, "casual", it.Ocasion)
	assert.Equal(t, "quente", it.Clima)
}

func TestNormalize_Idempotence(t *testing.T) {
	raw := Raw{Nome: " Blusa Branca ", Categoria: "Blusa", Cor: "Branco", Material: "Algodão"}
	first, err := Normalize(raw)
	require.NoError(t, err)

	second, err := Normalize(first.AsRaw())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// An unrecognized categoria should be rejected with a ValidationError on
// the categoria field.
func TestNormalize_InvalidCategoria(t *testing.T) {
	_, err := Normalize(Raw{Nome: "vestido longo", Categoria: "vestido", Cor: "azul"})
	require.Error(t, err)

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "categoria", ve.Field)
}

func TestNormalize_EmptyNome(t *testing.T) {
	_, err := Normalize(Raw{Categoria: "saia", Cor: "azul"})
	require.Error(t, err)

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "nome", ve.Field)
}

func TestNormalize_PaletteDerivedFromColor(t *testing.T) {
	it, err := Normalize(Raw{Nome: "colar prata", Categoria: "acessorio", Cor: "cinza"})
	require.NoError(t, err)
	assert.NotEmpty(t, it.Paleta)
}

func TestNormalize_MaterialSynonym(t *testing.T) {
	it, err := Normalize(Raw{Nome: "sapato couro", Categoria: "sapato", Cor: "marrom", Material: "leather"})
	require.NoError(t, err)
	assert.Equal(t, "couro", it.Material)
}
