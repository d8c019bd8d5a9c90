package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPalette_KnownAndDefault(t *testing.T) {
	assert.Equal(t, "fria", Palette("azul"))
	assert.Equal(t, "quente", Palette("vermelho"))
	assert.Equal(t, "neutra", Palette("cor-desconhecida"))
}

func TestIsAnalogous_Symmetric(t *testing.T) {
	assert.True(t, IsAnalogous("azul", "ciano"))
	assert.True(t, IsAnalogous("ciano", "azul"))
	assert.False(t, IsAnalogous("azul", "vermelho"))
}

func TestIsComplementary_PartialMap(t *testing.T) {
	assert.True(t, IsComplementary("azul", "laranja"))
	assert.True(t, IsComplementary("laranja", "azul"))
	assert.False(t, IsComplementary("amarelo", "azul")) // amarelo undocumented, no entry
}

func TestSameTriad(t *testing.T) {
	assert.True(t, SameTriad("azul", "vermelho"))
	assert.False(t, SameTriad("azul", "bege"))
}

func TestLookupStyle_DefaultsWhenUnknown(t *testing.T) {
	assert.Equal(t, 0.4, LookupStyle("desconhecido", "classico"))
	assert.Equal(t, 1.0, LookupStyle("classico", "classico"))
}

func TestLookupOccasion_Symmetric(t *testing.T) {
	assert.Equal(t, LookupOccasion("casual", "formal"), LookupOccasion("formal", "casual"))
}

func TestLookupClimate_Symmetric(t *testing.T) {
	assert.Equal(t, LookupClimate("quente", "frio"), LookupClimate("frio", "quente"))
}

func TestLookupMaterialGroup_DefaultWhenUnknown(t *testing.T) {
	assert.Equal(t, 0.6, LookupMaterialGroup(MaterialGroup("x"), MaterialGroup("y")))
}

func TestLookupPattern_RangeAndLisoNeutral(t *testing.T) {
	assert.Equal(t, 0.0, LookupPattern("liso", "xadrez"))
	penalty := LookupPattern("xadrez", "poa")
	assert.LessOrEqual(t, penalty, 0.0)
	assert.GreaterOrEqual(t, penalty, -0.15)
}
