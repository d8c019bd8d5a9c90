package vocab

// Palette classifies a color into a coarse warm/cool/neutral bucket. It is a
// total function over Colors: every declared color has an entry, missing
// colors fall back to "neutra" in Palette().
var paletteOf = map[string]string{
	"preto":       "neutra",
	"branco":      "neutra",
	"cinza":       "neutra",
	"nude":        "neutra",
	"bege":        "neutra",
	"marrom":      "quente",
	"azul":        "fria",
	"azul-escuro": "fria",
	"verde":       "fria",
	"verde-agua":  "fria",
	"ciano":       "fria",
	"vermelho":    "quente",
	"laranja":     "quente",
	"amarelo":     "quente",
	"rosa":        "quente",
}

// Palette returns the warm/cool/neutral class for a color. A missing or
// unknown color yields "neutra".
func Palette(color string) string {
	if p, ok := paletteOf[color]; ok {
		return p
	}
	return "neutra"
}

// Analogous maps a color to the set of colors adjacent to it on the color
// wheel.
var Analogous = map[string][]string{
	"azul":        {"azul-escuro", "verde-agua", "ciano"},
	"azul-escuro": {"azul", "preto"},
	"verde":       {"verde-agua", "amarelo"},
	"verde-agua":  {"verde", "azul", "ciano"},
	"ciano":       {"azul", "verde-agua"},
	"vermelho":    {"laranja", "rosa"},
	"laranja":     {"vermelho", "amarelo"},
	"amarelo":     {"laranja", "verde"},
	"rosa":        {"vermelho", "nude"},
	"marrom":      {"bege", "laranja"},
	"bege":        {"marrom", "nude"},
	"nude":        {"bege", "rosa"},
}

// IsAnalogous reports whether b is in a's analogous set or vice versa.
func IsAnalogous(a, b string) bool {
	for _, c := range Analogous[a] {
		if c == b {
			return true
		}
	}
	for _, c := range Analogous[b] {
		if c == a {
			return true
		}
	}
	return false
}

// Complementary is a partial map: colors without a documented complement
// (e.g. amarelo) simply have no entry, and the complementary rule does not
// fire for them — the color-contribution check falls through to the next
// rule instead.
var Complementary = map[string]string{
	"azul":     "laranja",
	"laranja":  "azul",
	"vermelho": "verde",
	"verde":    "vermelho",
	"rosa":     "verde-agua",
	"verde-agua": "rosa",
	"ciano":    "vermelho",
}

// IsComplementary reports whether a and b are each other's complement.
func IsComplementary(a, b string) bool {
	return Complementary[a] == b || Complementary[b] == a
}

// Triads lists fixed 3-color harmonious sets.
var Triads = [][3]string{
	{"azul", "vermelho", "amarelo"},
	{"verde", "laranja", "azul-escuro"},
	{"rosa", "ciano", "bege"},
	{"marrom", "verde-agua", "laranja"},
}

// SameTriad reports whether a and b both appear in some Triad.
func SameTriad(a, b string) bool {
	for _, t := range Triads {
		hasA, hasB := false, false
		for _, c := range t {
			if c == a {
				hasA = true
			}
			if c == b {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}

// matrixLookup reads m[a][b], falling back to m[b][a], then to def. Every
// compatibility matrix in this package exposes this lookup(x, y, default)
// semantic.
func matrixLookup(m map[string]map[string]float64, a, b string, def float64) float64 {
	if row, ok := m[a]; ok {
		if v, ok := row[b]; ok {
			return v
		}
	}
	if row, ok := m[b]; ok {
		if v, ok := row[a]; ok {
			return v
		}
	}
	return def
}

// StyleMatrix scores how well two aesthetic styles pair. Default 0.4.
var StyleMatrix = map[string]map[string]float64{
	"classico": {
		"classico": 1.0, "casual": 0.75, "formal": 0.8, "romantico": 0.7,
		"esportivo": 0.35, "streetwear": 0.3,
	},
	"casual": {
		"casual": 1.0, "esportivo": 0.7, "streetwear": 0.75, "romantico": 0.55,
		"formal": 0.3,
	},
	"esportivo": {
		"esportivo": 1.0, "streetwear": 0.65, "formal": 0.15, "romantico": 0.2,
	},
	"streetwear": {
		"streetwear": 1.0, "formal": 0.2, "romantico": 0.3,
	},
	"formal": {
		"formal": 1.0, "romantico": 0.6,
	},
	"romantico": {
		"romantico": 1.0,
	},
}

// LookupStyle scores estiloA against estiloB, default 0.4.
func LookupStyle(a, b string) float64 { return matrixLookup(StyleMatrix, a, b, 0.4) }

// OccasionMatrix scores how well two occasions pair. Default 0.4.
var OccasionMatrix = map[string]map[string]float64{
	"casual": {
		"casual": 1.0, "esportivo": 0.7, "trabalho": 0.5, "formal": 0.25, "noite": 0.4,
	},
	"formal": {
		"formal": 1.0, "trabalho": 0.65, "noite": 0.75, "esportivo": 0.1,
	},
	"esportivo": {
		"esportivo": 1.0, "casual": 0.7, "trabalho": 0.2, "noite": 0.15,
	},
	"trabalho": {
		"trabalho": 1.0, "formal": 0.65, "casual": 0.5, "noite": 0.35,
	},
	"noite": {
		"noite": 1.0, "formal": 0.75, "casual": 0.4, "trabalho": 0.35,
	},
}

// LookupOccasion scores ocasionA against ocasionB, default 0.4.
func LookupOccasion(a, b string) float64 { return matrixLookup(OccasionMatrix, a, b, 0.4) }

// ClimateMatrix scores how well two climates pair. Default 0.4.
var ClimateMatrix = map[string]map[string]float64{
	"quente": {
		"quente": 1.0, "meia-estacao": 0.6, "frio": 0.15,
	},
	"frio": {
		"frio": 1.0, "meia-estacao": 0.6, "quente": 0.15,
	},
	"meia-estacao": {
		"meia-estacao": 1.0, "quente": 0.6, "frio": 0.6,
	},
}

// LookupClimate scores climaA against climaB, default 0.4.
func LookupClimate(a, b string) float64 { return matrixLookup(ClimateMatrix, a, b, 0.4) }

// materialMatrix scores how well two material groups pair. Default 0.6.
var materialMatrix = map[string]map[string]float64{
	"leve": {
		"leve": 0.85, "pesado": 0.55, "tecnico": 0.6, "acessorio": 0.8,
	},
	"pesado": {
		"pesado": 0.9, "tecnico": 0.5, "acessorio": 0.75,
	},
	"tecnico": {
		"tecnico": 0.8, "acessorio": 0.65,
	},
	"acessorio": {
		"acessorio": 0.8,
	},
}

// LookupMaterialGroup scores groupA against groupB, default 0.6.
func LookupMaterialGroup(a, b MaterialGroup) float64 {
	return matrixLookup(materialMatrix, string(a), string(b), 0.6)
}

// patternMatrix holds the pattern-clash penalty, in [-0.15, 0]. Default 0.0.
var patternMatrix = map[string]map[string]float64{
	"listrado": {
		"listrado": -0.05, "xadrez": -0.15, "poa": -0.1,
	},
	"xadrez": {
		"xadrez": -0.1, "poa": -0.15,
	},
	"poa": {
		"poa": -0.05,
	},
}

// LookupPattern returns the pattern-clash penalty for padraoA vs padraoB,
// default 0.0 (no clash — in particular, any pairing involving "liso" is 0).
func LookupPattern(a, b string) float64 { return matrixLookup(patternMatrix, a, b, 0.0) }
