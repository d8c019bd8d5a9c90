// Package vocab holds the compile-time vocabularies and synonym tables the
// rest of the compatibility engine is built against. Nothing here is
// learned or mutated at runtime — weight tuning is a code change to this
// package, by design.
package vocab

// Categories is the closed set of garment categories.
var Categories = map[string]bool{
	"blusa": true, "jaqueta": true, "saia": true, "calca": true,
	"sapato": true, "bolsa": true, "acessorio": true,
}

// Patterns is the closed set of patterns.
var Patterns = map[string]bool{
	"liso": true, "listrado": true, "xadrez": true, "poa": true,
}

// Styles is the closed set of aesthetic styles.
var Styles = map[string]bool{
	"classico": true, "casual": true, "esportivo": true,
	"streetwear": true, "formal": true, "romantico": true,
}

// Occasions is the closed set of target occasions.
var Occasions = map[string]bool{
	"casual": true, "formal": true, "esportivo": true,
	"trabalho": true, "noite": true,
}

// Climates is the closed set of seasons/climates.
var Climates = map[string]bool{
	"quente": true, "frio": true, "meia-estacao": true,
}

// Colors is the closed set of colors.
var Colors = map[string]bool{
	"preto": true, "branco": true, "cinza": true, "nude": true,
	"bege": true, "marrom": true, "azul": true, "azul-escuro": true,
	"verde": true, "verde-agua": true, "ciano": true, "vermelho": true,
	"laranja": true, "amarelo": true, "rosa": true,
}

// Materials is the closed set of textiles/materials.
var Materials = map[string]bool{
	"algodao": true, "jeans": true, "couro": true, "seda": true,
	"linho": true, "la": true, "poliester": true, "malha": true,
	"metal": true,
}

// NeutralColors are colors treated as universally compatible.
var NeutralColors = map[string]bool{
	"preto": true, "branco": true, "cinza": true,
	"nude": true, "bege": true, "marrom": true,
}

// CategorySynonyms maps raw spellings to their canonical category.
var CategorySynonyms = map[string]string{
	"calça":   "calca",
	"calcas":  "calca",
	"calças":  "calca",
	"jacket":  "jaqueta",
	"bag":     "bolsa",
	"shoe":    "sapato",
	"sapatos": "sapato",
}

// ColorSynonyms maps raw spellings to their canonical color.
var ColorSynonyms = map[string]string{
	"beige":        "bege",
	"preto-fosco":  "preto",
	"branca":       "branco",
	"azul marinho": "azul-escuro",
	"marinho":      "azul-escuro",
	"verde agua":   "verde-agua",
	"verde-água":   "verde-agua",
	"vermelha":     "vermelho",
}

// MaterialSynonyms maps raw spellings to their canonical material.
var MaterialSynonyms = map[string]string{
	"algodão":   "algodao",
	"cotton":    "algodao",
	"leather":   "couro",
	"lã":        "la",
	"wool":      "la",
	"polyester": "poliester",
	"linen":     "linho",
	"silk":      "seda",
}

// Role identifies the outfit slot a category occupies.
type Role string

const (
	RoleTop       Role = "top"
	RoleBottom    Role = "bottom"
	RoleFoot      Role = "foot"
	RoleBag       Role = "bag"
	RoleAccessory Role = "accessory"
	RoleOnePiece  Role = "onepiece"
)

// CategoryRole maps a canonical category to its Role.
var CategoryRole = map[string]Role{
	"blusa":     RoleTop,
	"jaqueta":   RoleTop,
	"saia":      RoleBottom,
	"calca":     RoleBottom,
	"sapato":    RoleFoot,
	"bolsa":     RoleBag,
	"acessorio": RoleAccessory,
}

// SingletonRoles admit at most one item per outfit.
var SingletonRoles = map[Role]bool{
	RoleBottom:   true,
	RoleFoot:     true,
	RoleBag:      true,
	RoleOnePiece: true,
}

// RoleOf returns the Role for a canonical category, ok=false if unknown.
func RoleOf(categoria string) (Role, bool) {
	r, ok := CategoryRole[categoria]
	return r, ok
}

// MaterialGroup buckets materials into coarse compatibility groups.
type MaterialGroup string

const (
	GroupLeve    MaterialGroup = "leve"
	GroupPesado  MaterialGroup = "pesado"
	GroupTecnico MaterialGroup = "tecnico"
	GroupAcessorio MaterialGroup = "acessorio"
)

// MaterialGroupOf maps a canonical material to its MaterialGroup.
var MaterialGroupOf = map[string]MaterialGroup{
	"algodao":   GroupLeve,
	"seda":      GroupLeve,
	"linho":     GroupLeve,
	"malha":     GroupLeve,
	"jeans":     GroupPesado,
	"couro":     GroupPesado,
	"la":        GroupPesado,
	"poliester": GroupTecnico,
	"metal":     GroupAcessorio,
}
