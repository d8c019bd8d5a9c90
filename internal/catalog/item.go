// Package catalog defines the Item record and the normalizer/validator
// that turns a raw request payload into one.
package catalog

// Item is a single clothing/accessory record.
type Item struct {
	ItemID    string `json:"item_id"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
	Cor       string `json:"cor"`
	Padrao    string `json:"padrao"`
	Material  string `json:"material,omitempty"`
	Estilo    string `json:"estilo"`
	Ocasion   string `json:"ocasion"`
	Clima     string `json:"clima"`
	Paleta    string `json:"paleta"`
}

// Raw is the unvalidated item-creation payload Normalize accepts, plus an
// optional pre-existing item_id for upsert-by-id.
type Raw struct {
	ItemID    string `json:"item_id,omitempty"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
	Cor       string `json:"cor"`
	Padrao    string `json:"padrao,omitempty"`
	Material  string `json:"material,omitempty"`
	Estilo    string `json:"estilo,omitempty"`
	Ocasion   string `json:"ocasion,omitempty"`
	Clima     string `json:"clima,omitempty"`
}
