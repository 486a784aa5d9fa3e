package models

type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

type Variation struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type Product struct {
	ID             string            `json:"id"`
	SKU            string            `json:"sku"`
	SkuPrefixID    string            `json:"skuPrefixId,omitempty"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	CategoryID     string            `json:"categoryId"`
	Images         []string          `json:"images"`
	Video          string            `json:"video,omitempty"`
	MinQuantity    int               `json:"minQuantity"`
	Stock          int               `json:"stock"`
	Featured       bool              `json:"featured"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Reviews        []Review          `json:"reviews"`
	Variations     []Variation       `json:"variations"`
}
