package models

// SkuPrefix agrupa produtos de um mesmo fornecedor pelo prefixo do SKU.
// MinQuantity é o mínimo de unidades somadas no carrinho para esse fornecedor.
type SkuPrefix struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Prefix      string `json:"prefix"`
	MinQuantity int    `json:"minQuantity"`
}
