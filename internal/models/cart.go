package models

// CartItem é um snapshot do produto mais a quantidade pedida e as
// variações escolhidas (ex.: {"Cor": "Preto", "Tamanho": "M"}).
type CartItem struct {
	Product
	Quantity           int               `json:"quantity"`
	SelectedVariations map[string]string `json:"selectedVariations,omitempty"`
}

// SameLine compara duas linhas do carrinho: mesmo produto e mesmas
// variações, independente da ordem das chaves.
func (i CartItem) SameLine(productID string, variations map[string]string) bool {
	if i.Product.ID != productID {
		return false
	}
	return VariationsEqual(i.SelectedVariations, variations)
}

// VariationsEqual compara os mapas chave a chave (mapas vazios e nil são iguais).
func VariationsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if other, ok := b[k]; !ok || other != v {
			return false
		}
	}
	return true
}
