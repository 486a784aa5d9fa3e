// Package cart concentra as regras do carrinho: mutações por snapshot
// (a mutação devolve um carrinho novo, nunca altera o recebido) e o
// agregador que agrupa por fornecedor e valida os mínimos do pedido.
package cart

import (
	"fmt"
	"math"
	"sort"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

// NoPrefixKey é a chave sentinela do grupo de itens sem fornecedor.
const NoPrefixKey = "sem-fornecedor"

// Add acrescenta um produto ao carrinho. Linhas iguais (mesmo produto e
// mesmas variações) acumulam quantidade.
func Add(items []models.CartItem, p models.Product, quantity int, variations map[string]string) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)

	for i := range out {
		if out[i].SameLine(p.ID, variations) {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, models.CartItem{
		Product:            p,
		Quantity:           quantity,
		SelectedVariations: variations,
	})
}

// Remove tira a linha do produto com as variações dadas.
func Remove(items []models.CartItem, productID string, variations map[string]string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.SameLine(productID, variations) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// UpdateQuantity define a quantidade da linha. Quantidade <= 0 remove a linha.
func UpdateQuantity(items []models.CartItem, productID string, quantity int, variations map[string]string) []models.CartItem {
	if quantity <= 0 {
		return Remove(items, productID, variations)
	}
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].SameLine(productID, variations) {
			out[i].Quantity = quantity
		}
	}
	return out
}

// Subtotal soma preço x quantidade de todas as linhas.
func Subtotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Group é o agregado de um fornecedor dentro do carrinho.
type Group struct {
	Items    []models.CartItem `json:"items"`
	Quantity int               `json:"quantity"`
	// Prefix é nil no grupo sentinela e quando o skuPrefixId não resolve
	// para nenhum cadastro (nesse caso o grupo fica isento do mínimo).
	Prefix *models.SkuPrefix `json:"prefix,omitempty"`
}

// Summary é o veredito do carrinho: agrupamento, subtotal e violações.
type Summary struct {
	Groups     map[string]Group `json:"groups"`
	Subtotal   float64          `json:"subtotal"`
	Violations []string         `json:"violations"`
	Valid      bool             `json:"valid"`
	Empty      bool             `json:"empty"`
}

// CanCheckout diz se o botão de finalizar pode ser habilitado.
// Carrinho vazio não é "inválido" — é um estado próprio, sem checkout.
func (s Summary) CanCheckout() bool {
	return s.Valid && !s.Empty
}

// Summarize recalcula o agregado do carrinho. Função total: qualquer
// entrada produz um Summary, nunca um erro.
func Summarize(items []models.CartItem, prefixes []models.SkuPrefix, minOrderValue float64) Summary {
	byID := make(map[string]*models.SkuPrefix, len(prefixes))
	for i := range prefixes {
		byID[prefixes[i].ID] = &prefixes[i]
	}

	groups := make(map[string]Group)
	for _, item := range items {
		key := item.SkuPrefixID
		if key == "" {
			key = NoPrefixKey
		}
		g := groups[key]
		g.Items = append(g.Items, item)
		g.Quantity += item.Quantity
		if key != NoPrefixKey {
			g.Prefix = byID[key]
		}
		groups[key] = g
	}

	subtotal := Subtotal(items)
	var violations []string

	if subtotal > 0 && subtotal < minOrderValue {
		missing := math.Round((minOrderValue-subtotal)*100) / 100
		violations = append(violations,
			fmt.Sprintf("Pedido abaixo do valor mínimo de R$ %.2f. Faltam R$ %.2f", minOrderValue, missing))
	}

	// Ordena as chaves para as mensagens saírem sempre na mesma ordem.
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		g := groups[key]
		if g.Prefix == nil {
			continue
		}
		if g.Quantity < g.Prefix.MinQuantity {
			violations = append(violations,
				fmt.Sprintf("Fornecedor %s exige no mínimo %d unidades. Faltam %d",
					g.Prefix.Name, g.Prefix.MinQuantity, g.Prefix.MinQuantity-g.Quantity))
		}
	}

	for _, item := range items {
		if item.MinQuantity > 0 && item.Quantity < item.MinQuantity {
			violations = append(violations,
				fmt.Sprintf("Produto %s (%s) exige no mínimo %d unidades",
					item.Name, item.SKU, item.MinQuantity))
		}
	}

	return Summary{
		Groups:     groups,
		Subtotal:   subtotal,
		Violations: violations,
		Valid:      len(violations) == 0,
		Empty:      len(items) == 0,
	}
}
