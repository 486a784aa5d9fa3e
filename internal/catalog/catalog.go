// Package catalog filtra, ordena e pagina o catálogo em memória.
// Todas as funções são puras: recebem o snapshot de produtos e devolvem
// uma visão derivada, sem tocar em I/O.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// PageSize é o tamanho fixo da página do catálogo.
const PageSize = 12

// Filter descreve os filtros ativos da vitrine. MinPrice/MaxPrice chegam
// como texto cru do formulário: valor não numérico significa "sem limite".
type Filter struct {
	CategoryID string
	Query      string
	MinPrice   string
	MaxPrice   string
	SortBy     SortKey
}

// Apply devolve os produtos que passam em todos os filtros, já ordenados.
// O slice de entrada não é modificado.
func Apply(products []models.Product, f Filter) []models.Product {
	query := strings.ToLower(f.Query)
	minPrice, hasMin := parsePrice(f.MinPrice)
	maxPrice, hasMax := parsePrice(f.MaxPrice)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if hasMin && p.Price < minPrice {
			continue
		}
		if hasMax && p.Price > maxPrice {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, f.SortBy)
	return out
}

// Page devolve a página pedida (1-indexada). Página fora do intervalo
// devolve um slice vazio, nunca erro.
func Page(items []models.Product, page int) []models.Product {
	if page < 1 {
		return []models.Product{}
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []models.Product{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages calcula ceil(n / PageSize). Zero itens = zero páginas
// (a vitrine trata como "nenhum resultado" e esconde a paginação).
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

func parsePrice(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// valor inválido no formulário = sem limite
		return 0, false
	}
	return v, true
}

func sortProducts(items []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(a, b int) bool { return items[a].Price < items[b].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(a, b int) bool { return items[a].Price > items[b].Price })
	case SortNameDesc:
		cl := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(items, func(a, b int) bool {
			return cl.CompareString(items[a].Name, items[b].Name) > 0
		})
	default:
		// name-asc é a ordenação padrão da vitrine
		cl := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(items, func(a, b int) bool {
			return cl.CompareString(items[a].Name, items[b].Name) < 0
		})
	}
}
