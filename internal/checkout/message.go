// Package checkout monta a mensagem do pedido e o link do WhatsApp.
package checkout

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

// BuildMessage formata o pedido como uma única mensagem de texto.
// As linhas saem em ordem crescente de SKU (SKU vazio primeiro).
// Nunca falha: só é chamada atrás do veredito do agregador.
func BuildMessage(items []models.CartItem, total float64) string {
	sorted := make([]models.CartItem, len(items))
	copy(sorted, items)

	cl := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(sorted, func(a, b int) bool {
		return cl.CompareString(sorted[a].SKU, sorted[b].SKU) < 0
	})

	var b strings.Builder
	b.WriteString("*Olá! Gostaria de fazer o seguinte pedido:*\n\n")

	for _, item := range sorted {
		fmt.Fprintf(&b, "📦 *[%s] %dx %s*\n", item.SKU, item.Quantity, item.Name)
		if len(item.SelectedVariations) > 0 {
			fmt.Fprintf(&b, "   _Obs: %s_\n", formatVariations(item.SelectedVariations))
		}
		fmt.Fprintf(&b, "   Valor unit.: R$ %.2f\n", item.Price)
		fmt.Fprintf(&b, "   Subtotal: R$ %.2f\n\n", item.Price*float64(item.Quantity))
	}

	fmt.Fprintf(&b, "💰 *Total do Pedido: R$ %.2f*", total)
	return b.String()
}

// WhatsAppLink embute a mensagem percent-encodada no deep link wa.me.
func WhatsAppLink(phone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, encoded)
}

// formatVariations junta os pares "chave: valor" com " | ", em ordem de
// chave para a mensagem ser determinística.
func formatVariations(variations map[string]string) string {
	keys := make([]string, 0, len(variations))
	for k := range variations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, variations[k]))
	}
	return strings.Join(parts, " | ")
}
