package catalog

import "github.com/pedrorafaeloficial/mestredoatacado/internal/models"

// View guarda o estado de navegação da vitrine: filtro ativo e página.
// Trocar qualquer filtro volta para a página 1, como no site.
type View struct {
	filter Filter
	page   int
}

func NewView() *View {
	return &View{page: 1}
}

func (v *View) Filter() Filter { return v.filter }
func (v *View) Page() int      { return v.page }

// SetFilter troca o filtro ativo. Qualquer mudança reseta a página.
func (v *View) SetFilter(f Filter) {
	if f != v.filter {
		v.filter = f
		v.page = 1
	}
}

func (v *View) SetPage(page int) {
	v.page = page
}

// Apply deriva a página visível do snapshot de produtos.
func (v *View) Apply(products []models.Product) (visible []models.Product, totalPages int) {
	filtered := Apply(products, v.filter)
	return Page(filtered, v.page), TotalPages(len(filtered))
}
