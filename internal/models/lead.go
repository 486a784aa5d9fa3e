package models

// Lead é um pedido de catálogo enviado pelo formulário da landing page.
type Lead struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	Whatsapp    string `json:"whatsapp"`
	Email       string `json:"email"`
	TipoNegocio string `json:"tipoNegocio"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
