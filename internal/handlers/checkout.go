package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/cache"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/cart"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/checkout"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/config"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/database"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

type checkoutRequest struct {
	Items []models.CartItem `json:"items"`
}

// CheckoutQR devolve o PNG do QR code do pedido no WhatsApp. O carrinho
// passa pelo mesmo agregador da vitrine: pedido inválido não gera QR.
func CheckoutQR(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefixes, err := loadPrefixes(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler prefixos: " + err.Error()})
		return
	}

	summary := cart.Summarize(req.Items, prefixes, config.MinOrderValue())
	if summary.Empty {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Carrinho vazio"})
		return
	}
	if !summary.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "Pedido não atende os mínimos",
			"violations": summary.Violations,
		})
		return
	}

	message := checkout.BuildMessage(req.Items, summary.Subtotal)
	link := checkout.WhatsAppLink(config.WhatsAppPhone(), message)

	png, err := checkout.QRCode(link)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar QR code: " + err.Error()})
		return
	}

	c.Header("X-Whatsapp-Link", link)
	c.Data(http.StatusOK, "image/png", png)
}

func loadPrefixes(c *gin.Context) ([]models.SkuPrefix, error) {
	ctx := c.Request.Context()

	var cached []models.SkuPrefix
	if cache.GetList(ctx, cache.PrefixesKey, &cached) {
		return cached, nil
	}

	rows, err := database.Pool.Query(ctx,
		`SELECT id, name, prefix, COALESCE(min_quantity, 6) FROM sku_prefixes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prefixes := []models.SkuPrefix{}
	for rows.Next() {
		var p models.SkuPrefix
		if err := rows.Scan(&p.ID, &p.Name, &p.Prefix, &p.MinQuantity); err != nil {
			return nil, err
		}
		prefixes = append(prefixes, p)
	}
	return prefixes, rows.Err()
}
