package product

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/cache"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/database"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

// defaultPrefixMinQuantity é o mínimo de unidades por fornecedor quando
// o cadastro não informa outro valor.
const defaultPrefixMinQuantity = 6

func GetAllSkuPrefixes(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.SkuPrefix
	if cache.GetList(ctx, cache.PrefixesKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := database.Pool.Query(ctx,
		`SELECT id, name, prefix, COALESCE(min_quantity, 6) FROM sku_prefixes ORDER BY prefix`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler prefixos: " + err.Error()})
		return
	}
	defer rows.Close()

	prefixes := []models.SkuPrefix{}
	for rows.Next() {
		var p models.SkuPrefix
		if err := rows.Scan(&p.ID, &p.Name, &p.Prefix, &p.MinQuantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler prefixos: " + err.Error()})
			return
		}
		prefixes = append(prefixes, p)
	}

	cache.SetList(ctx, cache.PrefixesKey, prefixes, cache.PrefixCacheTTL)
	c.JSON(http.StatusOK, prefixes)
}

func CreateSkuPrefix(c *gin.Context) {
	var p models.SkuPrefix
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O campo 'prefix' é obrigatório"})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	// Prefixo é sempre guardado em maiúsculas
	p.Prefix = strings.ToUpper(strings.TrimSpace(p.Prefix))
	if p.MinQuantity < 1 {
		p.MinQuantity = defaultPrefixMinQuantity
	}

	ctx := c.Request.Context()
	_, err := database.Pool.Exec(ctx,
		`INSERT INTO sku_prefixes (id, name, prefix, min_quantity) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Name, p.Prefix, p.MinQuantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar prefixo: " + err.Error()})
		return
	}

	cache.Invalidate(ctx, cache.PrefixesKey)
	c.JSON(http.StatusCreated, p)
}

func UpdateSkuPrefix(c *gin.Context) {
	var p models.SkuPrefix
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = c.Param("id")
	p.Prefix = strings.ToUpper(strings.TrimSpace(p.Prefix))
	if p.MinQuantity < 1 {
		p.MinQuantity = defaultPrefixMinQuantity
	}

	ctx := c.Request.Context()
	tag, err := database.Pool.Exec(ctx,
		`UPDATE sku_prefixes SET name = $2, prefix = $3, min_quantity = $4 WHERE id = $1`,
		p.ID, p.Name, p.Prefix, p.MinQuantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar prefixo: " + err.Error()})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prefixo não encontrado"})
		return
	}

	cache.Invalidate(ctx, cache.PrefixesKey)
	c.JSON(http.StatusOK, p)
}

func DeleteSkuPrefix(c *gin.Context) {
	ctx := c.Request.Context()

	// Produtos que apontavam para o prefixo ficam sem fornecedor — o
	// carrinho trata o grupo como isento de mínimo.
	if _, err := database.Pool.Exec(ctx,
		`UPDATE products SET sku_prefix_id = NULL WHERE sku_prefix_id = $1`, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao desvincular produtos: " + err.Error()})
		return
	}

	tag, err := database.Pool.Exec(ctx, `DELETE FROM sku_prefixes WHERE id = $1`, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover prefixo: " + err.Error()})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prefixo não encontrado"})
		return
	}

	cache.Invalidate(ctx, cache.PrefixesKey, cache.ProductsKey)
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
