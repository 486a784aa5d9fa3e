package product

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/cache"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/database"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

const productColumns = `id, sku, COALESCE(sku_prefix_id, ''), name, COALESCE(description, ''),
	price, COALESCE(category_id, ''), COALESCE(images, '{}'), COALESCE(video, ''),
	COALESCE(min_quantity, 1), COALESCE(stock, 0), COALESCE(featured, FALSE),
	COALESCE(specifications, '{}'), COALESCE(reviews, '[]'), COALESCE(variations, '[]')`

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.SKU, &p.SkuPrefixID, &p.Name, &p.Description,
		&p.Price, &p.CategoryID, &p.Images, &p.Video,
		&p.MinQuantity, &p.Stock, &p.Featured,
		&p.Specifications, &p.Reviews, &p.Variations)
	return p, err
}

func queryProducts(ctx context.Context, where string, args ...any) ([]models.Product, error) {
	rows, err := database.Pool.Query(ctx, `SELECT `+productColumns+` FROM products `+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// validateProduct garante o formato mínimo antes de gravar: é a mesma
// regra que a vitrine assume (toda foto de produto existe).
func validateProduct(p *models.Product) error {
	if p.SKU == "" {
		return errors.New("SKU é obrigatório")
	}
	if p.Name == "" {
		return errors.New("Nome é obrigatório")
	}
	if len(p.Images) == 0 || p.Images[0] == "" {
		return errors.New("Adicione pelo menos uma imagem")
	}
	if p.Price < 0 {
		return errors.New("Preço não pode ser negativo")
	}
	if p.MinQuantity < 1 {
		p.MinQuantity = 1
	}
	if p.Stock < 0 {
		return errors.New("Estoque não pode ser negativo")
	}
	return nil
}

func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	// ✅ Verifica o cache Redis
	var cached []models.Product
	if cache.GetList(ctx, cache.ProductsKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := queryProducts(ctx, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler produtos: " + err.Error()})
		return
	}

	cache.SetList(ctx, cache.ProductsKey, products, cache.ProductCacheTTL)
	c.JSON(http.StatusOK, products)
}

// GetFeaturedProducts alimenta a seção de destaques da landing page.
func GetFeaturedProducts(c *gin.Context) {
	products, err := queryProducts(c.Request.Context(), `WHERE featured = TRUE`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler destaques: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func GetProductByID(c *gin.Context) {
	row := database.Pool.QueryRow(c.Request.Context(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, c.Param("id"))

	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler produto: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateProduct(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// O painel pode mandar o id; sem id a gente gera.
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	ctx := c.Request.Context()
	_, err := database.Pool.Exec(ctx,
		`INSERT INTO products (id, sku, sku_prefix_id, name, description, price, category_id,
			images, video, min_quantity, stock, featured, specifications, reviews, variations)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8, NULLIF($9, ''),
			$10, $11, $12, $13, $14, $15)`,
		p.ID, p.SKU, p.SkuPrefixID, p.Name, p.Description, p.Price, p.CategoryID,
		p.Images, p.Video, p.MinQuantity, p.Stock, p.Featured,
		p.Specifications, p.Reviews, p.Variations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar produto: " + err.Error()})
		return
	}

	cache.Invalidate(ctx, cache.ProductsKey)
	c.JSON(http.StatusCreated, p)
}

func UpdateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = c.Param("id")
	if err := validateProduct(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	tag, err := database.Pool.Exec(ctx,
		`UPDATE products SET sku = $2, sku_prefix_id = NULLIF($3, ''), name = $4,
			description = $5, price = $6, category_id = NULLIF($7, ''), images = $8,
			video = NULLIF($9, ''), min_quantity = $10, stock = $11, featured = $12,
			specifications = $13, reviews = $14, variations = $15
		 WHERE id = $1`,
		p.ID, p.SKU, p.SkuPrefixID, p.Name, p.Description, p.Price, p.CategoryID,
		p.Images, p.Video, p.MinQuantity, p.Stock, p.Featured,
		p.Specifications, p.Reviews, p.Variations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar produto: " + err.Error()})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}

	cache.Invalidate(ctx, cache.ProductsKey)
	c.JSON(http.StatusOK, p)
}

func DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	tag, err := database.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover produto: " + err.Error()})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}

	cache.Invalidate(ctx, cache.ProductsKey)
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
