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

// 🔵 Listar as categorias
func GetAllCategories(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Category
	if cache.GetList(ctx, cache.CategoriesKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := database.Pool.Query(ctx, `SELECT id, name, slug FROM categories ORDER BY name`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler categorias: " + err.Error()})
		return
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler categorias: " + err.Error()})
			return
		}
		cats = append(cats, cat)
	}

	cache.SetList(ctx, cache.CategoriesKey, cats, cache.CategoryCacheTTL)
	c.JSON(http.StatusOK, cats)
}

// 🟢 Criar uma categoria
func CreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if cat.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O campo 'name' é obrigatório"})
		return
	}
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	if cat.Slug == "" {
		cat.Slug = Slugify(cat.Name)
	}

	ctx := c.Request.Context()
	_, err := database.Pool.Exec(ctx,
		`INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)`,
		cat.ID, cat.Name, cat.Slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar categoria: " + err.Error()})
		return
	}

	cache.Invalidate(ctx, cache.CategoriesKey)
	c.JSON(http.StatusCreated, cat)
}

func UpdateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat.ID = c.Param("id")
	if cat.Slug == "" {
		cat.Slug = Slugify(cat.Name)
	}

	ctx := c.Request.Context()
	tag, err := database.Pool.Exec(ctx,
		`UPDATE categories SET name = $2, slug = $3 WHERE id = $1`,
		cat.ID, cat.Name, cat.Slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar categoria: " + err.Error()})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
		return
	}

	cache.Invalidate(ctx, cache.CategoriesKey)
	c.JSON(http.StatusOK, cat)
}

// Apagar categoria não apaga os produtos dela: eles ficam sem categoria
// até o admin reclassificar.
func DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := database.Pool.Exec(ctx,
		`UPDATE products SET category_id = NULL WHERE category_id = $1`, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao desvincular produtos: " + err.Error()})
		return
	}

	tag, err := database.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover categoria: " + err.Error()})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
		return
	}

	cache.Invalidate(ctx, cache.CategoriesKey, cache.ProductsKey)
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// Slugify gera o slug a partir do nome ("Calçados" -> "calcados").
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(
		"á", "a", "à", "a", "ã", "a", "â", "a",
		"é", "e", "ê", "e",
		"í", "i",
		"ó", "o", "ô", "o", "õ", "o",
		"ú", "u", "ü", "u",
		"ç", "c",
		" ", "-",
	)
	return replacer.Replace(slug)
}
