package product

import (
	"context"
	"log"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/cache"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/database"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

// WarmupCache pré-carrega as listas da vitrine no Redis para o primeiro
// visitante não pagar a consulta fria.
func WarmupCache(ctx context.Context) {
	products, err := queryProducts(ctx, "")
	if err != nil {
		log.Printf("⚠️  Warmup de produtos falhou: %v", err)
	} else {
		cache.SetList(ctx, cache.ProductsKey, products, cache.ProductCacheTTL)
	}

	rows, err := database.Pool.Query(ctx, `SELECT id, name, slug FROM categories ORDER BY name`)
	if err != nil {
		log.Printf("⚠️  Warmup de categorias falhou: %v", err)
		return
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug); err != nil {
			log.Printf("⚠️  Warmup de categorias falhou: %v", err)
			return
		}
		cats = append(cats, cat)
	}
	cache.SetList(ctx, cache.CategoriesKey, cats, cache.CategoryCacheTTL)

	log.Printf("🔥 Cache aquecido: %d produtos, %d categorias", len(products), len(cats))
}
