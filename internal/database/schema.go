package database

import (
	"context"
	"log"
)

var initialCategories = []struct {
	ID   string
	Name string
	Slug string
}{
	{"1", "Moda", "moda"},
	{"2", "Eletrônicos", "eletronicos"},
	{"3", "Beleza", "beleza"},
	{"4", "Ferramentas", "ferramentas"},
	{"5", "Calçados", "calcados"},
	{"6", "Brinquedos", "brinquedos"},
}

// SKUs de demonstração de versões antigas que ainda podem existir no banco.
var legacyDemoSKUs = []string{"TSH-001", "AUD-002", "WAT-003", "BEA-004", "SHO-005", "BAG-006"}

// InitSchema cria as tabelas quando não existem e semeia as categorias
// iniciais. Produtos não são semeados: entram pelo painel admin.
func InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sku_prefixes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			prefix TEXT NOT NULL,
			min_quantity INTEGER DEFAULT 6
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			sku TEXT NOT NULL,
			sku_prefix_id TEXT REFERENCES sku_prefixes(id),
			name TEXT NOT NULL,
			description TEXT,
			price DECIMAL(10, 2) NOT NULL,
			category_id TEXT REFERENCES categories(id),
			images TEXT[],
			video TEXT,
			min_quantity INTEGER DEFAULT 1,
			stock INTEGER DEFAULT 0,
			featured BOOLEAN DEFAULT FALSE,
			specifications JSONB,
			reviews JSONB DEFAULT '[]',
			variations JSONB DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			nome TEXT NOT NULL,
			whatsapp TEXT NOT NULL,
			email TEXT,
			tipo_negocio TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := Pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	log.Println("✅ Tabelas verificadas")

	var count int
	if err := Pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		log.Println("🌱 Semeando categorias iniciais…")
		for _, c := range initialCategories {
			if _, err := Pool.Exec(ctx,
				`INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)`,
				c.ID, c.Name, c.Slug); err != nil {
				return err
			}
		}
	}

	// Limpa produtos de demonstração de versões antigas, se sobraram.
	for _, sku := range legacyDemoSKUs {
		if _, err := Pool.Exec(ctx, `DELETE FROM products WHERE sku = $1`, sku); err != nil {
			log.Printf("⚠️  Falha ao remover SKU de demonstração %s: %v", sku, err)
		}
	}

	log.Println("✅ Banco inicializado")
	return nil
}
