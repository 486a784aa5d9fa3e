// Package cache guarda as listas do catálogo no Redis para tirar carga
// do Postgres nas leituras da vitrine.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/database"
)

const (
	ProductCacheTTL  = 10 * time.Minute
	CategoryCacheTTL = time.Hour
	PrefixCacheTTL   = time.Hour

	ProductsKey   = "products:all"
	CategoriesKey = "categories:all"
	PrefixesKey   = "sku_prefixes:all"
)

// GetList tenta carregar uma lista do Redis. Qualquer erro (cache frio,
// Redis fora) só significa "sem cache".
func GetList(ctx context.Context, key string, dest any) bool {
	if database.RedisClient == nil {
		return false
	}
	val, err := database.RedisClient.Get(ctx, key).Result()
	if err != nil || val == "" {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// SetList grava a lista no Redis. Falha é ignorada: cache é best-effort.
func SetList(ctx context.Context, key string, value any, ttl time.Duration) {
	if database.RedisClient == nil {
		return
	}
	if data, err := json.Marshal(value); err == nil {
		database.RedisClient.Set(ctx, key, data, ttl)
	}
}

// Invalidate derruba as chaves depois de uma mutação do admin.
func Invalidate(ctx context.Context, keys ...string) {
	if database.RedisClient == nil || len(keys) == 0 {
		return
	}
	database.RedisClient.Del(ctx, keys...)
}
