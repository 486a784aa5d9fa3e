package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/config"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/database"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/handlers/product"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.InitSchema(ctx); err != nil {
		log.Fatalf("❌ Falha ao inicializar o banco: %v", err)
	}
	cancel()

	// ✅ Pré-aquece o cache Redis com as listas da vitrine
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 10*time.Second)
	product.WarmupCache(warmCtx)
	warmCancel()

	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Mestre do Atacado rodando na porta", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Servidor encerrou com erro: %v", err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()

	origins := os.Getenv("ALLOW_ORIGINS")
	if strings.TrimSpace(origins) == "" {
		// padrão para desenvolvimento local
		origins = "http://localhost:3000,http://localhost:5173"
	}
	cfg.AllowOrigins = strings.Split(origins, ",")
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	cfg.AllowCredentials = true
	return cfg
}
