package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Nenhum arquivo .env encontrado — usando as variáveis de ambiente do sistema")
	} else {
		log.Println("✅ Arquivo .env carregado com sucesso")
	}
}

func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// WhatsAppPhone é o número que recebe os pedidos finalizados.
func WhatsAppPhone() string {
	return Getenv("WHATSAPP_PHONE", "5511977957131")
}

// MinOrderValue é o valor mínimo global do pedido em reais.
func MinOrderValue() float64 {
	raw := os.Getenv("MIN_ORDER_VALUE")
	if raw == "" {
		return 500.00
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		log.Printf("⚠️  MIN_ORDER_VALUE inválido (%q), usando 500.00", raw)
		return 500.00
	}
	return v
}

func JWTSecret() string {
	return Getenv("JWT_SECRET", "super_secret")
}

func AdminPassword() string {
	return Getenv("ADMIN_PASSWORD", "admin123")
}
