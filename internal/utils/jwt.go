package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/config"
)

// GenerateAdminJWT emite o token da sessão do painel admin (24h).
func GenerateAdminJWT() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret()))
}
