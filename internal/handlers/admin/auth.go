package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/config"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/utils"
)

type loginRequest struct {
	Password string `json:"password"`
}

// Login valida a senha compartilhada do painel e devolve o JWT da sessão.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.VerifyAdminPassword(req.Password, config.AdminPassword()) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha incorreta"})
		return
	}

	token, err := utils.GenerateAdminJWT()
	if err != nil {
		log.Printf("❌ Erro ao gerar JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
