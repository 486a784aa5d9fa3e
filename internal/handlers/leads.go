package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/database"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/utils"
)

// CreateLead recebe o formulário "Quero receber o catálogo" da landing
// page. O lead é gravado primeiro; webhook e e-mail são best-effort.
func CreateLead(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if lead.Nome == "" || lead.Whatsapp == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Os campos 'nome' e 'whatsapp' são obrigatórios"})
		return
	}
	lead.ID = uuid.NewString()

	_, err := database.Pool.Exec(c.Request.Context(),
		`INSERT INTO leads (id, nome, whatsapp, email, tipo_negocio) VALUES ($1, $2, $3, $4, $5)`,
		lead.ID, lead.Nome, lead.Whatsapp, lead.Email, lead.TipoNegocio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao registrar lead: " + err.Error()})
		return
	}

	go forwardLeadWebhook(lead)
	go func() {
		if err := utils.SendLeadNotification(lead); err != nil {
			log.Printf("⚠️  Falha ao enviar e-mail do lead %s: %v", lead.ID, err)
		}
	}()

	c.JSON(http.StatusCreated, gin.H{"id": lead.ID})
}

// forwardLeadWebhook repassa o lead para a automação de marketing.
func forwardLeadWebhook(lead models.Lead) {
	url := os.Getenv("LEAD_WEBHOOK_URL")
	if url == "" {
		return
	}

	payload, err := json.Marshal(map[string]string{
		"Nome":        lead.Nome,
		"Whatsapp":    lead.Whatsapp,
		"Email":       lead.Email,
		"TipoNegocio": lead.TipoNegocio,
	})
	if err != nil {
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("⚠️  Webhook de lead falhou: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("⚠️  Webhook de lead respondeu %d", resp.StatusCode)
	}
}
