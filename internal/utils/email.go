package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/config"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

// SendLeadNotification avisa a equipe comercial que chegou um pedido de
// catálogo. Sem SMTP_HOST configurado o envio é pulado em silêncio.
func SendLeadNotification(lead models.Lead) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	to := config.Getenv("LEAD_NOTIFY_EMAIL", "contato@mestredoatacado.com.br")

	msg := mail.NewMsg()
	if err := msg.From(config.Getenv("SMTP_FROM", "noreply@mestredoatacado.com.br")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Novo pedido de catálogo — " + lead.Nome)
	msg.SetBodyString(mail.TypeTextHTML, leadNotificationHTML(lead))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Enviando notificação de lead para", to)
	return client.DialAndSend(msg)
}

func leadNotificationHTML(lead models.Lead) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Novo pedido de catálogo</h2>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr><td><b>Nome</b></td><td>%s</td></tr>
			<tr><td><b>WhatsApp</b></td><td>%s</td></tr>
			<tr><td><b>E-mail</b></td><td>%s</td></tr>
			<tr><td><b>Tipo de negócio</b></td><td>%s</td></tr>
		</table>
	</div>
</body>
</html>`, lead.Nome, lead.Whatsapp, lead.Email, lead.TipoNegocio)
}
