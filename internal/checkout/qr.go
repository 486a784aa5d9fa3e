package checkout

import (
	qrcode "github.com/skip2/go-qrcode"
)

// QRCode gera o PNG do QR code do link de checkout, para o cliente
// escanear e abrir a conversa no celular.
func QRCode(link string) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, 256)
}
