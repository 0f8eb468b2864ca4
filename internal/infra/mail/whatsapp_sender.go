package mail

import (
	"log"
	"os"

	"github.com/quantbroker/leads-api/internal/infra/integration/whatsapp"
)

// WhatsAppSender avisa a mesa de operações quando chega pedido de consultoria.
// Falha de envio é logada e engolida: a notificação é best-effort.
type WhatsAppSender struct {
	client *whatsapp.Client
}

func NewWhatsAppSender(client *whatsapp.Client) *WhatsAppSender {
	return &WhatsAppSender{
		client: client,
	}
}

func (s *WhatsAppSender) NotifyOps(name, phone, consultationType string) error {
	opsNumber := os.Getenv("WHATSAPP_OPS_NUMBER")
	if opsNumber == "" || name == "" {
		log.Printf("⚠️ WhatsApp: Dados incompletos para notificar ops (ops: %s, name: %s)", opsNumber, name)
		return nil
	}

	input := whatsapp.SendMessageInput{
		PhoneNumber:  opsNumber,
		TemplateName: "consultation_alert",
		Parameters:   []string{name, phone, consultationType},
	}

	if err := s.client.SendMessage(input); err != nil {
		log.Printf("⚠️ WhatsApp: Falha ao notificar ops sobre %s: %v", name, err)
		return nil
	}

	return nil
}
