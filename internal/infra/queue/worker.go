package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Mailer envia o email de confirmação de captura
type Mailer interface {
	SendConfirmation(to, name, portfolioType string) error
}

// OpsNotifier avisa a mesa de operações sobre pedidos de consultoria
type OpsNotifier interface {
	NotifyOps(name, phone, consultationType string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Mailer   Mailer
	Notifier OpsNotifier
}

func NewWorker(ch *amqp.Channel, mailer Mailer, notifier OpsNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Mailer:   mailer,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			log.Printf("📥 [WORKER] Mensagem recebida do RabbitMQ")

			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem malformada: rejeita sem requeue para não travar a fila
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Processando captura de %s (origem: %s)", payload.Email, payload.Origin)

			if err := w.ProcessMessage(payload); err != nil {
				log.Printf("❌ [WORKER] Erro no processamento: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Captura de %s processada", payload.Email)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

// ProcessMessage roteia o side effect pela origem da captura
func (w *Worker) ProcessMessage(payload LeadCapturedPayload) error {
	switch payload.Origin {
	case "waitlist":
		return w.Mailer.SendConfirmation(payload.Email, payload.Name, payload.PortfolioType)

	case "consultation":
		if err := w.Mailer.SendConfirmation(payload.Email, payload.Name, payload.PortfolioType); err != nil {
			return err
		}
		return w.Notifier.NotifyOps(payload.Name, payload.Phone, payload.ConsultationType)

	default:
		log.Printf("⚠️ Origem desconhecida: %s. Apenas logando.", payload.Origin)
		// Ack mesmo assim: não sabemos tratar, requeue só travaria a fila
		return nil
	}
}
