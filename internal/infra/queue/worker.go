package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

var errMalformed = errors.New("malformed outreach event")

// NoteWriter grava a mensagem enviada como nota do contato no CRM.
type NoteWriter interface {
	Execute(ctx context.Context, input usecase.AddNoteInput) (*entity.Note, error)
}

type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel Consumer
	Notes   NoteWriter
}

func NewWorker(ch Consumer, notes NoteWriter) *Worker {
	return &Worker{
		Channel: ch,
		Notes:   notes,
	}
}

// Start consome a fila até o ctx ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Worker encerrado")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("canal de mensagens fechado")
			}
			w.handleDelivery(ctx, d)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	err := w.processMessage(ctx, d.Body)

	switch {
	case err == nil:
		d.Ack(false)
	case errors.Is(err, errMalformed):
		log.Printf("❌ [WORKER] JSON Inválido: %s", err)
		d.Nack(false, false)
	default:
		// sem retry: vai para a DLQ
		log.Printf("❌ [WORKER] Erro no CRM: %s", err)
		d.Nack(false, false)
	}
}

func (w *Worker) processMessage(ctx context.Context, body []byte) error {
	var event usecase.OutreachEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}

	if event.ContactID == "" {
		log.Printf("⚠️ [WORKER] Evento %s sem contato, ignorando", event.EventID)
		return nil
	}

	log.Printf("⚙️ [WORKER] Registrando outreach para %s (contato %s)", event.Name, event.ContactID)

	_, err := w.Notes.Execute(ctx, usecase.AddNoteInput{
		ContactID: event.ContactID,
		Text:      NoteText(event),
	})
	return err
}

func NoteText(event usecase.OutreachEvent) string {
	pitch := event.PitchType
	if pitch == "" {
		pitch = "outreach"
	}
	return fmt.Sprintf("Outreach (%s) - Subject: %s\n\n%s", pitch, event.Subject, event.Body)
}
