package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/elysianestates/crm-api/internal/entity"
)

// OutreachMailer delivers an approved draft to the client.
type OutreachMailer interface {
	SendOutreach(to, name, subject, body string) error
}

// ActivityRecorder persists the interaction record once delivery succeeds.
type ActivityRecorder interface {
	Create(ctx context.Context, activity *entity.Activity) error
}

type Worker struct {
	Channel    *amqp.Channel
	Mailer     OutreachMailer
	Activities ActivityRecorder
}

func NewWorker(ch *amqp.Channel, mailer OutreachMailer, activities ActivityRecorder) *Worker {
	return &Worker{
		Channel:    ch,
		Mailer:     mailer,
		Activities: activities,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] failed to register outreach consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload OutreachPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed outreach payload: %s", err)
				// Poison message. Reject without requeue so it lands in the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("📤 [WORKER] delivering outreach to %s <%s>", payload.LeadName, payload.Email)

			if err := w.process(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] outreach delivery failed: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("✅ [WORKER] outreach delivered to %s", payload.LeadName)
			d.Ack(false)
		}
	}()

	log.Printf("👂 [WORKER] consuming %s", queueName)
	<-forever
}

func (w *Worker) process(ctx context.Context, payload OutreachPayload) error {
	if err := w.Mailer.SendOutreach(payload.Email, payload.LeadName, payload.Subject, payload.Body); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	activity, err := entity.NewActivity(payload.LeadID, entity.ActivityEmail, "Outreach sent: "+payload.Subject)
	if err != nil {
		return err
	}

	// Delivery already happened; a failed activity write is logged by the
	// caller but must not requeue the email.
	if err := w.Activities.Create(ctx, activity); err != nil {
		log.Printf("⚠️ [WORKER] outreach sent but activity not recorded: %s", err)
	}

	return nil
}
