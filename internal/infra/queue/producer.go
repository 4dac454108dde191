package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OutreachPayload carries an approved outreach draft to the delivery worker.
type OutreachPayload struct {
	LeadID     string `json:"lead_id"`
	LeadName   string `json:"lead_name"`
	Email      string `json:"email"`
	PropertyID string `json:"property_id,omitempty"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishOutreach(ctx context.Context, payload OutreachPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal outreach payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // drafts survive a broker restart
		},
	)
	if err != nil {
		return fmt.Errorf("publish outreach: %w", err)
	}

	return nil
}
