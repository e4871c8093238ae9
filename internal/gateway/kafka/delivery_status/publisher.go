package delivery_status

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"freightdesk/internal/entities"
)

const eventTypeHeader = "event-type"

type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishDeliveryStatusChanged keys the message by delivery id so every change
// of one delivery lands on the same partition in order.
func (p *Publisher) PublishDeliveryStatusChanged(ctx context.Context, change entities.DeliveryStatusChange) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish delivery %s: %w", change.DeliveryID, err)
	}

	payload, err := json.Marshal(fromDomain(change))
	if err != nil {
		return fmt.Errorf("encode delivery %s event: %w", change.DeliveryID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(change.DeliveryID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(eventTypeHeader), Value: []byte("delivery.status.changed")},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish delivery %s: %w", change.DeliveryID, err)
	}
	return nil
}
