package dispatcher

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/rabbitmq"
	"frontdesk/internal/domains/notification/model"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	TransportKafka    = "kafka"
	TransportRabbitMQ = "rabbitmq"
	TransportNone     = "none"
)

// Deliverer pushes an event to its recipients. The worker and the in-process transport share it.
type Deliverer interface {
	Deliver(ctx context.Context, event model.Event) error
}

type kafkaTransport struct {
	client kafka.Client
	topic  string
}

type rabbitTransport struct {
	client rabbitmq.Client
	queue  string
}

type localTransport struct {
	deliverer Deliverer
}

// NewTransport picks the transport named by NOTIFY_TRANSPORT. Without a broker
// events are delivered in-process.
func NewTransport(cfg *config.Config, kafkaClient kafka.Client, rabbitClient rabbitmq.Client, deliverer Deliverer) Transport {
	switch strings.ToLower(cfg.Notify.Transport) {
	case TransportKafka:
		return &kafkaTransport{client: kafkaClient, topic: cfg.Notify.Topic}
	case TransportRabbitMQ:
		return &rabbitTransport{client: rabbitClient, queue: cfg.Notify.Topic}
	case TransportNone, "":
		return &localTransport{deliverer: deliverer}
	default:
		log.Warn().Str("transport", cfg.Notify.Transport).Msg("unknown notification transport, delivering in-process")

		return &localTransport{deliverer: deliverer}
	}
}

func (t *kafkaTransport) Publish(ctx context.Context, event model.Event) error {
	if err := t.client.SendMessages(ctx, t.topic, kafka.Message{Key: event.ID, Value: event}); err != nil {
		return fmt.Errorf("failed to publish event to kafka: %w", err)
	}

	return nil
}

func (t *rabbitTransport) Publish(ctx context.Context, event model.Event) error {
	if err := t.client.Publish(ctx, t.queue, event); err != nil {
		return fmt.Errorf("failed to publish event to rabbitmq: %w", err)
	}

	return nil
}

func (t *localTransport) Publish(ctx context.Context, event model.Event) error {
	if t.deliverer == nil {
		return nil
	}

	return t.deliverer.Deliver(ctx, event) //nolint:wrapcheck
}
