package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/rabbitmq"
	"frontdesk/internal/domains/notification/dispatcher"
	"frontdesk/internal/domains/notification/model"
	"strings"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer drains dispatched notification events from the configured broker
// and hands each one to the deliverer.
type Consumer struct {
	config    *config.Config
	kafka     kafka.Client
	rabbit    rabbitmq.Client
	deliverer dispatcher.Deliverer
}

func New(cfg *config.Config, kafkaClient kafka.Client, rabbitClient rabbitmq.Client, deliverer dispatcher.Deliverer) *Consumer {
	return &Consumer{
		config:    cfg,
		kafka:     kafkaClient,
		rabbit:    rabbitClient,
		deliverer: deliverer,
	}
}

// Run blocks until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	transport := strings.ToLower(c.config.Notify.Transport)
	topic := c.config.Notify.Topic

	log.Info().Str("transport", transport).Str("topic", topic).Msg("Starting notification consumer.")

	switch transport {
	case dispatcher.TransportKafka:
		c.kafka.Consume(ctx, c.config.Kafka.ConsumerGroup, topic, func(message kafkaGo.Message) {
			event, err := kafka.Decode[model.Event](message)
			if err != nil {
				return
			}

			if err := c.handle(ctx, event); err != nil {
				log.Error().Err(err).Str("event_id", event.ID).Msg("failed to deliver notification")
			}
		})
	case dispatcher.TransportRabbitMQ:
		c.rabbit.Consume(ctx, topic, func(body []byte) error {
			var event model.Event

			if err := json.Unmarshal(body, &event); err != nil {
				return fmt.Errorf("failed to decode notification event: %w", err)
			}

			return c.handle(ctx, event)
		})
	default:
		return fmt.Errorf("notification transport %q has nothing to consume", c.config.Notify.Transport)
	}

	return nil
}

func (c *Consumer) handle(ctx context.Context, event model.Event) error {
	log.Debug().Str("event_id", event.ID).Str("kind", string(event.Kind)).Msg("Delivering notification.")

	if err := c.deliverer.Deliver(ctx, event); err != nil {
		return fmt.Errorf("failed to deliver event %s: %w", event.ID, err)
	}

	return nil
}
