package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"frontdesk/config"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeJSON = "application/json"
	maxBackoff      = 30 * time.Second
)

var errDeliveriesClosed = errors.New("deliveries channel closed")

type Client interface {
	Publish(ctx context.Context, queue string, value any) error
	Consume(ctx context.Context, queue string, handler func(body []byte) error)
}

type rabbitClientImpl struct {
	config *config.Config
}

func New(config *config.Config) Client {
	return &rabbitClientImpl{config: config}
}

// Publish declares the durable queue and publishes value as a persistent JSON message.
func (r *rabbitClientImpl) Publish(ctx context.Context, queue string, value any) error {
	conn, err := amqp.Dial(r.config.RabbitMQ.URL)
	if err != nil {
		log.Error().Err(err).Msg("rabbitmq: dial failed")

		return fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		log.Error().Err(err).Msg("rabbitmq: channel open failed")

		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	defer channel.Close()

	if _, err = channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("rabbitmq: queue declare failed")

		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = channel.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("rabbitmq: publish failed")

		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Consume keeps a consumer attached to queue until ctx is done, reconnecting with backoff.
// Messages the handler fails on are rejected without requeue.
func (r *rabbitClientImpl) Consume(ctx context.Context, queue string, handler func(body []byte) error) {
	backoff := time.Second

	for ctx.Err() == nil {
		conn, err := amqp.Dial(r.config.RabbitMQ.URL)
		if err != nil {
			log.Error().Err(err).Dur("retry_in", backoff).Msg("rabbitmq: failed to dial broker")

			if !sleep(ctx, backoff) {
				return
			}

			backoff = min(backoff*2, maxBackoff)

			continue
		}

		backoff = time.Second

		err = r.consumeLoop(ctx, conn, queue, handler)
		conn.Close()

		if ctx.Err() != nil {
			log.Info().Str("queue", queue).Msg("rabbitmq: consumer stopped")

			return
		}

		log.Warn().Err(err).Msg("rabbitmq: consume loop ended, reconnecting")

		if !sleep(ctx, 2*time.Second) {
			return
		}
	}
}

func (r *rabbitClientImpl) consumeLoop(ctx context.Context, conn *amqp.Connection, queue string, handler func(body []byte) error) error {
	channel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer channel.Close()

	if err := channel.Qos(r.config.RabbitMQ.Prefetch, 0, false); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: set QoS failed")
	}

	if _, err = channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	deliveries, err := channel.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for delivery := range deliveries {
		if err := handler(delivery.Body); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("rabbitmq: handle message failed")

			_ = delivery.Nack(false, false)

			continue
		}

		_ = delivery.Ack(false)
	}

	return errDeliveriesClosed
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
