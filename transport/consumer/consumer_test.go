package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	rabbitMocks "frontdesk/infras/rabbitmq/mocks"
	"frontdesk/internal/domains/notification/model"
	serviceMocks "frontdesk/internal/domains/notification/service/mocks"
	"frontdesk/transport/consumer"
)

func newConfig(transport string) *config.Config {
	cfg := &config.Config{}
	cfg.Notify.Transport = transport
	cfg.Notify.Topic = "frontdesk.notifications"
	cfg.Kafka.ConsumerGroup = "frontdesk-worker"

	return cfg
}

func TestConsumer_RunKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	rabbitClient := rabbitMocks.NewMockClient(ctrl)
	deliverer := serviceMocks.NewMockNotification(ctrl)

	event := model.NewEvent(model.KindReservationCheckedIn, "john", time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	value, err := json.Marshal(event)
	require.NoError(t, err)

	kafkaClient.EXPECT().Consume(gomock.Any(), "frontdesk-worker", "frontdesk.notifications", gomock.Any()).
		Do(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
			handler(kafkaGo.Message{Value: []byte("not json")})
			handler(kafkaGo.Message{Key: []byte(event.ID), Value: value})
		})

	deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got model.Event) error {
		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, event.Kind, got.Kind)
		assert.True(t, event.Timestamp.Equal(got.Timestamp))

		return nil
	})

	svc := consumer.New(newConfig("kafka"), kafkaClient, rabbitClient, deliverer)
	require.NoError(t, svc.Run(context.Background()))
}

func TestConsumer_RunRabbitMQ(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	rabbitClient := rabbitMocks.NewMockClient(ctrl)
	deliverer := serviceMocks.NewMockNotification(ctrl)

	event := model.NewEvent(model.KindDutyRequested, "john", time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	event.Recipient = "sarah"
	body, err := json.Marshal(event)
	require.NoError(t, err)

	var results []error

	rabbitClient.EXPECT().Consume(gomock.Any(), "frontdesk.notifications", gomock.Any()).
		Do(func(_ context.Context, _ string, handler func([]byte) error) {
			results = append(results, handler([]byte("{")), handler(body), handler(body))
		})

	gomock.InOrder(
		deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil),
		deliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.New("store down")),
	)

	svc := consumer.New(newConfig("RabbitMQ"), kafkaClient, rabbitClient, deliverer)
	require.NoError(t, svc.Run(context.Background()))

	require.Len(t, results, 3)
	require.Error(t, results[0])
	require.NoError(t, results[1])
	require.Error(t, results[2])
}

func TestConsumer_RunWithoutBroker(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := consumer.New(newConfig("none"), kafkaMocks.NewMockClient(ctrl), rabbitMocks.NewMockClient(ctrl), serviceMocks.NewMockNotification(ctrl))
	require.Error(t, svc.Run(context.Background()))
}
