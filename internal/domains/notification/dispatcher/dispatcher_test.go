package dispatcher_test

import (
	"context"
	"errors"
	"frontdesk/config"
	"frontdesk/infras/kafka"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	rabbitMocks "frontdesk/infras/rabbitmq/mocks"
	"frontdesk/internal/domains/notification/dispatcher"
	"frontdesk/internal/domains/notification/dispatcher/mocks"
	"frontdesk/internal/domains/notification/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type delivererFunc func(ctx context.Context, event model.Event) error

func (f delivererFunc) Deliver(ctx context.Context, event model.Event) error {
	return f(ctx, event)
}

func TestNotifyPublishesInBackground(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)

	event := model.NewEvent(model.KindReservationCheckedIn, "staff1", time.Now())
	published := make(chan model.Event, 1)

	transport.EXPECT().Publish(gomock.Any(), event).DoAndReturn(func(ctx context.Context, e model.Event) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)

		published <- e

		return nil
	})

	d := dispatcher.New(transport, &config.Config{})

	ctx, cancel := context.WithCancel(context.Background())
	d.Notify(ctx, event)
	cancel()
	d.Wait()

	assert.Equal(t, event, <-published)
}

func TestNotifySwallowsTransportErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)

	transport.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(2)

	d := dispatcher.New(transport, &config.Config{})
	d.Notify(context.Background(), model.NewEvent(model.KindReservationCreated, "a", time.Now()))
	d.Notify(context.Background(), model.NewEvent(model.KindReservationCheckedOut, "b", time.Now()))

	assert.NotPanics(t, d.Wait)
}

func TestNewTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	rabbitClient := rabbitMocks.NewMockClient(ctrl)
	event := model.NewEvent(model.KindDutyRequested, "john", time.Now())

	t.Run("kafka", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Notify.Transport = dispatcher.TransportKafka
		cfg.Notify.Topic = "events"

		kafkaClient.EXPECT().SendMessages(gomock.Any(), "events", kafka.Message{Key: event.ID, Value: event}).Return(nil)

		assert.NoError(t, dispatcher.NewTransport(cfg, kafkaClient, rabbitClient, nil).Publish(context.Background(), event))
	})

	t.Run("rabbitmq", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Notify.Transport = "RabbitMQ"
		cfg.Notify.Topic = "events"

		rabbitClient.EXPECT().Publish(gomock.Any(), "events", event).Return(errors.New("closed"))

		assert.Error(t, dispatcher.NewTransport(cfg, kafkaClient, rabbitClient, nil).Publish(context.Background(), event))
	})

	t.Run("in-process", func(t *testing.T) {
		cfg := &config.Config{}
		delivered := []string{}

		deliverer := delivererFunc(func(_ context.Context, e model.Event) error {
			delivered = append(delivered, e.ID)

			return nil
		})

		assert.NoError(t, dispatcher.NewTransport(cfg, kafkaClient, rabbitClient, deliverer).Publish(context.Background(), event))
		assert.Equal(t, []string{event.ID}, delivered)
	})
}
