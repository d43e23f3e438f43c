package dispatcher

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"frontdesk/config"
	"frontdesk/internal/domains/notification/model"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultPublishTimeout = 5 * time.Second

// Transport hands an event to whatever delivers it.
type Transport interface {
	Publish(ctx context.Context, event model.Event) error
}

// Dispatcher accepts events without blocking the caller. Failures are logged and dropped.
type Dispatcher interface {
	Notify(ctx context.Context, event model.Event)
	// Wait blocks until every event handed to Notify so far has been published or dropped.
	Wait()
}

type dispatcherImpl struct {
	transport Transport
	timeout   time.Duration
	inflight  sync.WaitGroup
}

func New(transport Transport, cfg *config.Config) Dispatcher {
	timeout := time.Duration(cfg.Notify.PublishTimeout) * time.Second
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &dispatcherImpl{
		transport: transport,
		timeout:   timeout,
	}
}

func (d *dispatcherImpl) Notify(ctx context.Context, event model.Event) {
	d.inflight.Add(1)

	go func() {
		defer d.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("event_id", event.ID).Msg("notification transport panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := d.transport.Publish(ctx, event); err != nil {
			log.Error().Err(err).
				Str("event_id", event.ID).
				Str("kind", string(event.Kind)).
				Msg("failed to dispatch notification")

			return
		}

		log.Debug().Str("event_id", event.ID).Str("kind", string(event.Kind)).Msg("notification dispatched")
	}()
}

func (d *dispatcherImpl) Wait() {
	d.inflight.Wait()
}
