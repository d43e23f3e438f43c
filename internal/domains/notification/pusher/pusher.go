package pusher

//go:generate go run go.uber.org/mock/mockgen -source=./pusher.go -destination=./mocks/pusher_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/notification/model"
	"frontdesk/shared/constant"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// ErrEndpointGone means the endpoint no longer accepts pushes and its subscription should be dropped.
var ErrEndpointGone = errors.New("push endpoint is gone")

type Pusher interface {
	Push(ctx context.Context, endpoint string, event model.Event) error
}

type httpPusher struct {
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Pusher {
	timeout := defaultTimeout
	if cfg.Notify.PushTimeout > 0 {
		timeout = time.Duration(cfg.Notify.PushTimeout) * time.Second
	}

	return &httpPusher{
		client: &http.Client{Timeout: timeout},
		otel:   otel,
	}
}

// Push POSTs the event as JSON to endpoint.
func (p *httpPusher) Push(ctx context.Context, endpoint string, event model.Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".push")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to push event: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("%w: status %d", ErrEndpointGone, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("push endpoint answered status %d", resp.StatusCode)
	}

	return nil
}
