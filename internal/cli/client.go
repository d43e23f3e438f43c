package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	authDto "frontdesk/internal/domains/auth/model/dto"
	"frontdesk/shared/constant"
)

const (
	apiPrefix      = "/v1"
	requestTimeout = 30 * time.Second
)

// APIError is a non-2xx answer from the frontdesk API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return 0
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
	Message *string         `json:"message"`
}

// Client talks to the frontdesk API on behalf of the signed-in user.
type Client struct {
	server  string
	http    *http.Client
	session *Session
	// onRefresh persists tokens rotated after an expired access token.
	onRefresh func(Session) error
}

func NewClient(server string, session *Session, onRefresh func(Session) error) *Client {
	return &Client{
		server:    strings.TrimRight(server, "/"),
		http:      &http.Client{Timeout: requestTimeout},
		session:   session,
		onRefresh: onRefresh,
	}
}

// Do sends body as JSON and decodes the data member of the answer into out.
// An expired access token is refreshed once.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	err := c.do(ctx, method, path, query, body, out)
	if StatusOf(err) != http.StatusUnauthorized || c.session == nil || c.session.RefreshToken == "" {
		return err
	}

	if refreshErr := c.refresh(ctx); refreshErr != nil {
		return err
	}

	return c.do(ctx, method, path, query, body, out)
}

// Raw returns the undecoded body of a successful GET, used for rendered documents.
func (c *Client) Raw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeError(resp.StatusCode, raw)
	}

	return raw, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	endpoint := c.server + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if c.session != nil && c.session.AccessToken != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.session.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", c.server, err)
	}

	return resp, nil
}

func (c *Client) refresh(ctx context.Context) error {
	var res authDto.RefreshTokenResponse

	req := authDto.RefreshTokenRequest{RefreshToken: c.session.RefreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh-token", nil, req, &res); err != nil {
		return err
	}

	c.session.AccessToken = res.AccessToken
	c.session.RefreshToken = res.RefreshToken

	if c.onRefresh != nil {
		return c.onRefresh(*c.session)
	}

	return nil
}

func decodeError(status int, raw []byte) error {
	var env envelope

	message := http.StatusText(status)

	if err := json.Unmarshal(raw, &env); err == nil {
		switch {
		case env.Error != nil:
			message = *env.Error
		case env.Message != nil:
			message = *env.Message
		}
	}

	return &APIError{Status: status, Message: message}
}
