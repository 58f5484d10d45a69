// Package graphql implements the gateway's only collaborator: the remote
// GraphQL backend. The transport is a single JSON POST per operation; the
// interesting part is the typed error payload, which the handlers' flash
// logic keys on (see errors.go).
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/symmetrical-potato/web/internal/api/metrics"
)

const requestTimeout = 15 * time.Second

// Client calls the backend GraphQL endpoint. A Client is immutable; use
// WithBearer to derive a per-request client bound to a token.
type Client struct {
	endpoint   string
	httpClient *http.Client
	bearer     string
	log        zerolog.Logger
}

// NewClient returns an anonymous client for the given endpoint URL.
func NewClient(endpoint string, log zerolog.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
		log:        log,
	}
}

// WithBearer derives a client that attaches the given Authorization header
// value to every call. An empty bearer yields an anonymous client.
func (c *Client) WithBearer(bearer string) *Client {
	clone := *c
	clone.bearer = bearer
	return &clone
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ErrorEntry    `json:"errors"`
}

// Do executes one named operation. When the backend returns a non-empty
// error list the result is a *APIError; transport and decoding failures are
// plain errors. out may be nil for mutations whose payload is ignored.
func (c *Client) Do(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	start := time.Now()
	err := c.do(ctx, query, vars, out)
	metrics.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		kind := "transport"
		if _, ok := AsAPIError(err); ok {
			kind = "api"
		}
		metrics.BackendErrorsTotal.WithLabelValues(operation, kind).Inc()
		c.log.Debug().Err(err).Str("operation", operation).Msg("backend call failed")
	}
	return err
}

func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.bearer != "" {
		req.Header.Set("Authorization", c.bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return &APIError{Entries: envelope.Errors}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
