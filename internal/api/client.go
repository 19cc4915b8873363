// Package api is the gateway to the shop's remote REST service. Every call
// speaks JSON with the uniform {success, data, error} envelope and returns a
// tagged Result instead of a sentinel. There is no automatic retry and no
// backoff; cancellation is the caller's context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmoralesmx/cotizador/internal/httpx"
)

type Client struct {
	base string
	hc   *http.Client
}

// New builds a gateway client for the given base URL. A nil http.Client
// falls back to http.DefaultClient.
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: strings.TrimRight(base, "/"), hc: hc}
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.base + path
}

func Get[T any](ctx context.Context, c *Client, path string) Result[T] {
	return do[T](ctx, c, http.MethodGet, path, nil)
}

func Post[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return do[T](ctx, c, http.MethodPost, path, body)
}

func Put[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return do[T](ctx, c, http.MethodPut, path, body)
}

func Delete[T any](ctx context.Context, c *Client, path string) Result[T] {
	return do[T](ctx, c, http.MethodDelete, path, nil)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	var payload *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Err[T](fmt.Errorf("encode request: %w", err))
		}
		payload = bytes.NewReader(b)
	} else {
		payload = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), payload)
	if err != nil {
		return Err[T](fmt.Errorf("build request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return Err[T](fmt.Errorf("%w: %v", ErrConnectivity, err))
	}
	defer resp.Body.Close()

	env, err := httpx.Decode(resp.Body)
	if err != nil {
		if resp.StatusCode >= 400 {
			return Err[T](&Error{Status: resp.StatusCode})
		}
		return Err[T](fmt.Errorf("decode response: %w", err))
	}
	if resp.StatusCode >= 400 || !env.Success {
		return Err[T](&Error{Status: resp.StatusCode, Message: env.Error})
	}
	var out T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return Err[T](fmt.Errorf("decode data: %w", err))
		}
	}
	return Ok(out)
}
