// Package client provides the HTTP API client for lockmap-cli.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yndnr/lockmap-go/pkg/tsmap"
)

// Client talks to the lockmap-server HTTP API.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a new API client for the given server address.
func New(server string, timeout time.Duration) *Client {
	baseURL := server
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// KeyResult is the outcome of a key operation.
type KeyResult struct {
	Key      int64  `json:"key"`
	Value    *int64 `json:"value,omitempty"`
	Previous *int64 `json:"previous,omitempty"`
	Removed  *int64 `json:"removed,omitempty"`
	Existed  bool   `json:"existed"`
}

// DumpBucket is one non-empty bucket in the dump listing.
type DumpBucket struct {
	Bucket  int `json:"bucket"`
	Entries []struct {
		Key   int64 `json:"key"`
		Value int64 `json:"value"`
	} `json:"entries"`
}

// Get fetches the value stored under key.
func (c *Client) Get(ctx context.Context, key int64) (*KeyResult, error) {
	var out KeyResult
	if err := c.do(ctx, http.MethodGet, "/v1/keys/"+strconv.FormatInt(key, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Put stores value under key and reports the previous value, if any.
func (c *Client) Put(ctx context.Context, key, value int64) (*KeyResult, error) {
	var out KeyResult
	body := map[string]int64{"value": value}
	if err := c.do(ctx, http.MethodPut, "/v1/keys/"+strconv.FormatInt(key, 10), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes key and reports the value it held.
func (c *Client) Delete(ctx context.Context, key int64) (*KeyResult, error) {
	var out KeyResult
	if err := c.do(ctx, http.MethodDelete, "/v1/keys/"+strconv.FormatInt(key, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats fetches the server's counter snapshot.
func (c *Client) Stats(ctx context.Context) (*tsmap.Stats, error) {
	var out tsmap.Stats
	if err := c.do(ctx, http.MethodGet, "/v1/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dump fetches the diagnostic per-bucket listing.
func (c *Client) Dump(ctx context.Context) ([]DumpBucket, error) {
	var out struct {
		Buckets []DumpBucket `json:"buckets"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/dump", nil, &out); err != nil {
		return nil, err
	}
	return out.Buckets, nil
}

// Flush empties the map and returns the post-flush counters.
func (c *Client) Flush(ctx context.Context) (*tsmap.Stats, error) {
	var out tsmap.Stats
	if err := c.do(ctx, http.MethodPost, "/v1/flush", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks server liveness via the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}

// envelope is the server's standard response wrapper.
type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details any             `json:"details"`
}

// do performs one request and unmarshals the envelope's data field
// into target (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "lockmap-cli/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("parse response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		if env.Message != "" {
			return fmt.Errorf("[%s] %s", env.Code, env.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if target != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, target); err != nil {
			return fmt.Errorf("parse response data: %w", err)
		}
	}
	return nil
}
