package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	responseFormat = "1.5.0"
	sdkName        = "salon-go"
	sdkVersion     = "1.0.0"
)

type Config struct {
	Endpoint  string
	ProjectID string
	Platform  string
	OS        string
	Timeout   time.Duration
}

// Client talks to a single Appwrite project. It is safe for concurrent use;
// WithSession returns a copy bound to one user session.
type Client struct {
	endpoint   string
	projectID  string
	platform   string
	os         string
	session    string
	httpClient *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	osName := cfg.OS
	if osName == "" {
		osName = "android"
	}

	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		projectID:  cfg.ProjectID,
		platform:   cfg.Platform,
		os:         osName,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithSession returns a copy of the client that authenticates as the given session.
func (c *Client) WithSession(secret string) *Client {
	cp := *c
	cp.session = secret
	return &cp
}

func (c *Client) Session() string {
	return c.session
}

func (c *Client) ProjectID() string {
	return c.projectID
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) origin() string {
	return fmt.Sprintf("appwrite-%s://%s", c.os, c.platform)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("appwrite: encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("appwrite: build request: %w", err)
	}

	req.Header.Set("X-Appwrite-Project", c.projectID)
	req.Header.Set("X-Appwrite-Response-Format", responseFormat)
	req.Header.Set("X-SDK-Name", sdkName)
	req.Header.Set("X-SDK-Version", sdkVersion)
	req.Header.Set("Origin", c.origin())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != "" {
		req.Header.Set("X-Appwrite-Session", c.session)
	}

	return req, nil
}

// call performs the request and decodes a JSON response into out (when non-nil).
// The raw *http.Response is returned with its body already consumed.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out interface{}) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("appwrite: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, fmt.Errorf("appwrite: read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 && resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(data, out); err != nil {
			return resp, fmt.Errorf("appwrite: decode response: %w", err)
		}
	}

	return resp, nil
}
