package oneandone

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultHost is the CloudPanel API endpoint
const DefaultHost = "cloudpanel-api.1and1.com"

const defaultTimeout = 30 * time.Second

// Connection wraps a single authenticated HTTP channel to the CloudPanel API.
// Every outgoing request carries the account token and a JSON content type.
type Connection struct {
	key        string
	host       string
	port       int
	secure     bool
	httpClient *http.Client
}

// NewConnection creates a connection for the given API token. An empty host
// selects DefaultHost; a zero port uses the scheme default.
func NewConnection(key, host string, port int, secure bool) *Connection {
	if host == "" {
		host = DefaultHost
	}
	return &Connection{
		key:    key,
		host:   host,
		port:   port,
		secure: secure,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// endpoint builds the full URL for a request path
func (c *Connection) endpoint(path string) string {
	scheme := "https"
	if !c.secure {
		scheme = "http"
	}
	host := c.host
	if c.port != 0 {
		host = fmt.Sprintf("%s:%d", c.host, c.port)
	}
	return scheme + "://" + host + path
}

// Request issues a single HTTP request and returns the buffered response.
// A non-nil body is JSON-encoded. Transport failures propagate unchanged;
// no retries are attempted.
func (c *Connection) Request(method, path string, body interface{}) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.endpoint(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-token", c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: resp.StatusCode, Body: raw}, nil
}
