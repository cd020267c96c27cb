package connection

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client talks to the EdgeRelay admin endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewTCP creates a client for an admin TCP address ("host:port").
func NewTCP(server string, timeout time.Duration) *Client {
	baseURL := server
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewSocket creates a client for the local admin socket.
func NewSocket(socketPath string, timeout time.Duration) *Client {
	return &Client{
		// The host is ignored when dialing a unix socket; it only has
		// to be syntactically valid.
		baseURL: "http://edgerelay-local",
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
					var d net.Dialer
					return d.DialContext(ctx, "unix", socketPath)
				},
			},
		},
	}
}

// Get issues a GET against an admin path (query included) and returns
// the status code and full response body.
func (c *Client) Get(ctx context.Context, pathAndQuery string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathAndQuery, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "edgerelay-cli/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// Command issues a GET and treats any non-200 as an error carrying the
// server's plaintext reason.
func (c *Client) Command(ctx context.Context, pathAndQuery string) ([]byte, error) {
	status, body, err := c.Get(ctx, pathAndQuery)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		reason := strings.TrimSpace(string(body))
		if reason == "" {
			reason = http.StatusText(status)
		}
		return nil, fmt.Errorf("server returned %d: %s", status, reason)
	}
	return body, nil
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}
