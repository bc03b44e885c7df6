// Package xmlrpc carries method calls to the ad server's XML-RPC endpoint.
// It performs one HTTP round trip per call and never retries.
package xmlrpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	kxmlrpc "github.com/kolo/xmlrpc"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

const (
	// DefaultUserAgent identifies the client to the ad server.
	DefaultUserAgent = "revive-mcp/1.0"

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 32 << 20

	// maxErrorBody caps the body excerpt kept on a StatusError.
	maxErrorBody = 512
)

// Config configures a Client.
type Config struct {
	URL        string
	UserAgent  string
	Timeout    time.Duration
	Resilience ResilienceConfig

	// HTTPClient overrides the tuned default client. Used by tests.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client is the XML-RPC transport.
type Client struct {
	url        string
	userAgent  string
	httpClient *http.Client
	guard      *guard
	logger     *slog.Logger
}

// NewClient creates a client for the endpoint in cfg.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, domain.Required("api_url")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, domain.Invalid("api_url", "must be an absolute http(s) URL, got %q", cfg.URL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(cfg.Timeout)
	}

	return &Client{
		url:        u.String(),
		userAgent:  userAgent,
		httpClient: httpClient,
		guard:      newGuard(u.Host, cfg.Resilience, logger),
		logger:     logger,
	}, nil
}

// Call invokes method with positional params and returns the decoded
// result: map[string]any for structs, []any for arrays, and int64,
// float64, bool, string or time.Time for scalars.
//
// Failures are classified as:
//   - *StatusError or domain.ErrTransport when the HTTP exchange failed
//   - *Fault when the server answered with an XML-RPC fault
//   - domain.ErrProtocol when the payload could not be encoded or decoded
func (c *Client) Call(ctx context.Context, method string, params []any) (any, error) {
	body, err := kxmlrpc.EncodeMethodCall(method, params...)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %v", domain.ErrProtocol, method, err)
	}

	start := time.Now()
	data, err := c.guard.do(ctx, func(ctx context.Context) ([]byte, error) {
		return c.post(ctx, method, body)
	})
	if err != nil {
		c.logger.Debug("xmlrpc call failed", "method", method, "duration", time.Since(start), "error", err)
		return nil, err
	}
	c.logger.Debug("xmlrpc call", "method", method, "duration", time.Since(start), "bytes", len(data))

	resp := kxmlrpc.Response(data)
	if err := resp.Err(); err != nil {
		var fault kxmlrpc.FaultError
		if errors.As(err, &fault) {
			return nil, &Fault{Method: method, Code: fault.Code, Message: fault.String}
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrProtocol, method, err)
	}

	var result any
	if err := resp.Unmarshal(&result); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrProtocol, method, err)
	}
	return result, nil
}

// ListMethods returns the method names the endpoint advertises.
func (c *Client) ListMethods(ctx context.Context) ([]string, error) {
	result, err := c.Call(ctx, "system.listMethods", nil)
	if err != nil {
		return nil, err
	}
	items, ok := result.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: system.listMethods: expected array, got %T", domain.ErrProtocol, result)
	}
	methods := make([]string, 0, len(items))
	for _, item := range items {
		if name, ok := item.(string); ok {
			methods = append(methods, name)
		}
	}
	return methods, nil
}

// Close releases the client's resources.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return c.guard.Close()
}

func (c *Client) post(ctx context.Context, method string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrTransport, method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Method: method,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(excerpt)),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %v", domain.ErrTransport, method, err)
	}
	return data, nil
}
