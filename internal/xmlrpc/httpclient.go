package xmlrpc

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single round trip when none is configured.
const DefaultTimeout = 30 * time.Second

// newHTTPClient creates an HTTP client for XML-RPC calls. The whole request
// is bounded by timeout; dialing and TLS get their own shorter limits.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dial := 10 * time.Second
	if timeout < dial {
		dial = timeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dial,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   dial,
		ResponseHeaderTimeout: timeout,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          4,
		MaxIdleConnsPerHost:   2,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
