package xmlrpc

import (
	"fmt"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

// Fault is an XML-RPC fault returned by the server. The call reached the
// server and was rejected there.
type Fault struct {
	Method  string
	Code    int
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: fault %d: %s", f.Method, f.Code, f.Message)
}

// Unwrap lets errors.Is(err, domain.ErrRemoteFault) match.
func (f *Fault) Unwrap() error {
	return domain.ErrRemoteFault
}

// StatusError is a non-2xx HTTP response from the endpoint.
type StatusError struct {
	Method string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: http status %d", e.Method, e.Code)
	}
	return fmt.Sprintf("%s: http status %d: %s", e.Method, e.Code, e.Body)
}

// Unwrap lets errors.Is(err, domain.ErrTransport) match.
func (e *StatusError) Unwrap() error {
	return domain.ErrTransport
}
