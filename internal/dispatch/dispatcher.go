// Package dispatch issues authenticated ad server calls. Each call carries
// the session credential as its first parameter; a call rejected for
// authentication is retried exactly once on a fresh session.
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/felixgeelhaar/revive-mcp/internal/session"
	"github.com/felixgeelhaar/revive-mcp/internal/xmlrpc"
)

// Transport performs a raw XML-RPC call.
type Transport interface {
	Call(ctx context.Context, method string, params []any) (any, error)
}

// Sessions provides session credentials.
type Sessions interface {
	EnsureValid(ctx context.Context) (session.Session, error)
	Invalidate()
}

// Dispatcher routes service calls through the current session.
type Dispatcher struct {
	transport Transport
	sessions  Sessions
	logger    *slog.Logger
}

// New creates a Dispatcher.
func New(transport Transport, sessions Sessions, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		transport: transport,
		sessions:  sessions,
		logger:    logger,
	}
}

// Invoke calls service.method with the session credential prepended to
// params. At most two RPCs are issued: the original and, after an
// authentication failure, one retry on a renewed session. The retry's
// outcome is final.
func (d *Dispatcher) Invoke(ctx context.Context, service, method string, params ...any) (any, error) {
	name := service + "." + method

	s, err := d.sessions.EnsureValid(ctx)
	if err != nil {
		return nil, err
	}

	result, err := d.transport.Call(ctx, name, withCredential(s.Credential, params))
	if err == nil || !IsAuthFailure(err) {
		return result, err
	}

	d.logger.Info("authentication error detected, retrying with fresh session",
		"method", name, "error", err)
	d.sessions.Invalidate()

	s, err = d.sessions.EnsureValid(ctx)
	if err != nil {
		return nil, err
	}
	return d.transport.Call(ctx, name, withCredential(s.Credential, params))
}

func withCredential(credential string, params []any) []any {
	out := make([]any, 0, len(params)+1)
	out = append(out, credential)
	return append(out, params...)
}

// authFaultPatterns match fault messages the ad server uses for a missing,
// expired or rejected session.
var authFaultPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)authenticat`),
	regexp.MustCompile(`(?i)unauthori[sz]ed`),
	regexp.MustCompile(`(?i)session id is invalid`),
	regexp.MustCompile(`(?i)invalid session`),
	regexp.MustCompile(`(?i)session (has )?expired`),
	regexp.MustCompile(`(?i)not logged in`),
}

// IsAuthFailure reports whether err means the session was rejected: an
// HTTP 401 from the endpoint, or a fault whose message names an
// authentication or session problem.
func IsAuthFailure(err error) bool {
	var status *xmlrpc.StatusError
	if errors.As(err, &status) {
		return status.Code == http.StatusUnauthorized
	}
	var fault *xmlrpc.Fault
	if errors.As(err, &fault) {
		for _, p := range authFaultPatterns {
			if p.MatchString(fault.Message) {
				return true
			}
		}
	}
	return false
}
