// Package session owns the ad server login: it holds the current session
// credential, renews it when it has expired, and logs off on shutdown.
package session

import (
	"context"
	"time"
)

// Session is an authenticated ad server session.
type Session struct {
	// Credential is the opaque session id returned by logon
	Credential string `json:"-"`

	// ExpiresAt is when the credential is considered stale; zero means
	// no known expiry
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether s holds a credential that has not expired at now.
func (s Session) Valid(now time.Time) bool {
	if s.Credential == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

// Caller performs a raw XML-RPC call. The transport client satisfies it.
type Caller interface {
	Call(ctx context.Context, method string, params []any) (any, error)
}
