package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/mapper"
)

const (
	// LogonMethod authenticates and returns a session id.
	LogonMethod = "LogonXmlRpcService.logon"

	// LogoffMethod ends a session.
	LogoffMethod = "LogonXmlRpcService.logoff"

	// DefaultTTL is used when the server does not report a lifetime.
	DefaultTTL = 24 * time.Hour
)

// Config configures a Manager.
type Config struct {
	Username string
	Password string

	// DefaultTTL applies when logon returns a bare session id
	DefaultTTL time.Duration

	Logger *slog.Logger

	// Now returns the current time. Overridden by tests.
	Now func() time.Time
}

// Manager keeps at most one live session. The mutex only protects the
// stored value: concurrent renewals may each log on, and the last one to
// finish wins.
type Manager struct {
	caller   Caller
	username string
	password string
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger

	mu      sync.Mutex
	current Session
}

// NewManager creates a session manager that logs on through caller.
func NewManager(caller Caller, cfg Config) *Manager {
	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		caller:   caller,
		username: cfg.Username,
		password: cfg.Password,
		ttl:      ttl,
		now:      now,
		logger:   logger,
	}
}

// EnsureValid returns the current session, logging on first when there is
// none or it has expired.
func (m *Manager) EnsureValid(ctx context.Context) (Session, error) {
	current := m.Current()
	if current.Valid(m.now()) {
		return current, nil
	}
	if current.Credential != "" {
		m.logger.Info("session expired, re-authenticating", "expired_at", current.ExpiresAt)
	}
	return m.authenticate(ctx)
}

// Invalidate drops the current session so the next EnsureValid logs on.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.current = Session{}
	m.mu.Unlock()
}

// Current returns the stored session, which may be empty or expired.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Authenticated reports whether a non-expired session is held.
func (m *Manager) Authenticated() bool {
	return m.Current().Valid(m.now())
}

// Close logs off the current session, if any. Logoff failures are logged
// and not returned; the local session is dropped either way.
func (m *Manager) Close(ctx context.Context) error {
	current := m.Current()
	m.Invalidate()
	if current.Credential == "" {
		return nil
	}
	if _, err := m.caller.Call(ctx, LogoffMethod, []any{current.Credential}); err != nil {
		m.logger.Warn("logoff failed", "error", err)
		return nil
	}
	m.logger.Info("logged off")
	return nil
}

func (m *Manager) authenticate(ctx context.Context) (Session, error) {
	if m.username == "" {
		return Session{}, fmt.Errorf("%w: no username configured", domain.ErrAuthentication)
	}

	m.logger.Info("authenticating", "username", m.username)
	result, err := m.caller.Call(ctx, LogonMethod, []any{m.username, m.password})
	if err != nil {
		m.logger.Error("authentication failed", "username", m.username, "error", err)
		return Session{}, fmt.Errorf("%w: logon: %w", domain.ErrAuthentication, err)
	}

	credential, lifetime := parseLogon(result)
	if credential == "" {
		return Session{}, fmt.Errorf("%w: logon returned no session id", domain.ErrAuthentication)
	}
	if lifetime <= 0 {
		lifetime = m.ttl
	}

	s := Session{Credential: credential, ExpiresAt: m.now().Add(lifetime)}
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.logger.Info("authenticated", "expires_at", s.ExpiresAt)
	return s, nil
}

var logonAliases = mapper.Aliases{
	"sessionId": {"sessionId", "sessionID", "session_id", "id"},
	"lifetime":  {"expiresIn", "lifetime", "ttl"},
}

// parseLogon extracts the session id and, when reported, its lifetime in
// seconds from a logon response. Servers return either a bare string or a
// struct.
func parseLogon(v any) (string, time.Duration) {
	if s, ok := v.(string); ok {
		return s, 0
	}
	r, ok := mapper.AsRecord(v)
	if !ok {
		return "", 0
	}
	id, _ := r.Get(logonAliases, "sessionId")
	secs, _ := r.Get(logonAliases, "lifetime")
	return mapper.String(id), time.Duration(mapper.Int(secs, 0)) * time.Second
}
