package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/session"
	"github.com/felixgeelhaar/revive-mcp/internal/xmlrpc"
)

// fakeTransport answers logon with numbered session ids and service calls
// from a script of errors; once the script is exhausted calls succeed.
type fakeTransport struct {
	mu     sync.Mutex
	logons int
	rpcs   int
	script []error
	seen   [][]any
}

func (f *fakeTransport) Call(_ context.Context, method string, params []any) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if method == session.LogonMethod {
		f.logons++
		return fmt.Sprintf("sess-%d", f.logons), nil
	}
	f.rpcs++
	f.seen = append(f.seen, params)
	if len(f.script) > 0 {
		err := f.script[0]
		f.script = f.script[1:]
		if err != nil {
			return nil, err
		}
	}
	return map[string]any{"ok": true}, nil
}

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func setup(script ...error) (*Dispatcher, *fakeTransport, *session.Manager, *clock) {
	ft := &fakeTransport{script: script}
	clk := &clock{t: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	sm := session.NewManager(ft, session.Config{
		Username:   "admin",
		Password:   "pw",
		DefaultTTL: time.Hour,
		Now:        clk.Now,
	})
	return New(ft, sm, nil), ft, sm, clk
}

var authFault = &xmlrpc.Fault{Method: "ZoneXmlRpcService.getZone", Code: 3, Message: "Session ID is invalid"}

func TestInvoke_StaleSessionLogsOnOnce(t *testing.T) {
	d, ft, _, _ := setup()

	if _, err := d.Invoke(context.Background(), "ZoneXmlRpcService", "getZone", 7); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if ft.logons != 1 || ft.rpcs != 1 {
		t.Errorf("logons = %d, rpcs = %d, want 1 and 1", ft.logons, ft.rpcs)
	}
}

func TestInvoke_ValidSessionSkipsLogon(t *testing.T) {
	d, ft, sm, _ := setup()

	if _, err := sm.EnsureValid(context.Background()); err != nil {
		t.Fatalf("EnsureValid() error = %v", err)
	}
	before := ft.logons

	if _, err := d.Invoke(context.Background(), "ZoneXmlRpcService", "getZone", 7); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if ft.logons != before {
		t.Errorf("logons = %d, want %d", ft.logons, before)
	}
}

func TestInvoke_ExpiredSessionRenews(t *testing.T) {
	d, ft, sm, clk := setup()

	_, _ = sm.EnsureValid(context.Background())
	clk.t = clk.t.Add(2 * time.Hour)

	if _, err := d.Invoke(context.Background(), "ZoneXmlRpcService", "getZone", 7); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if ft.logons != 2 {
		t.Errorf("logons = %d, want 2", ft.logons)
	}
	if got := ft.seen[0][0]; got != "sess-2" {
		t.Errorf("credential = %v, want sess-2", got)
	}
}

func TestInvoke_PrependsCredential(t *testing.T) {
	d, ft, _, _ := setup()

	params := []any{7, "x"}
	if _, err := d.Invoke(context.Background(), "ZoneXmlRpcService", "getZone", params...); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	got := ft.seen[0]
	if len(got) != 3 || got[0] != "sess-1" || got[1] != 7 || got[2] != "x" {
		t.Errorf("params = %v, want [sess-1 7 x]", got)
	}
	if len(params) != 2 {
		t.Errorf("caller params mutated: %v", params)
	}
}

func TestInvoke_AuthFailureRetriesOnce(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"fault", authFault},
		{"http 401", &xmlrpc.StatusError{Code: http.StatusUnauthorized}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ft, _, _ := setup(tt.err)

			result, err := d.Invoke(context.Background(), "ZoneXmlRpcService", "getZone", 7)
			if err != nil {
				t.Fatalf("Invoke() error = %v", err)
			}
			if result == nil {
				t.Fatal("Invoke() result = nil")
			}
			if ft.rpcs != 2 {
				t.Errorf("rpcs = %d, want 2", ft.rpcs)
			}
			if ft.logons != 2 {
				t.Errorf("logons = %d, want 2", ft.logons)
			}
			if ft.seen[0][0] == ft.seen[1][0] {
				t.Errorf("retry reused credential %v", ft.seen[1][0])
			}
		})
	}
}

func TestInvoke_SecondAuthFailurePropagates(t *testing.T) {
	second := &xmlrpc.Fault{Code: 3, Message: "Session has expired"}
	d, ft, _, _ := setup(authFault, second)

	_, err := d.Invoke(context.Background(), "ZoneXmlRpcService", "getZone", 7)
	if !errors.Is(err, second) {
		t.Errorf("Invoke() error = %v, want the retry's error", err)
	}
	if ft.rpcs != 2 {
		t.Errorf("rpcs = %d, want exactly 2", ft.rpcs)
	}
}

func TestInvoke_OtherErrorsPropagateImmediately(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"transport", fmt.Errorf("%w: connection refused", domain.ErrTransport)},
		{"http 500", &xmlrpc.StatusError{Code: http.StatusInternalServerError}},
		{"non-auth fault", &xmlrpc.Fault{Code: 801, Message: "Unknown zoneId Error"}},
		{"protocol", domain.ErrProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ft, _, _ := setup(tt.err)

			_, err := d.Invoke(context.Background(), "ZoneXmlRpcService", "getZone", 7)
			if !errors.Is(err, tt.err) {
				t.Errorf("Invoke() error = %v, want %v", err, tt.err)
			}
			if ft.rpcs != 1 {
				t.Errorf("rpcs = %d, want 1", ft.rpcs)
			}
			if ft.logons != 1 {
				t.Errorf("logons = %d, want 1", ft.logons)
			}
		})
	}
}

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"401", &xmlrpc.StatusError{Code: 401}, true},
		{"wrapped 401", fmt.Errorf("call: %w", &xmlrpc.StatusError{Code: 401}), true},
		{"403", &xmlrpc.StatusError{Code: 403}, false},
		{"invalid session", &xmlrpc.Fault{Message: "Session ID is invalid"}, true},
		{"expired", &xmlrpc.Fault{Message: "session expired"}, true},
		{"authentication", &xmlrpc.Fault{Message: "Authentication failed"}, true},
		{"unauthorized", &xmlrpc.Fault{Message: "Unauthorized access"}, true},
		{"unrelated fault", &xmlrpc.Fault{Message: "Unknown campaignId Error"}, false},
		{"plain error", errors.New("authentication"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthFailure(tt.err); got != tt.want {
				t.Errorf("IsAuthFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
