package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/felixgeelhaar/revive-mcp/internal/config"
	"github.com/felixgeelhaar/revive-mcp/internal/revive"
)

func TestSplitConfigFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPath string
		wantRest []string
		wantErr  bool
	}{
		{"no flag", []string{"mcp"}, "", []string{"mcp"}, false},
		{"separate value", []string{"--config", "/tmp/c.yaml", "serve", ":9000"}, "/tmp/c.yaml", []string{"serve", ":9000"}, false},
		{"equals form", []string{"check", "--config=/tmp/c.yaml"}, "/tmp/c.yaml", []string{"check"}, false},
		{"short flag", []string{"-c", "c.yaml", "config"}, "c.yaml", []string{"config"}, false},
		{"missing value", []string{"mcp", "--config"}, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, rest, err := splitConfigFlag(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("splitConfigFlag() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if path != tt.wantPath {
				t.Errorf("path = %q, want %q", path, tt.wantPath)
			}
			if !reflect.DeepEqual(rest, tt.wantRest) {
				t.Errorf("rest = %v, want %v", rest, tt.wantRest)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := parseLogLevel(tt.level); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	h := &multiHandler{
		handlers: []slog.Handler{
			slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
			slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
		},
	}
	logger := slog.New(h).With("component", "test")

	logger.Debug("details")
	logger.Warn("trouble")

	if !strings.Contains(debugBuf.String(), "details") || !strings.Contains(debugBuf.String(), "trouble") {
		t.Errorf("debug handler got %q, want both records", debugBuf.String())
	}
	if strings.Contains(warnBuf.String(), "details") {
		t.Errorf("warn handler got debug record: %q", warnBuf.String())
	}
	if !strings.Contains(warnBuf.String(), "component=test") {
		t.Errorf("warn handler missing attrs: %q", warnBuf.String())
	}
}

func TestSetupLogging_File(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	path := filepath.Join(t.TempDir(), "revive-mcp.log")
	logger, closeLog, err := setupLogging(config.LogConfig{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	logger.Info("hello", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file = %q, want JSON record", data)
	}
}

var methodNamePattern = regexp.MustCompile(`<methodName>([^<]+)</methodName>`)

// fakeAdServer is a minimal XML-RPC endpoint keyed by method name
type fakeAdServer struct {
	mu      sync.Mutex
	logons  int
	methods []string
	// staleOnce makes the first advertiser listing fail with an expired session
	staleOnce bool
}

func (f *fakeAdServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	m := methodNamePattern.FindSubmatch(body)
	if m == nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	method := string(m[1])

	f.mu.Lock()
	f.methods = append(f.methods, method)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "text/xml")
	switch method {
	case "LogonXmlRpcService.logon":
		f.mu.Lock()
		f.logons++
		f.mu.Unlock()
		io.WriteString(w, `<?xml version="1.0"?><methodResponse><params><param><value><string>sess-abc</string></value></param></params></methodResponse>`)
	case "LogonXmlRpcService.logoff":
		io.WriteString(w, `<?xml version="1.0"?><methodResponse><params><param><value><boolean>1</boolean></value></param></params></methodResponse>`)
	case "AdvertiserXmlRpcService.getAdvertiserListByAgencyId":
		f.mu.Lock()
		stale := f.staleOnce
		f.staleOnce = false
		f.mu.Unlock()
		if stale {
			io.WriteString(w, `<?xml version="1.0"?><methodResponse><fault><value><struct><member><name>faultCode</name><value><int>801</int></value></member><member><name>faultString</name><value><string>Session ID is invalid</string></value></member></struct></value></fault></methodResponse>`)
			return
		}
		io.WriteString(w, `<?xml version="1.0"?><methodResponse><params><param><value><array><data><value><struct><member><name>advertiserId</name><value><int>1</int></value></member><member><name>advertiserName</name><value><string>Acme</string></value></member></struct></value></data></array></value></param></params></methodResponse>`)
	default:
		http.Error(w, "unknown method", http.StatusNotFound)
	}
}

func testConfig(url string) *config.Config {
	cfg := config.Default()
	cfg.Revive.URL = url
	cfg.Revive.Username = "admin"
	cfg.Revive.Password = "secret"
	return cfg
}

func TestNewApp_EndToEnd(t *testing.T) {
	fake := &fakeAdServer{}
	ts := httptest.NewServer(fake)
	defer ts.Close()

	a, err := newApp(testConfig(ts.URL), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}

	res := a.service.ListAdvertisers(context.Background(), revive.ListOptions{})
	if !res.Success {
		t.Fatalf("ListAdvertisers failed: %s", res.Error)
	}
	if len(res.Data) != 1 || res.Data[0].Name != "Acme" {
		t.Errorf("advertisers = %+v, want [Acme]", res.Data)
	}

	a.Close()

	want := []string{
		"LogonXmlRpcService.logon",
		"AdvertiserXmlRpcService.getAdvertiserListByAgencyId",
		"LogonXmlRpcService.logoff",
	}
	if !reflect.DeepEqual(fake.methods, want) {
		t.Errorf("methods = %v, want %v", fake.methods, want)
	}
}

func TestNewApp_RenewsExpiredSession(t *testing.T) {
	fake := &fakeAdServer{staleOnce: true}
	ts := httptest.NewServer(fake)
	defer ts.Close()

	a, err := newApp(testConfig(ts.URL), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	defer a.Close()

	res := a.service.ListAdvertisers(context.Background(), revive.ListOptions{})
	if !res.Success {
		t.Fatalf("ListAdvertisers failed: %s", res.Error)
	}
	if fake.logons != 2 {
		t.Errorf("logons = %d, want 2", fake.logons)
	}
}

func TestNewApp_InvalidURL(t *testing.T) {
	cfg := testConfig("not a url")

	if _, err := newApp(cfg, slog.New(slog.DiscardHandler)); err == nil {
		t.Fatal("newApp() = nil error, want error")
	}
}
