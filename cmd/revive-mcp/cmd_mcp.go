package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/config"
	"github.com/felixgeelhaar/revive-mcp/internal/dispatch"
	mcpserver "github.com/felixgeelhaar/revive-mcp/internal/mcp"
	"github.com/felixgeelhaar/revive-mcp/internal/revive"
	"github.com/felixgeelhaar/revive-mcp/internal/session"
	"github.com/felixgeelhaar/revive-mcp/internal/xmlrpc"
)

const shutdownTimeout = 5 * time.Second

// app holds the wired components behind the MCP server
type app struct {
	client   *xmlrpc.Client
	sessions *session.Manager
	service  *revive.Service
	logger   *slog.Logger
}

// newApp wires transport, session manager, dispatcher and façade
func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	client, err := xmlrpc.NewClient(xmlrpc.Config{
		URL:       cfg.Revive.URL,
		UserAgent: cfg.Transport.UserAgent,
		Timeout:   cfg.Transport.Timeout,
		Resilience: xmlrpc.ResilienceConfig{
			EnableCircuitBreaker: cfg.Resilience.CircuitBreaker,
			FailureThreshold:     cfg.Resilience.FailureThreshold,
			OpenTimeout:          cfg.Resilience.OpenTimeout,
			EnableBulkhead:       cfg.Resilience.Bulkhead,
			MaxConcurrent:        cfg.Resilience.MaxConcurrent,
			RatePerSecond:        cfg.Resilience.RatePerSecond,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create xmlrpc client: %w", err)
	}

	sessions := session.NewManager(client, session.Config{
		Username:   cfg.Revive.Username,
		Password:   cfg.Revive.Password,
		DefaultTTL: cfg.Revive.SessionTTL,
		Logger:     logger,
	})

	dispatcher := dispatch.New(client, sessions, logger)

	service := revive.NewService(revive.Config{
		AgencyID: cfg.Revive.AgencyID,
		Logger:   logger,
	}, dispatcher)

	return &app{
		client:   client,
		sessions: sessions,
		service:  service,
		logger:   logger,
	}, nil
}

// Close logs off and releases the transport
func (a *app) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.sessions.Close(ctx); err != nil {
		a.logger.Warn("close session", "error", err)
	}
	if err := a.client.Close(); err != nil {
		a.logger.Warn("close client", "error", err)
	}
}

// prepare loads and validates configuration and builds the app
func prepare(configPath string) (*config.Config, *app, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("setup logging: %w", err)
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		closeLog()
		return nil, nil, nil, err
	}

	cleanup := func() {
		a.Close()
		closeLog()
	}
	return cfg, a, cleanup, nil
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// cmdMCP starts the MCP server on stdio
func cmdMCP(configPath string) error {
	_, a, cleanup, err := prepare(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := mcpserver.NewServer(mcpserver.Config{
		Service: a.service,
		Version: Version,
		Logger:  a.logger,
	})

	ctx, cancel := signalContext()
	defer cancel()

	a.logger.Info("mcp server starting", "transport", "stdio", "version", Version)
	return srv.ServeStdio(ctx)
}

// cmdServe starts the MCP server on HTTP
func cmdServe(configPath string, args []string) error {
	cfg, a, cleanup, err := prepare(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	addr := cfg.Server.HTTPAddr
	if len(args) > 0 {
		addr = args[0]
	}

	srv := mcpserver.NewServer(mcpserver.Config{
		Service: a.service,
		Version: Version,
		Logger:  a.logger,
	})

	ctx, cancel := signalContext()
	defer cancel()

	a.logger.Info("mcp server starting", "transport", "http", "addr", addr, "version", Version)
	return srv.ServeHTTP(ctx, addr)
}
