package xmlrpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"
	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/ratelimit"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

// ResilienceConfig selects the guards placed around each HTTP round trip.
// None of them retries: a failed round trip is reported to the caller.
type ResilienceConfig struct {
	// EnableCircuitBreaker stops calling an endpoint that keeps failing
	EnableCircuitBreaker bool

	// FailureThreshold is the number of consecutive transport failures
	// that opens the breaker (default: 5)
	FailureThreshold int

	// OpenTimeout is how long the breaker stays open (default: 30s)
	OpenTimeout time.Duration

	// EnableBulkhead limits concurrent in-flight calls
	EnableBulkhead bool

	// MaxConcurrent for bulkhead (default: 4)
	MaxConcurrent int

	// QueueTimeout bounds the wait for a bulkhead slot (default: 30s)
	QueueTimeout time.Duration

	// RatePerSecond throttles outgoing calls; zero disables throttling
	RatePerSecond int
}

// DefaultResilienceConfig returns the guards used by the CLI.
func DefaultResilienceConfig() ResilienceConfig {
	return ResilienceConfig{
		EnableCircuitBreaker: true,
		FailureThreshold:     5,
		OpenTimeout:          30 * time.Second,
		EnableBulkhead:       true,
		MaxConcurrent:        4,
	}
}

// guard wraps a round trip with the configured fortify patterns.
type guard struct {
	name           string
	circuitBreaker circuitbreaker.CircuitBreaker[[]byte]
	bulkhead       bulkhead.Bulkhead[[]byte]
	rateLimit      ratelimit.RateLimiter
	logger         *slog.Logger
}

func newGuard(name string, cfg ResilienceConfig, logger *slog.Logger) *guard {
	g := &guard{name: name, logger: logger}

	if cfg.EnableCircuitBreaker {
		threshold := cfg.FailureThreshold
		if threshold <= 0 {
			threshold = 5
		}
		openTimeout := cfg.OpenTimeout
		if openTimeout <= 0 {
			openTimeout = 30 * time.Second
		}
		g.circuitBreaker = circuitbreaker.New[[]byte](circuitbreaker.Config{
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     openTimeout,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return int(counts.ConsecutiveFailures) >= threshold
			},
			IsSuccessful: func(err error) bool {
				// A 4xx answer means the endpoint is up; the request was wrong.
				var status *StatusError
				if errors.As(err, &status) {
					return status.Code >= http.StatusBadRequest && status.Code < http.StatusInternalServerError
				}
				return err == nil
			},
			OnStateChange: func(from, to circuitbreaker.State) {
				logger.Warn("circuit breaker state change",
					"endpoint", name,
					"from", from.String(),
					"to", to.String())
			},
		})
	}

	if cfg.EnableBulkhead {
		maxConcurrent := cfg.MaxConcurrent
		if maxConcurrent <= 0 {
			maxConcurrent = 4
		}
		queueTimeout := cfg.QueueTimeout
		if queueTimeout <= 0 {
			queueTimeout = 30 * time.Second
		}
		g.bulkhead = bulkhead.New[[]byte](bulkhead.Config{
			MaxConcurrent: maxConcurrent,
			MaxQueue:      maxConcurrent * 4,
			QueueTimeout:  queueTimeout,
		})
	}

	if cfg.RatePerSecond > 0 {
		g.rateLimit = ratelimit.New(&ratelimit.Config{
			Rate:     cfg.RatePerSecond,
			Burst:    cfg.RatePerSecond * 2,
			Interval: time.Second,
		})
	}

	return g
}

// do runs op through the guards. Errors produced by op itself are returned
// as-is; rejections by a guard are reported as transport errors. A request
// abandoned while queued in the bulkhead never reaches the endpoint.
func (g *guard) do(ctx context.Context, op func(context.Context) ([]byte, error)) ([]byte, error) {
	if g.rateLimit != nil && !g.rateLimit.Allow(ctx, g.name) {
		return nil, fmt.Errorf("%w: rate limit exceeded for %s", domain.ErrTransport, g.name)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu    sync.Mutex
		opErr error
	)
	call := func(ctx context.Context) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := op(ctx)
		mu.Lock()
		opErr = err
		mu.Unlock()
		return data, err
	}

	if g.bulkhead != nil {
		inner := call
		call = func(ctx context.Context) ([]byte, error) {
			return g.bulkhead.Execute(ctx, inner)
		}
	}

	var (
		data []byte
		err  error
	)
	if g.circuitBreaker != nil {
		data, err = g.circuitBreaker.Execute(ctx, call)
	} else {
		data, err = call(ctx)
	}

	mu.Lock()
	defer mu.Unlock()
	if opErr != nil {
		return nil, opErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrTransport, g.name, err)
	}
	return data, nil
}

// Close releases resources held by the guards.
func (g *guard) Close() error {
	var errs []error
	if g.bulkhead != nil {
		errs = append(errs, g.bulkhead.Close())
	}
	if g.rateLimit != nil {
		errs = append(errs, g.rateLimit.Close())
	}
	return errors.Join(errs...)
}
