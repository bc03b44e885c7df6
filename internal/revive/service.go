// Package revive exposes the ad server's management and reporting actions
// as typed operations. Every operation validates its input before any
// network call and returns a domain.Result; errors never cross this
// boundary as return values.
package revive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/mapper"
)

// Remote service names.
const (
	campaignService   = "CampaignXmlRpcService"
	zoneService       = "ZoneXmlRpcService"
	bannerService     = "BannerXmlRpcService"
	advertiserService = "AdvertiserXmlRpcService"
	publisherService  = "PublisherXmlRpcService"
	agencyService     = "AgencyXmlRpcService"
)

// DefaultAgencyID is the agency listed when none is configured.
const DefaultAgencyID = 1

// Caller issues an authenticated remote call. The dispatcher satisfies it.
type Caller interface {
	Invoke(ctx context.Context, service, method string, params ...any) (any, error)
}

// Config configures the Service.
type Config struct {
	// AgencyID scopes advertiser and publisher listings and agency-wide
	// statistics
	AgencyID int

	Logger *slog.Logger
}

// Service implements the domain operations.
type Service struct {
	caller   Caller
	agencyID int
	logger   *slog.Logger
}

// NewService creates a Service that issues calls through caller.
func NewService(cfg Config, caller Caller) *Service {
	agencyID := cfg.AgencyID
	if agencyID <= 0 {
		agencyID = DefaultAgencyID
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		caller:   caller,
		agencyID: agencyID,
		logger:   logger,
	}
}

// run executes fn and folds its outcome into a Result. op prefixes the
// error message.
func run[T any](s *Service, op string, fn func() (T, error)) domain.Result[T] {
	data, err := fn()
	if err != nil {
		err = fmt.Errorf("%s: %w", op, err)
		s.logger.Warn("operation failed", "op", op, "kind", domain.Kind(err), "error", err)
		return domain.Fail[T](err)
	}
	s.logger.Debug("operation succeeded", "op", op)
	return domain.OK(data)
}

// fetch retrieves a single entity as a wire record.
func (s *Service) fetch(ctx context.Context, service, method string, id int) (mapper.Record, error) {
	result, err := s.caller.Invoke(ctx, service, method, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: %s %d", domain.ErrNotFound, service, id)
	}
	r, ok := mapper.AsRecord(result)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s: expected struct, got %T", domain.ErrProtocol, service, method, result)
	}
	return r, nil
}

// create issues an add call and returns the new entity id.
func (s *Service) create(ctx context.Context, service, method string, record mapper.Record) (int, error) {
	result, err := s.caller.Invoke(ctx, service, method, map[string]any(record))
	if err != nil {
		return 0, err
	}
	id := mapper.Int(result, 0)
	if id <= 0 {
		return 0, fmt.Errorf("%w: %s.%s returned no id (%v)", domain.ErrProtocol, service, method, result)
	}
	return id, nil
}

// modify writes a full record back.
func (s *Service) modify(ctx context.Context, service, method string, record mapper.Record) error {
	_, err := s.caller.Invoke(ctx, service, method, map[string]any(record))
	return err
}
