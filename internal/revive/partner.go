package revive

import (
	"context"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/mapper"
)

// ListAdvertisers returns the advertisers of the configured agency.
func (s *Service) ListAdvertisers(ctx context.Context, opts ListOptions) domain.Result[[]domain.Advertiser] {
	return run(s, "list advertisers", func() ([]domain.Advertiser, error) {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		advertisers, err := s.advertisers(ctx)
		if err != nil {
			return nil, err
		}
		return shape(advertisers, nil, opts), nil
	})
}

// ListPublishers returns the publishers of the configured agency.
func (s *Service) ListPublishers(ctx context.Context, opts ListOptions) domain.Result[[]domain.Publisher] {
	return run(s, "list publishers", func() ([]domain.Publisher, error) {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		publishers, err := s.publishers(ctx)
		if err != nil {
			return nil, err
		}
		return shape(publishers, nil, opts), nil
	})
}

func (s *Service) advertisers(ctx context.Context) ([]domain.Advertiser, error) {
	result, err := s.caller.Invoke(ctx, advertiserService, "getAdvertiserListByAgencyId", s.agencyID)
	if err != nil {
		return nil, err
	}
	return mapper.ToAdvertisers(result), nil
}

func (s *Service) publishers(ctx context.Context) ([]domain.Publisher, error) {
	result, err := s.caller.Invoke(ctx, publisherService, "getPublisherListByAgencyId", s.agencyID)
	if err != nil {
		return nil, err
	}
	return mapper.ToPublishers(result), nil
}
