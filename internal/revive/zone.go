package revive

import (
	"context"
	"strings"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/mapper"
)

// CreateZoneRequest describes a new zone.
type CreateZoneRequest struct {
	Name         string
	WebsiteID    int
	Type         string
	Width        *int
	Height       *int
	Description  string
	Delivery     string
	FrequencyCap *domain.FrequencyCap
}

// ListZonesRequest selects and shapes zones.
type ListZonesRequest struct {
	// WebsiteID limits the listing to one publisher website; nil lists
	// the zones of every publisher in the agency
	WebsiteID *int
	Type      string
	ListOptions
}

// UpdateZoneRequest changes the supplied fields of a zone.
type UpdateZoneRequest struct {
	ZoneID       int
	Name         *string
	Description  *string
	Width        *int
	Height       *int
	FrequencyCap *domain.FrequencyCap
	Targeting    *domain.TargetingRules
}

func validateFrequencyCap(f *domain.FrequencyCap) error {
	if f == nil {
		return nil
	}
	return firstError(
		f.Validate(),
		checkNonNegative("frequencyCap.impressions", f.Impressions),
		checkNonNegative("frequencyCap.clicks", f.Clicks),
	)
}

func validateTargeting(t *domain.TargetingRules) error {
	if t == nil {
		return nil
	}
	return t.Validate()
}

// ConfigureZone adds a zone and returns it with its new id.
func (s *Service) ConfigureZone(ctx context.Context, req CreateZoneRequest) domain.Result[domain.Zone] {
	return run(s, "configure zone", func() (domain.Zone, error) {
		if err := firstError(
			requireName("name", req.Name),
			requireID("websiteId", req.WebsiteID),
			checkEnum("type", req.Type, domain.ZoneTypes),
			checkPositive("width", req.Width),
			checkPositive("height", req.Height),
			checkEnum("delivery", req.Delivery, domain.DeliveryMethods),
			validateFrequencyCap(req.FrequencyCap),
		); err != nil {
			return domain.Zone{}, err
		}
		if req.Type == "" {
			return domain.Zone{}, domain.Required("type")
		}

		z := domain.Zone{
			Name:         strings.TrimSpace(req.Name),
			WebsiteID:    req.WebsiteID,
			Type:         req.Type,
			Width:        req.Width,
			Height:       req.Height,
			Description:  req.Description,
			Delivery:     req.Delivery,
			FrequencyCap: req.FrequencyCap,
		}
		id, err := s.create(ctx, zoneService, "addZone", mapper.ZoneToWire(z))
		if err != nil {
			return domain.Zone{}, err
		}
		z.ID = id
		s.logger.Info("zone created", "zone_id", id, "website_id", z.WebsiteID)
		return z, nil
	})
}

// ListZones returns zones matching the request.
func (s *Service) ListZones(ctx context.Context, req ListZonesRequest) domain.Result[[]domain.Zone] {
	return run(s, "list zones", func() ([]domain.Zone, error) {
		if err := firstError(
			req.ListOptions.Validate(),
			checkEnum("type", req.Type, domain.ZoneTypes),
		); err != nil {
			return nil, err
		}
		if req.WebsiteID != nil {
			if err := requireID("websiteId", *req.WebsiteID); err != nil {
				return nil, err
			}
		}

		var websiteIDs []int
		if req.WebsiteID != nil {
			websiteIDs = []int{*req.WebsiteID}
		} else {
			publishers, err := s.publishers(ctx)
			if err != nil {
				return nil, err
			}
			for _, p := range publishers {
				websiteIDs = append(websiteIDs, p.ID)
			}
		}

		zones := []domain.Zone{}
		for _, id := range websiteIDs {
			result, err := s.caller.Invoke(ctx, zoneService, "getZoneListByPublisherId", id)
			if err != nil {
				return nil, err
			}
			zones = append(zones, mapper.ToZones(result)...)
		}

		var filters []filter
		if req.Type != "" {
			filters = append(filters, filter{field: "type", value: req.Type})
		}
		return shape(zones, filters, req.ListOptions), nil
	})
}

// UpdateZone fetches a zone, applies the supplied fields and writes the
// merged record back.
func (s *Service) UpdateZone(ctx context.Context, req UpdateZoneRequest) domain.Result[domain.Zone] {
	return run(s, "update zone", func() (domain.Zone, error) {
		if err := firstError(
			requireID("zoneId", req.ZoneID),
			checkPositive("width", req.Width),
			checkPositive("height", req.Height),
			validateFrequencyCap(req.FrequencyCap),
			validateTargeting(req.Targeting),
		); err != nil {
			return domain.Zone{}, err
		}
		if req.Name != nil {
			if err := requireName("name", *req.Name); err != nil {
				return domain.Zone{}, err
			}
		}

		existing, err := s.fetch(ctx, zoneService, "getZone", req.ZoneID)
		if err != nil {
			return domain.Zone{}, err
		}
		patch := mapper.ZonePatch(domain.ZoneUpdate{
			ID:           req.ZoneID,
			Name:         req.Name,
			Description:  req.Description,
			Width:        req.Width,
			Height:       req.Height,
			FrequencyCap: req.FrequencyCap,
			Targeting:    req.Targeting,
		})
		merged := mapper.Merge(existing, patch, mapper.ZoneAliases)
		if err := s.modify(ctx, zoneService, "modifyZone", merged); err != nil {
			return domain.Zone{}, err
		}
		s.logger.Info("zone updated", "zone_id", req.ZoneID)
		return mapper.ToZone(merged), nil
	})
}
