package revive

import (
	"context"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/mapper"
)

// SetTargetingRequest replaces the targeting rules of a campaign or banner.
// Empty rules clear targeting.
type SetTargetingRequest struct {
	EntityType string
	EntityID   int
	Targeting  domain.TargetingRules
}

// TargetingResult echoes the rules applied to an entity.
type TargetingResult struct {
	EntityType string                `json:"entityType"`
	EntityID   int                   `json:"entityId"`
	Targeting  domain.TargetingRules `json:"targeting"`
}

// SetTargeting applies targeting rules to a campaign or banner.
func (s *Service) SetTargeting(ctx context.Context, req SetTargetingRequest) domain.Result[TargetingResult] {
	return run(s, "set targeting", func() (TargetingResult, error) {
		if req.EntityType == "" {
			return TargetingResult{}, domain.Required("entityType")
		}
		if err := firstError(
			checkEnum("entityType", req.EntityType, domain.TargetingEntities),
			requireID("entityId", req.EntityID),
			req.Targeting.Validate(),
		); err != nil {
			return TargetingResult{}, err
		}

		switch req.EntityType {
		case domain.EntityBanner:
			wire := map[string]any(mapper.TargetingToWire(req.Targeting))
			if _, err := s.caller.Invoke(ctx, bannerService, "setBannerTargeting", req.EntityID, wire); err != nil {
				return TargetingResult{}, err
			}
		case domain.EntityCampaign:
			rules := req.Targeting
			if _, err := s.updateCampaign(ctx, domain.CampaignUpdate{ID: req.EntityID, Targeting: &rules}); err != nil {
				return TargetingResult{}, err
			}
		}

		s.logger.Info("targeting set", "entity_type", req.EntityType, "entity_id", req.EntityID)
		return TargetingResult{
			EntityType: req.EntityType,
			EntityID:   req.EntityID,
			Targeting:  req.Targeting,
		}, nil
	})
}
