package revive

import (
	"context"
	"strings"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/mapper"
)

// CreateCampaignRequest describes a new campaign.
type CreateCampaignRequest struct {
	Name         string
	AdvertiserID int
	Budget       *float64
	BudgetType   string
	StartDate    string
	EndDate      string
	Priority     *int
}

// ListCampaignsRequest selects and shapes campaigns.
type ListCampaignsRequest struct {
	// AdvertiserID limits the listing to one advertiser; nil lists the
	// campaigns of every advertiser in the agency
	AdvertiserID *int
	Status       string
	ListOptions
}

// UpdateCampaignRequest changes the supplied fields of a campaign.
type UpdateCampaignRequest struct {
	CampaignID int
	Name       *string
	Budget     *float64
	BudgetType *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Priority   *int
}

// CreateCampaign adds a campaign and returns it with its new id.
func (s *Service) CreateCampaign(ctx context.Context, req CreateCampaignRequest) domain.Result[domain.Campaign] {
	return run(s, "create campaign", func() (domain.Campaign, error) {
		start, err := parseDate("startDate", req.StartDate)
		if err != nil {
			return domain.Campaign{}, err
		}
		end, err := parseDate("endDate", req.EndDate)
		if err != nil {
			return domain.Campaign{}, err
		}
		if err := firstError(
			requireName("name", req.Name),
			requireID("advertiserId", req.AdvertiserID),
			checkBudget(req.Budget),
			checkEnum("budgetType", req.BudgetType, domain.BudgetTypes),
			checkNonNegative("priority", req.Priority),
			checkDateRange(start, end),
		); err != nil {
			return domain.Campaign{}, err
		}

		c := domain.Campaign{
			Name:         strings.TrimSpace(req.Name),
			AdvertiserID: req.AdvertiserID,
			Budget:       req.Budget,
			BudgetType:   req.BudgetType,
			StartDate:    start,
			EndDate:      end,
			Priority:     req.Priority,
		}
		id, err := s.create(ctx, campaignService, "addCampaign", mapper.CampaignToWire(c))
		if err != nil {
			return domain.Campaign{}, err
		}
		c.ID = id
		s.logger.Info("campaign created", "campaign_id", id, "advertiser_id", c.AdvertiserID)
		return c, nil
	})
}

// ListCampaigns returns campaigns matching the request.
func (s *Service) ListCampaigns(ctx context.Context, req ListCampaignsRequest) domain.Result[[]domain.Campaign] {
	return run(s, "list campaigns", func() ([]domain.Campaign, error) {
		if err := firstError(
			req.ListOptions.Validate(),
			checkEnum("status", req.Status, domain.CampaignStatuses),
		); err != nil {
			return nil, err
		}
		if req.AdvertiserID != nil {
			if err := requireID("advertiserId", *req.AdvertiserID); err != nil {
				return nil, err
			}
		}

		var advertiserIDs []int
		if req.AdvertiserID != nil {
			advertiserIDs = []int{*req.AdvertiserID}
		} else {
			advertisers, err := s.advertisers(ctx)
			if err != nil {
				return nil, err
			}
			for _, a := range advertisers {
				advertiserIDs = append(advertiserIDs, a.ID)
			}
		}

		campaigns := []domain.Campaign{}
		for _, id := range advertiserIDs {
			result, err := s.caller.Invoke(ctx, campaignService, "getCampaignListByAdvertiserId", id)
			if err != nil {
				return nil, err
			}
			campaigns = append(campaigns, mapper.ToCampaigns(result)...)
		}

		var filters []filter
		if req.Status != "" {
			filters = append(filters, filter{field: "status", value: req.Status})
		}
		return shape(campaigns, filters, req.ListOptions), nil
	})
}

// UpdateCampaign fetches a campaign, applies the supplied fields and writes
// the merged record back.
func (s *Service) UpdateCampaign(ctx context.Context, req UpdateCampaignRequest) domain.Result[domain.Campaign] {
	return run(s, "update campaign", func() (domain.Campaign, error) {
		start, err := parseDatePtr("startDate", req.StartDate)
		if err != nil {
			return domain.Campaign{}, err
		}
		end, err := parseDatePtr("endDate", req.EndDate)
		if err != nil {
			return domain.Campaign{}, err
		}
		if err := firstError(
			requireID("campaignId", req.CampaignID),
			checkBudget(req.Budget),
			checkEnumPtr("budgetType", req.BudgetType, domain.BudgetTypes),
			checkEnumPtr("status", req.Status, domain.CampaignStatuses),
			checkNonNegative("priority", req.Priority),
			checkDateRange(start, end),
		); err != nil {
			return domain.Campaign{}, err
		}
		if req.Name != nil {
			if err := requireName("name", *req.Name); err != nil {
				return domain.Campaign{}, err
			}
		}

		return s.updateCampaign(ctx, domain.CampaignUpdate{
			ID:         req.CampaignID,
			Name:       req.Name,
			Budget:     req.Budget,
			BudgetType: req.BudgetType,
			StartDate:  start,
			EndDate:    end,
			Status:     req.Status,
			Priority:   req.Priority,
		})
	})
}

func (s *Service) updateCampaign(ctx context.Context, u domain.CampaignUpdate) (domain.Campaign, error) {
	existing, err := s.fetch(ctx, campaignService, "getCampaign", u.ID)
	if err != nil {
		return domain.Campaign{}, err
	}
	merged := mapper.Merge(existing, mapper.CampaignPatch(u), mapper.CampaignAliases)
	if err := s.modify(ctx, campaignService, "modifyCampaign", merged); err != nil {
		return domain.Campaign{}, err
	}
	s.logger.Info("campaign updated", "campaign_id", u.ID)
	return mapper.ToCampaign(merged), nil
}
