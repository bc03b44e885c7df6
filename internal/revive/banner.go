package revive

import (
	"context"
	"strings"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/mapper"
)

// CreateBannerRequest describes a new banner.
type CreateBannerRequest struct {
	CampaignID   int
	Name         string
	StorageType  string
	ImageURL     string
	HTMLTemplate string
	Width        int
	Height       int
	Weight       *int
	ClickURL     string
}

// ListBannersRequest selects and shapes the banners of a campaign.
type ListBannersRequest struct {
	CampaignID int
	Status     string
	ListOptions
}

// UpdateBannerRequest changes the supplied fields of a banner.
type UpdateBannerRequest struct {
	BannerID  int
	Name      *string
	Weight    *int
	Status    *string
	ClickURL  *string
	Targeting *domain.TargetingRules
}

// UploadBanner adds a banner to a campaign and returns it with its new id.
func (s *Service) UploadBanner(ctx context.Context, req CreateBannerRequest) domain.Result[domain.Banner] {
	return run(s, "upload banner", func() (domain.Banner, error) {
		if err := firstError(
			requireID("campaignId", req.CampaignID),
			requireName("name", req.Name),
			checkEnum("storageType", req.StorageType, domain.StorageTypes),
			checkPositive("width", &req.Width),
			checkPositive("height", &req.Height),
			checkNonNegative("weight", req.Weight),
		); err != nil {
			return domain.Banner{}, err
		}
		switch {
		case req.StorageType == "":
			return domain.Banner{}, domain.Required("storageType")
		case req.StorageType == "web" && req.ImageURL == "":
			return domain.Banner{}, domain.Invalid("imageUrl", "is required for web storage")
		case req.StorageType == "html" && req.HTMLTemplate == "":
			return domain.Banner{}, domain.Invalid("htmlTemplate", "is required for html storage")
		}

		weight := domain.DefaultBannerWeight
		if req.Weight != nil {
			weight = *req.Weight
		}
		b := domain.Banner{
			Name:         strings.TrimSpace(req.Name),
			CampaignID:   req.CampaignID,
			StorageType:  req.StorageType,
			ImageURL:     req.ImageURL,
			HTMLTemplate: req.HTMLTemplate,
			Width:        req.Width,
			Height:       req.Height,
			Weight:       weight,
			ClickURL:     req.ClickURL,
		}
		id, err := s.create(ctx, bannerService, "addBanner", mapper.BannerToWire(b))
		if err != nil {
			return domain.Banner{}, err
		}
		b.ID = id
		s.logger.Info("banner created", "banner_id", id, "campaign_id", b.CampaignID)
		return b, nil
	})
}

// ListBanners returns the banners of a campaign matching the request.
func (s *Service) ListBanners(ctx context.Context, req ListBannersRequest) domain.Result[[]domain.Banner] {
	return run(s, "list banners", func() ([]domain.Banner, error) {
		if err := firstError(
			requireID("campaignId", req.CampaignID),
			req.ListOptions.Validate(),
			checkEnum("status", req.Status, domain.BannerStatuses),
		); err != nil {
			return nil, err
		}

		result, err := s.caller.Invoke(ctx, bannerService, "getBannerListByCampaignId", req.CampaignID)
		if err != nil {
			return nil, err
		}

		var filters []filter
		if req.Status != "" {
			filters = append(filters, filter{field: "status", value: req.Status})
		}
		return shape(mapper.ToBanners(result), filters, req.ListOptions), nil
	})
}

// UpdateBanner fetches a banner, applies the supplied fields and writes the
// merged record back.
func (s *Service) UpdateBanner(ctx context.Context, req UpdateBannerRequest) domain.Result[domain.Banner] {
	return run(s, "update banner", func() (domain.Banner, error) {
		if err := firstError(
			requireID("bannerId", req.BannerID),
			checkNonNegative("weight", req.Weight),
			checkEnumPtr("status", req.Status, domain.BannerStatuses),
			validateTargeting(req.Targeting),
		); err != nil {
			return domain.Banner{}, err
		}
		if req.Name != nil {
			if err := requireName("name", *req.Name); err != nil {
				return domain.Banner{}, err
			}
		}

		existing, err := s.fetch(ctx, bannerService, "getBanner", req.BannerID)
		if err != nil {
			return domain.Banner{}, err
		}
		patch := mapper.BannerPatch(domain.BannerUpdate{
			ID:        req.BannerID,
			Name:      req.Name,
			Weight:    req.Weight,
			Status:    req.Status,
			ClickURL:  req.ClickURL,
			Targeting: req.Targeting,
		})
		merged := mapper.Merge(existing, patch, mapper.BannerAliases)
		if err := s.modify(ctx, bannerService, "modifyBanner", merged); err != nil {
			return domain.Banner{}, err
		}
		s.logger.Info("banner updated", "banner_id", req.BannerID)
		return mapper.ToBanner(merged), nil
	})
}
