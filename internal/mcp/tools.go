package mcp

import (
	"context"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/revive"
)

// Input types for tools

type CampaignCreateInput struct {
	Name         string   `json:"name" jsonschema:"description=Campaign name"`
	AdvertiserID int      `json:"advertiserId" jsonschema:"description=Advertiser ID"`
	Budget       *float64 `json:"budget,omitempty" jsonschema:"description=Campaign budget"`
	BudgetType   string   `json:"budgetType,omitempty" jsonschema:"description=Budget type,enum=daily,enum=weekly,enum=monthly,enum=total"`
	StartDate    string   `json:"startDate,omitempty" jsonschema:"description=Start date (YYYY-MM-DD)"`
	EndDate      string   `json:"endDate,omitempty" jsonschema:"description=End date (YYYY-MM-DD)"`
	Priority     *int     `json:"priority,omitempty" jsonschema:"description=Campaign priority"`
}

type CampaignListInput struct {
	AdvertiserID *int   `json:"advertiserId,omitempty" jsonschema:"description=Filter by advertiser ID (all agency advertisers when omitted)"`
	Status       string `json:"status,omitempty" jsonschema:"description=Filter by status,enum=active,enum=paused,enum=inactive,enum=expired,enum=pending"`
	Limit        *int   `json:"limit,omitempty" jsonschema:"description=Number of results to return"`
	Offset       *int   `json:"offset,omitempty" jsonschema:"description=Number of results to skip"`
	SortBy       string `json:"sortBy,omitempty" jsonschema:"description=Sort field such as name or budget or startDate"`
	SortOrder    string `json:"sortOrder,omitempty" jsonschema:"description=Sort order,enum=asc,enum=desc"`
}

type CampaignUpdateInput struct {
	CampaignID int      `json:"campaignId" jsonschema:"description=Campaign ID to update"`
	Name       *string  `json:"name,omitempty" jsonschema:"description=New campaign name"`
	Budget     *float64 `json:"budget,omitempty" jsonschema:"description=New budget"`
	BudgetType *string  `json:"budgetType,omitempty" jsonschema:"description=Budget type,enum=daily,enum=weekly,enum=monthly,enum=total"`
	StartDate  *string  `json:"startDate,omitempty" jsonschema:"description=Start date (YYYY-MM-DD)"`
	EndDate    *string  `json:"endDate,omitempty" jsonschema:"description=End date (YYYY-MM-DD)"`
	Status     *string  `json:"status,omitempty" jsonschema:"description=Campaign status,enum=active,enum=paused,enum=inactive,enum=expired,enum=pending"`
	Priority   *int     `json:"priority,omitempty" jsonschema:"description=Campaign priority"`
}

type ZoneConfigureInput struct {
	Name         string               `json:"name" jsonschema:"description=Zone name"`
	WebsiteID    int                  `json:"websiteId" jsonschema:"description=Website (publisher) ID"`
	Type         string               `json:"type" jsonschema:"description=Zone type,enum=banner,enum=interstitial,enum=popup,enum=text,enum=email"`
	Width        *int                 `json:"width,omitempty" jsonschema:"description=Zone width in pixels"`
	Height       *int                 `json:"height,omitempty" jsonschema:"description=Zone height in pixels"`
	Description  string               `json:"description,omitempty" jsonschema:"description=Zone description"`
	Delivery     string               `json:"delivery,omitempty" jsonschema:"description=Delivery method,enum=javascript,enum=iframe,enum=local,enum=xmlhttprequest"`
	FrequencyCap *domain.FrequencyCap `json:"frequencyCap,omitempty" jsonschema:"description=Frequency capping"`
}

type ZoneListInput struct {
	WebsiteID *int   `json:"websiteId,omitempty" jsonschema:"description=Filter by website ID (all agency publishers when omitted)"`
	Type      string `json:"type,omitempty" jsonschema:"description=Filter by zone type,enum=banner,enum=interstitial,enum=popup,enum=text,enum=email"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"description=Number of results to return"`
	Offset    *int   `json:"offset,omitempty" jsonschema:"description=Number of results to skip"`
	SortBy    string `json:"sortBy,omitempty" jsonschema:"description=Sort field"`
	SortOrder string `json:"sortOrder,omitempty" jsonschema:"description=Sort order,enum=asc,enum=desc"`
}

type ZoneUpdateInput struct {
	ZoneID       int                    `json:"zoneId" jsonschema:"description=Zone ID to update"`
	Name         *string                `json:"name,omitempty" jsonschema:"description=New zone name"`
	Description  *string                `json:"description,omitempty" jsonschema:"description=Zone description"`
	Width        *int                   `json:"width,omitempty" jsonschema:"description=Zone width in pixels"`
	Height       *int                   `json:"height,omitempty" jsonschema:"description=Zone height in pixels"`
	FrequencyCap *domain.FrequencyCap   `json:"frequencyCap,omitempty" jsonschema:"description=Frequency capping"`
	Targeting    *domain.TargetingRules `json:"targeting,omitempty" jsonschema:"description=Zone targeting rules"`
}

type BannerUploadInput struct {
	CampaignID   int    `json:"campaignId" jsonschema:"description=Campaign ID"`
	Name         string `json:"name" jsonschema:"description=Banner name"`
	StorageType  string `json:"storageType" jsonschema:"description=Storage type,enum=web,enum=sql,enum=html,enum=text"`
	ImageURL     string `json:"imageUrl,omitempty" jsonschema:"description=Image URL for web storage"`
	HTMLTemplate string `json:"htmlTemplate,omitempty" jsonschema:"description=HTML template for HTML banners"`
	Width        int    `json:"width" jsonschema:"description=Banner width"`
	Height       int    `json:"height" jsonschema:"description=Banner height"`
	Weight       *int   `json:"weight,omitempty" jsonschema:"description=Banner weight for rotation (default 1)"`
	ClickURL     string `json:"clickUrl,omitempty" jsonschema:"description=Click destination URL"`
}

type BannerListInput struct {
	CampaignID int    `json:"campaignId" jsonschema:"description=Campaign ID"`
	Status     string `json:"status,omitempty" jsonschema:"description=Filter by status,enum=active,enum=paused,enum=inactive"`
	Limit      *int   `json:"limit,omitempty" jsonschema:"description=Number of results to return"`
	Offset     *int   `json:"offset,omitempty" jsonschema:"description=Number of results to skip"`
	SortBy     string `json:"sortBy,omitempty" jsonschema:"description=Sort field"`
	SortOrder  string `json:"sortOrder,omitempty" jsonschema:"description=Sort order,enum=asc,enum=desc"`
}

type BannerUpdateInput struct {
	BannerID  int                    `json:"bannerId" jsonschema:"description=Banner ID to update"`
	Name      *string                `json:"name,omitempty" jsonschema:"description=Banner name"`
	Weight    *int                   `json:"weight,omitempty" jsonschema:"description=Banner weight"`
	Status    *string                `json:"status,omitempty" jsonschema:"description=Banner status,enum=active,enum=paused,enum=inactive"`
	ClickURL  *string                `json:"clickUrl,omitempty" jsonschema:"description=Click destination URL"`
	Targeting *domain.TargetingRules `json:"targeting,omitempty" jsonschema:"description=Banner targeting rules"`
}

type TargetingSetInput struct {
	EntityType string                `json:"entityType" jsonschema:"description=Entity to target,enum=campaign,enum=banner"`
	EntityID   int                   `json:"entityId" jsonschema:"description=Entity ID"`
	Targeting  domain.TargetingRules `json:"targeting" jsonschema:"description=Targeting rules"`
}

type StatsGenerateInput struct {
	EntityType  string   `json:"entityType" jsonschema:"description=Entity type,enum=campaign,enum=banner,enum=zone,enum=advertiser,enum=publisher"`
	EntityID    *int     `json:"entityId,omitempty" jsonschema:"description=Entity ID (optional for overall stats)"`
	StartDate   string   `json:"startDate" jsonschema:"description=Start date (YYYY-MM-DD)"`
	EndDate     string   `json:"endDate" jsonschema:"description=End date (YYYY-MM-DD)"`
	Granularity string   `json:"granularity,omitempty" jsonschema:"description=Report granularity,enum=hour,enum=day,enum=week,enum=month"`
	Metrics     []string `json:"metrics,omitempty" jsonschema:"description=Metrics to include"`
}

type PartnerListInput struct {
	Limit     *int   `json:"limit,omitempty" jsonschema:"description=Number of results to return"`
	Offset    *int   `json:"offset,omitempty" jsonschema:"description=Number of results to skip"`
	SortBy    string `json:"sortBy,omitempty" jsonschema:"description=Sort field"`
	SortOrder string `json:"sortOrder,omitempty" jsonschema:"description=Sort order,enum=asc,enum=desc"`
}

func listOptions(limit, offset *int, sortBy, sortOrder string) revive.ListOptions {
	return revive.ListOptions{
		Limit:     limit,
		Offset:    offset,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

// Tool handlers

func (s *Server) handleCampaignCreate(ctx context.Context, in CampaignCreateInput) domain.Result[domain.Campaign] {
	return s.service.CreateCampaign(ctx, revive.CreateCampaignRequest{
		Name:         in.Name,
		AdvertiserID: in.AdvertiserID,
		Budget:       in.Budget,
		BudgetType:   in.BudgetType,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Priority:     in.Priority,
	})
}

func (s *Server) handleCampaignList(ctx context.Context, in CampaignListInput) domain.Result[[]domain.Campaign] {
	return s.service.ListCampaigns(ctx, revive.ListCampaignsRequest{
		AdvertiserID: in.AdvertiserID,
		Status:       in.Status,
		ListOptions:  listOptions(in.Limit, in.Offset, in.SortBy, in.SortOrder),
	})
}

func (s *Server) handleCampaignUpdate(ctx context.Context, in CampaignUpdateInput) domain.Result[domain.Campaign] {
	return s.service.UpdateCampaign(ctx, revive.UpdateCampaignRequest{
		CampaignID: in.CampaignID,
		Name:       in.Name,
		Budget:     in.Budget,
		BudgetType: in.BudgetType,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Status:     in.Status,
		Priority:   in.Priority,
	})
}

func (s *Server) handleZoneConfigure(ctx context.Context, in ZoneConfigureInput) domain.Result[domain.Zone] {
	return s.service.ConfigureZone(ctx, revive.CreateZoneRequest{
		Name:         in.Name,
		WebsiteID:    in.WebsiteID,
		Type:         in.Type,
		Width:        in.Width,
		Height:       in.Height,
		Description:  in.Description,
		Delivery:     in.Delivery,
		FrequencyCap: in.FrequencyCap,
	})
}

func (s *Server) handleZoneList(ctx context.Context, in ZoneListInput) domain.Result[[]domain.Zone] {
	return s.service.ListZones(ctx, revive.ListZonesRequest{
		WebsiteID:   in.WebsiteID,
		Type:        in.Type,
		ListOptions: listOptions(in.Limit, in.Offset, in.SortBy, in.SortOrder),
	})
}

func (s *Server) handleZoneUpdate(ctx context.Context, in ZoneUpdateInput) domain.Result[domain.Zone] {
	return s.service.UpdateZone(ctx, revive.UpdateZoneRequest{
		ZoneID:       in.ZoneID,
		Name:         in.Name,
		Description:  in.Description,
		Width:        in.Width,
		Height:       in.Height,
		FrequencyCap: in.FrequencyCap,
		Targeting:    in.Targeting,
	})
}

func (s *Server) handleBannerUpload(ctx context.Context, in BannerUploadInput) domain.Result[domain.Banner] {
	return s.service.UploadBanner(ctx, revive.CreateBannerRequest{
		CampaignID:   in.CampaignID,
		Name:         in.Name,
		StorageType:  in.StorageType,
		ImageURL:     in.ImageURL,
		HTMLTemplate: in.HTMLTemplate,
		Width:        in.Width,
		Height:       in.Height,
		Weight:       in.Weight,
		ClickURL:     in.ClickURL,
	})
}

func (s *Server) handleBannerList(ctx context.Context, in BannerListInput) domain.Result[[]domain.Banner] {
	return s.service.ListBanners(ctx, revive.ListBannersRequest{
		CampaignID:  in.CampaignID,
		Status:      in.Status,
		ListOptions: listOptions(in.Limit, in.Offset, in.SortBy, in.SortOrder),
	})
}

func (s *Server) handleBannerUpdate(ctx context.Context, in BannerUpdateInput) domain.Result[domain.Banner] {
	return s.service.UpdateBanner(ctx, revive.UpdateBannerRequest{
		BannerID:  in.BannerID,
		Name:      in.Name,
		Weight:    in.Weight,
		Status:    in.Status,
		ClickURL:  in.ClickURL,
		Targeting: in.Targeting,
	})
}

func (s *Server) handleTargetingSet(ctx context.Context, in TargetingSetInput) domain.Result[revive.TargetingResult] {
	return s.service.SetTargeting(ctx, revive.SetTargetingRequest{
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Targeting:  in.Targeting,
	})
}

func (s *Server) handleStatsGenerate(ctx context.Context, in StatsGenerateInput) domain.Result[domain.StatisticsReport] {
	return s.service.GenerateStatistics(ctx, revive.StatisticsRequest{
		EntityType:  in.EntityType,
		EntityID:    in.EntityID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Granularity: in.Granularity,
		Metrics:     in.Metrics,
	})
}

func (s *Server) handleAdvertiserList(ctx context.Context, in PartnerListInput) domain.Result[[]domain.Advertiser] {
	return s.service.ListAdvertisers(ctx, listOptions(in.Limit, in.Offset, in.SortBy, in.SortOrder))
}

func (s *Server) handlePublisherList(ctx context.Context, in PartnerListInput) domain.Result[[]domain.Publisher] {
	return s.service.ListPublishers(ctx, listOptions(in.Limit, in.Offset, in.SortBy, in.SortOrder))
}
