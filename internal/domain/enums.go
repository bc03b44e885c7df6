package domain

import "slices"

// Campaign statuses
const (
	StatusActive   = "active"
	StatusPaused   = "paused"
	StatusInactive = "inactive"
	StatusExpired  = "expired"
	StatusPending  = "pending"
)

// Enumerated value sets accepted on input.
var (
	BudgetTypes      = []string{"daily", "weekly", "monthly", "total"}
	CampaignStatuses = []string{StatusActive, StatusPaused, StatusInactive, StatusExpired, StatusPending}
	BannerStatuses   = []string{StatusActive, StatusPaused, StatusInactive}
	ZoneTypes        = []string{"banner", "interstitial", "popup", "text", "email"}
	DeliveryMethods  = []string{"javascript", "iframe", "local", "xmlhttprequest"}
	StorageTypes     = []string{"web", "sql", "html", "text"}
	TimePeriods      = []string{"hour", "day", "week", "month"}
	DeviceTypes      = []string{"desktop", "mobile", "tablet"}
	SortOrders       = []string{"asc", "desc"}
)

// Entity types
const (
	EntityCampaign   = "campaign"
	EntityBanner     = "banner"
	EntityZone       = "zone"
	EntityAdvertiser = "advertiser"
	EntityPublisher  = "publisher"
	EntityAgency     = "agency"
)

var (
	StatsEntities     = []string{EntityCampaign, EntityBanner, EntityZone, EntityAdvertiser, EntityPublisher}
	TargetingEntities = []string{EntityCampaign, EntityBanner}
)

// Metric names that may be requested on a statistics report.
var Metrics = []string{
	"impressions", "clicks", "conversions", "clickRate", "conversionRate",
	"revenue", "cost", "ecpm", "ecpc", "ecpa",
}

// remoteStatus maps the ad server's numeric entity status codes.
var remoteStatus = map[int]string{
	0: StatusActive,
	1: StatusPaused,
	2: StatusPending,
	3: StatusExpired,
	4: StatusInactive,
}

// StatusFromCode converts a numeric remote status. Unknown codes yield "".
func StatusFromCode(code int) string {
	return remoteStatus[code]
}

// OneOf reports whether v is in set.
func OneOf(v string, set []string) bool {
	return slices.Contains(set, v)
}
