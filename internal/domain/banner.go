package domain

import "time"

// DefaultBannerWeight is the rotation weight assumed when none is given.
const DefaultBannerWeight = 1

// Banner is the canonical form of a creative belonging to a campaign.
type Banner struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	CampaignID     int             `json:"campaignId"`
	StorageType    string          `json:"storageType,omitempty"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	HTMLTemplate   string          `json:"htmlTemplate,omitempty"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Weight         int             `json:"weight"`
	Status         string          `json:"status,omitempty"`
	ClickURL       string          `json:"clickUrl,omitempty"`
	Targeting      *TargetingRules `json:"targeting,omitempty"`
	Impressions    int             `json:"impressions"`
	Clicks         int             `json:"clicks"`
	Conversions    int             `json:"conversions"`
	ConversionRate float64         `json:"conversionRate"`
	Revenue        float64         `json:"revenue"`
	UpdatedAt      *time.Time      `json:"updatedAt,omitempty"`
}

// Field returns the comparable value of a named field.
func (b Banner) Field(name string) (any, bool) {
	switch name {
	case "id":
		return float64(b.ID), true
	case "name":
		return b.Name, b.Name != ""
	case "campaignId":
		return float64(b.CampaignID), true
	case "storageType":
		return b.StorageType, b.StorageType != ""
	case "width":
		return float64(b.Width), true
	case "height":
		return float64(b.Height), true
	case "weight":
		return float64(b.Weight), true
	case "status":
		return b.Status, b.Status != ""
	case "impressions":
		return float64(b.Impressions), true
	case "clicks":
		return float64(b.Clicks), true
	case "conversions":
		return float64(b.Conversions), true
	case "conversionRate":
		return b.ConversionRate, true
	case "revenue":
		return b.Revenue, true
	case "updatedAt":
		return timePtr(b.UpdatedAt)
	}
	return nil, false
}

// BannerUpdate carries only the fields a caller wants changed.
type BannerUpdate struct {
	ID        int
	Name      *string
	Weight    *int
	Status    *string
	ClickURL  *string
	Targeting *TargetingRules
}
