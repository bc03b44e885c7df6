package domain

import "time"

// Zone is the canonical form of an ad placement on a publisher website.
type Zone struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	WebsiteID    int             `json:"websiteId"`
	Type         string          `json:"type,omitempty"`
	Width        *int            `json:"width,omitempty"`
	Height       *int            `json:"height,omitempty"`
	Description  string          `json:"description,omitempty"`
	Delivery     string          `json:"delivery,omitempty"`
	FrequencyCap *FrequencyCap   `json:"frequencyCap,omitempty"`
	Targeting    *TargetingRules `json:"targeting,omitempty"`
	Code         string          `json:"code,omitempty"`
	Impressions  int             `json:"impressions"`
	Clicks       int             `json:"clicks"`
	Revenue      float64         `json:"revenue"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"`
}

// Field returns the comparable value of a named field.
func (z Zone) Field(name string) (any, bool) {
	switch name {
	case "id":
		return float64(z.ID), true
	case "name":
		return z.Name, z.Name != ""
	case "websiteId":
		return float64(z.WebsiteID), true
	case "type":
		return z.Type, z.Type != ""
	case "width":
		return intPtr(z.Width)
	case "height":
		return intPtr(z.Height)
	case "description":
		return z.Description, z.Description != ""
	case "delivery":
		return z.Delivery, z.Delivery != ""
	case "impressions":
		return float64(z.Impressions), true
	case "clicks":
		return float64(z.Clicks), true
	case "revenue":
		return z.Revenue, true
	case "updatedAt":
		return timePtr(z.UpdatedAt)
	}
	return nil, false
}

// ZoneUpdate carries only the fields a caller wants changed.
type ZoneUpdate struct {
	ID           int
	Name         *string
	Description  *string
	Width        *int
	Height       *int
	FrequencyCap *FrequencyCap
	Targeting    *TargetingRules
}
