package domain

import "time"

// Campaign is the canonical form of an advertising campaign.
type Campaign struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	AdvertiserID      int             `json:"advertiserId"`
	Status            string          `json:"status,omitempty"`
	Budget            *float64        `json:"budget,omitempty"`
	BudgetType        string          `json:"budgetType,omitempty"`
	Priority          *int            `json:"priority,omitempty"`
	Weight            *int            `json:"weight,omitempty"`
	StartDate         *time.Time      `json:"startDate,omitempty"`
	EndDate           *time.Time      `json:"endDate,omitempty"`
	TargetImpressions *int            `json:"targetImpressions,omitempty"`
	TargetClicks      *int            `json:"targetClicks,omitempty"`
	Impressions       int             `json:"impressions"`
	Clicks            int             `json:"clicks"`
	Conversions       int             `json:"conversions"`
	Revenue           float64         `json:"revenue"`
	Targeting         *TargetingRules `json:"targeting,omitempty"`
	UpdatedAt         *time.Time      `json:"updatedAt,omitempty"`
}

// Field returns the comparable value of a named field for filtering and
// sorting. ok is false when the field is unknown or absent.
func (c Campaign) Field(name string) (any, bool) {
	switch name {
	case "id":
		return float64(c.ID), true
	case "name":
		return c.Name, c.Name != ""
	case "advertiserId":
		return float64(c.AdvertiserID), true
	case "status":
		return c.Status, c.Status != ""
	case "budget":
		return floatPtr(c.Budget)
	case "budgetType":
		return c.BudgetType, c.BudgetType != ""
	case "priority":
		return intPtr(c.Priority)
	case "weight":
		return intPtr(c.Weight)
	case "startDate":
		return timePtr(c.StartDate)
	case "endDate":
		return timePtr(c.EndDate)
	case "impressions":
		return float64(c.Impressions), true
	case "clicks":
		return float64(c.Clicks), true
	case "conversions":
		return float64(c.Conversions), true
	case "revenue":
		return c.Revenue, true
	case "updatedAt":
		return timePtr(c.UpdatedAt)
	}
	return nil, false
}

// CampaignUpdate carries only the fields a caller wants changed.
type CampaignUpdate struct {
	ID         int
	Name       *string
	Budget     *float64
	BudgetType *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *string
	Priority   *int
	Targeting  *TargetingRules
}

func floatPtr(v *float64) (any, bool) {
	if v == nil {
		return nil, false
	}
	return *v, true
}

func intPtr(v *int) (any, bool) {
	if v == nil {
		return nil, false
	}
	return float64(*v), true
}

func timePtr(v *time.Time) (any, bool) {
	if v == nil {
		return nil, false
	}
	return *v, true
}
