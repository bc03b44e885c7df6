package mapper

import (
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

// CampaignAliases lists the wire keys of campaign fields.
var CampaignAliases = Aliases{
	"id":        {"campaignId", "id"},
	"name":      {"campaignName", "name"},
	"updatedAt": {"updated", "updatedAt"},
}

// ToCampaign converts a wire struct into a Campaign.
func ToCampaign(r Record) domain.Campaign {
	a := CampaignAliases
	c := domain.Campaign{
		ID:                Int(r.value(a, "id"), 0),
		Name:              String(r.value(a, "name")),
		AdvertiserID:      Int(r.value(a, "advertiserId"), 0),
		Status:            Status(r.value(a, "status")),
		Budget:            FloatPtr(r.value(a, "budget")),
		BudgetType:        String(r.value(a, "budgetType")),
		Priority:          IntPtr(r.value(a, "priority")),
		Weight:            IntPtr(r.value(a, "weight")),
		StartDate:         Date(r.value(a, "startDate")),
		EndDate:           Date(r.value(a, "endDate")),
		TargetImpressions: IntPtr(r.value(a, "targetImpressions")),
		TargetClicks:      IntPtr(r.value(a, "targetClicks")),
		Impressions:       Int(r.value(a, "impressions"), 0),
		Clicks:            Int(r.value(a, "clicks"), 0),
		Conversions:       Int(r.value(a, "conversions"), 0),
		Revenue:           Float(r.value(a, "revenue"), 0),
		Targeting:         ToTargeting(r.value(a, "targeting")),
		UpdatedAt:         Date(r.value(a, "updatedAt")),
	}
	return c
}

// ToCampaigns maps a wire array of campaigns.
func ToCampaigns(v any) []domain.Campaign {
	return mapList(v, ToCampaign)
}

// CampaignToWire renders a Campaign as a wire struct, omitting unset fields.
func CampaignToWire(c domain.Campaign) Record {
	a := CampaignAliases
	r := Record{}
	putInt(r, a, "id", c.ID)
	putString(r, a, "name", c.Name)
	putInt(r, a, "advertiserId", c.AdvertiserID)
	putString(r, a, "status", c.Status)
	if c.Budget != nil {
		r.set(a, "budget", *c.Budget)
	}
	putString(r, a, "budgetType", c.BudgetType)
	putIntPtr(r, a, "priority", c.Priority)
	putIntPtr(r, a, "weight", c.Weight)
	putTime(r, a, "startDate", c.StartDate)
	putTime(r, a, "endDate", c.EndDate)
	putIntPtr(r, a, "targetImpressions", c.TargetImpressions)
	putIntPtr(r, a, "targetClicks", c.TargetClicks)
	putInt(r, a, "impressions", c.Impressions)
	putInt(r, a, "clicks", c.Clicks)
	putInt(r, a, "conversions", c.Conversions)
	putFloat(r, a, "revenue", c.Revenue)
	if c.Targeting != nil {
		r.set(a, "targeting", TargetingToWire(*c.Targeting))
	}
	putTime(r, a, "updatedAt", c.UpdatedAt)
	return r
}

// CampaignPatch renders only the caller-supplied fields of u.
func CampaignPatch(u domain.CampaignUpdate) Record {
	a := CampaignAliases
	r := Record{}
	r.set(a, "id", u.ID)
	if u.Name != nil {
		r.set(a, "name", *u.Name)
	}
	if u.Budget != nil {
		r.set(a, "budget", *u.Budget)
	}
	if u.BudgetType != nil {
		r.set(a, "budgetType", *u.BudgetType)
	}
	putTime(r, a, "startDate", u.StartDate)
	putTime(r, a, "endDate", u.EndDate)
	if u.Status != nil {
		r.set(a, "status", *u.Status)
	}
	putIntPtr(r, a, "priority", u.Priority)
	if u.Targeting != nil {
		r.set(a, "targeting", TargetingToWire(*u.Targeting))
	}
	return r
}

func putInt(r Record, a Aliases, field string, v int) {
	if v != 0 {
		r.set(a, field, v)
	}
}

func putIntPtr(r Record, a Aliases, field string, v *int) {
	if v != nil {
		r.set(a, field, *v)
	}
}

func putFloat(r Record, a Aliases, field string, v float64) {
	if v != 0 {
		r.set(a, field, v)
	}
}

func putString(r Record, a Aliases, field, v string) {
	if v != "" {
		r.set(a, field, v)
	}
}

func putTime(r Record, a Aliases, field string, v *time.Time) {
	if v != nil && !v.IsZero() {
		r.set(a, field, *v)
	}
}
