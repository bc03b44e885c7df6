package mapper

import "github.com/felixgeelhaar/revive-mcp/internal/domain"

// BannerAliases lists the wire keys of banner fields.
var BannerAliases = Aliases{
	"id":           {"bannerId", "id"},
	"name":         {"bannerName", "name"},
	"imageUrl":     {"imageURL", "imageUrl", "filename"},
	"htmlTemplate": {"htmlTemplate", "htmlcode"},
	"clickUrl":     {"url", "clickUrl"},
	"updatedAt":    {"updated", "updatedAt"},
}

// ToBanner converts a wire struct into a Banner.
func ToBanner(r Record) domain.Banner {
	a := BannerAliases
	return domain.Banner{
		ID:             Int(r.value(a, "id"), 0),
		Name:           String(r.value(a, "name")),
		CampaignID:     Int(r.value(a, "campaignId"), 0),
		StorageType:    String(r.value(a, "storageType")),
		ImageURL:       String(r.value(a, "imageUrl")),
		HTMLTemplate:   String(r.value(a, "htmlTemplate")),
		Width:          Int(r.value(a, "width"), 0),
		Height:         Int(r.value(a, "height"), 0),
		Weight:         Int(r.value(a, "weight"), domain.DefaultBannerWeight),
		Status:         Status(r.value(a, "status")),
		ClickURL:       String(r.value(a, "clickUrl")),
		Targeting:      ToTargeting(r.value(a, "targeting")),
		Impressions:    Int(r.value(a, "impressions"), 0),
		Clicks:         Int(r.value(a, "clicks"), 0),
		Conversions:    Int(r.value(a, "conversions"), 0),
		ConversionRate: Float(r.value(a, "conversionRate"), 0),
		Revenue:        Float(r.value(a, "revenue"), 0),
		UpdatedAt:      Date(r.value(a, "updatedAt")),
	}
}

// ToBanners maps a wire array of banners.
func ToBanners(v any) []domain.Banner {
	return mapList(v, ToBanner)
}

// BannerToWire renders a Banner as a wire struct, omitting unset fields.
func BannerToWire(b domain.Banner) Record {
	a := BannerAliases
	r := Record{}
	putInt(r, a, "id", b.ID)
	putString(r, a, "name", b.Name)
	putInt(r, a, "campaignId", b.CampaignID)
	putString(r, a, "storageType", b.StorageType)
	putString(r, a, "imageUrl", b.ImageURL)
	putString(r, a, "htmlTemplate", b.HTMLTemplate)
	putInt(r, a, "width", b.Width)
	putInt(r, a, "height", b.Height)
	r.set(a, "weight", b.Weight)
	putString(r, a, "status", b.Status)
	putString(r, a, "clickUrl", b.ClickURL)
	if b.Targeting != nil {
		r.set(a, "targeting", TargetingToWire(*b.Targeting))
	}
	putInt(r, a, "impressions", b.Impressions)
	putInt(r, a, "clicks", b.Clicks)
	putInt(r, a, "conversions", b.Conversions)
	putFloat(r, a, "conversionRate", b.ConversionRate)
	putFloat(r, a, "revenue", b.Revenue)
	putTime(r, a, "updatedAt", b.UpdatedAt)
	return r
}

// BannerPatch renders only the caller-supplied fields of u.
func BannerPatch(u domain.BannerUpdate) Record {
	a := BannerAliases
	r := Record{}
	r.set(a, "id", u.ID)
	if u.Name != nil {
		r.set(a, "name", *u.Name)
	}
	putIntPtr(r, a, "weight", u.Weight)
	if u.Status != nil {
		r.set(a, "status", *u.Status)
	}
	if u.ClickURL != nil {
		r.set(a, "clickUrl", *u.ClickURL)
	}
	if u.Targeting != nil {
		r.set(a, "targeting", TargetingToWire(*u.Targeting))
	}
	return r
}
