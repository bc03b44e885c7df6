package mapper

import (
	"strconv"
	"strings"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

// ZoneAliases lists the wire keys of zone fields.
var ZoneAliases = Aliases{
	"id":        {"zoneId", "id"},
	"name":      {"zoneName", "name"},
	"websiteId": {"publisherId", "websiteId", "affiliateId"},
	"type":      {"type", "zoneType"},
	"code":      {"code", "invocationCode"},
	"updatedAt": {"updated", "updatedAt"},
}

// zoneTypeCodes are the ad server's numeric zone types.
var zoneTypeCodes = map[string]int{
	"banner":       0,
	"interstitial": 1,
	"popup":        2,
	"text":         3,
	"email":        4,
}

// ZoneType normalizes a zone type given as a name or a numeric code.
func ZoneType(v any) string {
	if s, ok := v.(string); ok {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return strings.ToLower(strings.TrimSpace(s))
		}
	}
	code := Int(v, -1)
	for name, c := range zoneTypeCodes {
		if c == code {
			return name
		}
	}
	return ""
}

// ToZone converts a wire struct into a Zone.
func ToZone(r Record) domain.Zone {
	a := ZoneAliases
	return domain.Zone{
		ID:           Int(r.value(a, "id"), 0),
		Name:         String(r.value(a, "name")),
		WebsiteID:    Int(r.value(a, "websiteId"), 0),
		Type:         ZoneType(r.value(a, "type")),
		Width:        IntPtr(r.value(a, "width")),
		Height:       IntPtr(r.value(a, "height")),
		Description:  String(r.value(a, "description")),
		Delivery:     String(r.value(a, "delivery")),
		FrequencyCap: ToFrequencyCap(r.value(a, "frequencyCap")),
		Targeting:    ToTargeting(r.value(a, "targeting")),
		Code:         String(r.value(a, "code")),
		Impressions:  Int(r.value(a, "impressions"), 0),
		Clicks:       Int(r.value(a, "clicks"), 0),
		Revenue:      Float(r.value(a, "revenue"), 0),
		UpdatedAt:    Date(r.value(a, "updatedAt")),
	}
}

// ToZones maps a wire array of zones.
func ToZones(v any) []domain.Zone {
	return mapList(v, ToZone)
}

// ZoneToWire renders a Zone as a wire struct, omitting unset fields. The
// zone type is sent as the server's numeric code when it is a known name.
func ZoneToWire(z domain.Zone) Record {
	a := ZoneAliases
	r := Record{}
	putInt(r, a, "id", z.ID)
	putString(r, a, "name", z.Name)
	putInt(r, a, "websiteId", z.WebsiteID)
	if code, ok := zoneTypeCodes[z.Type]; ok {
		r.set(a, "type", code)
	} else {
		putString(r, a, "type", z.Type)
	}
	putIntPtr(r, a, "width", z.Width)
	putIntPtr(r, a, "height", z.Height)
	putString(r, a, "description", z.Description)
	putString(r, a, "delivery", z.Delivery)
	if z.FrequencyCap != nil {
		r.set(a, "frequencyCap", FrequencyCapToWire(*z.FrequencyCap))
	}
	if z.Targeting != nil {
		r.set(a, "targeting", TargetingToWire(*z.Targeting))
	}
	putString(r, a, "code", z.Code)
	putInt(r, a, "impressions", z.Impressions)
	putInt(r, a, "clicks", z.Clicks)
	putFloat(r, a, "revenue", z.Revenue)
	putTime(r, a, "updatedAt", z.UpdatedAt)
	return r
}

// ZonePatch renders only the caller-supplied fields of u.
func ZonePatch(u domain.ZoneUpdate) Record {
	a := ZoneAliases
	r := Record{}
	r.set(a, "id", u.ID)
	if u.Name != nil {
		r.set(a, "name", *u.Name)
	}
	if u.Description != nil {
		r.set(a, "description", *u.Description)
	}
	putIntPtr(r, a, "width", u.Width)
	putIntPtr(r, a, "height", u.Height)
	if u.FrequencyCap != nil {
		r.set(a, "frequencyCap", FrequencyCapToWire(*u.FrequencyCap))
	}
	if u.Targeting != nil {
		r.set(a, "targeting", TargetingToWire(*u.Targeting))
	}
	return r
}
