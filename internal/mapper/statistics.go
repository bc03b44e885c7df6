package mapper

import (
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

// StatisticsAliases lists the wire keys of statistics fields.
var StatisticsAliases = Aliases{
	"date":      {"date", "day"},
	"clickRate": {"clickRate", "ctr"},
}

// ToStatistics converts a wire row into Statistics. Rates the server did
// not send are derived from the counters.
func ToStatistics(r Record) domain.Statistics {
	a := StatisticsAliases
	s := domain.Statistics{
		EntityType:     String(r.value(a, "entityType")),
		EntityID:       Int(r.value(a, "entityId"), 0),
		Date:           Date(r.value(a, "date")),
		Impressions:    Int(r.value(a, "impressions"), 0),
		Clicks:         Int(r.value(a, "clicks"), 0),
		Conversions:    Int(r.value(a, "conversions"), 0),
		ClickRate:      Float(r.value(a, "clickRate"), 0),
		ConversionRate: Float(r.value(a, "conversionRate"), 0),
		Revenue:        Float(r.value(a, "revenue"), 0),
		Cost:           Float(r.value(a, "cost"), 0),
		ECPM:           Float(r.value(a, "ecpm"), 0),
		ECPC:           Float(r.value(a, "ecpc"), 0),
		ECPA:           Float(r.value(a, "ecpa"), 0),
	}
	if s.EntityType == "" {
		s.EntityType = "unknown"
	}
	if hour := IntPtr(r["hour"]); hour != nil && s.Date != nil {
		d := s.Date.Truncate(24 * time.Hour).Add(time.Duration(*hour) * time.Hour)
		s.Date = &d
	}
	if _, ok := r.Get(a, "clickRate"); !ok && s.Impressions > 0 {
		s.ClickRate = float64(s.Clicks) / float64(s.Impressions)
	}
	if _, ok := r.Get(a, "conversionRate"); !ok && s.Clicks > 0 {
		s.ConversionRate = float64(s.Conversions) / float64(s.Clicks)
	}
	return s
}

// ToStatisticsList maps a wire array of statistics rows.
func ToStatisticsList(v any) []domain.Statistics {
	return mapList(v, ToStatistics)
}
