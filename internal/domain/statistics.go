package domain

import "time"

// Statistics is one row of delivery metrics for an entity.
type Statistics struct {
	EntityType     string     `json:"entityType"`
	EntityID       int        `json:"entityId,omitempty"`
	Date           *time.Time `json:"date,omitempty"`
	Impressions    int        `json:"impressions"`
	Clicks         int        `json:"clicks"`
	Conversions    int        `json:"conversions"`
	ClickRate      float64    `json:"clickRate"`
	ConversionRate float64    `json:"conversionRate"`
	Revenue        float64    `json:"revenue"`
	Cost           float64    `json:"cost"`
	ECPM           float64    `json:"ecpm"`
	ECPC           float64    `json:"ecpc"`
	ECPA           float64    `json:"ecpa"`
}

// Add accumulates counters of other into s. Rates are not summed; call
// Recompute afterwards.
func (s *Statistics) Add(other Statistics) {
	s.Impressions += other.Impressions
	s.Clicks += other.Clicks
	s.Conversions += other.Conversions
	s.Revenue += other.Revenue
	s.Cost += other.Cost
}

// Recompute derives the rate metrics from the counters.
func (s *Statistics) Recompute() {
	s.ClickRate, s.ConversionRate, s.ECPM, s.ECPC, s.ECPA = 0, 0, 0, 0, 0
	if s.Impressions > 0 {
		s.ClickRate = float64(s.Clicks) / float64(s.Impressions)
		s.ECPM = s.Revenue / float64(s.Impressions) * 1000
	}
	if s.Clicks > 0 {
		s.ConversionRate = float64(s.Conversions) / float64(s.Clicks)
		s.ECPC = s.Revenue / float64(s.Clicks)
	}
	if s.Conversions > 0 {
		s.ECPA = s.Revenue / float64(s.Conversions)
	}
}

// StatisticsReport is the result of a statistics request.
type StatisticsReport struct {
	EntityType  string       `json:"entityType"`
	EntityID    int          `json:"entityId,omitempty"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Granularity string       `json:"granularity"`
	Metrics     []string     `json:"metrics"`
	Rows        []Statistics `json:"rows"`
	Totals      Statistics   `json:"totals"`
}
