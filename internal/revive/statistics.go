package revive

import (
	"context"
	"slices"
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
	"github.com/felixgeelhaar/revive-mcp/internal/mapper"
)

// StatisticsRequest selects a delivery report.
type StatisticsRequest struct {
	EntityType string
	// EntityID selects one entity; nil reports agency-wide totals
	EntityID    *int
	StartDate   string
	EndDate     string
	Granularity string
	Metrics     []string
}

// statsServices maps a reportable entity to its remote service.
var statsServices = map[string]string{
	domain.EntityCampaign:   campaignService,
	domain.EntityBanner:     bannerService,
	domain.EntityZone:       zoneService,
	domain.EntityAdvertiser: advertiserService,
	domain.EntityPublisher:  publisherService,
	domain.EntityAgency:     agencyService,
}

// GenerateStatistics fetches delivery statistics for an entity over a date
// range. Hourly and daily rows come from the server; weekly and monthly
// rows are summed from daily ones.
func (s *Service) GenerateStatistics(ctx context.Context, req StatisticsRequest) domain.Result[domain.StatisticsReport] {
	return run(s, "generate statistics", func() (domain.StatisticsReport, error) {
		if req.EntityType == "" {
			return domain.StatisticsReport{}, domain.Required("entityType")
		}
		if req.StartDate == "" {
			return domain.StatisticsReport{}, domain.Required("startDate")
		}
		if req.EndDate == "" {
			return domain.StatisticsReport{}, domain.Required("endDate")
		}
		start, err := parseDate("startDate", req.StartDate)
		if err != nil {
			return domain.StatisticsReport{}, err
		}
		end, err := parseDate("endDate", req.EndDate)
		if err != nil {
			return domain.StatisticsReport{}, err
		}
		granularity := req.Granularity
		if granularity == "" {
			granularity = "day"
		}
		if err := firstError(
			checkEnum("entityType", req.EntityType, domain.StatsEntities),
			checkEnum("granularity", granularity, domain.TimePeriods),
			checkDateRange(start, end),
			validateMetrics(req.Metrics),
		); err != nil {
			return domain.StatisticsReport{}, err
		}
		if req.EntityID != nil {
			if err := requireID("entityId", *req.EntityID); err != nil {
				return domain.StatisticsReport{}, err
			}
		}

		entity, id := req.EntityType, s.agencyID
		if req.EntityID != nil {
			id = *req.EntityID
		} else {
			entity = domain.EntityAgency
		}

		period := "Daily"
		if granularity == "hour" {
			period = "Hourly"
		}
		result, err := s.caller.Invoke(ctx, statsServices[entity], entity+period+"Statistics", id, *start, *end)
		if err != nil {
			return domain.StatisticsReport{}, err
		}

		rows := mapper.ToStatisticsList(result)
		for i := range rows {
			if rows[i].EntityType == "" || rows[i].EntityType == "unknown" {
				rows[i].EntityType = entity
			}
			if rows[i].EntityID == 0 {
				rows[i].EntityID = id
			}
		}
		if granularity == "week" || granularity == "month" {
			rows = bucket(rows, granularity)
		}

		totals := domain.Statistics{EntityType: entity, EntityID: id}
		for _, row := range rows {
			totals.Add(row)
		}
		totals.Recompute()

		metrics := req.Metrics
		if len(metrics) == 0 {
			metrics = domain.Metrics
		}

		report := domain.StatisticsReport{
			EntityType:  req.EntityType,
			StartDate:   start.Format(dateLayout),
			EndDate:     end.Format(dateLayout),
			Granularity: granularity,
			Metrics:     slices.Clone(metrics),
			Rows:        rows,
			Totals:      totals,
		}
		if req.EntityID != nil {
			report.EntityID = *req.EntityID
		}
		return report, nil
	})
}

func validateMetrics(metrics []string) error {
	for _, m := range metrics {
		if !domain.OneOf(m, domain.Metrics) {
			return domain.Invalid("metrics", "unknown metric %q, must be one of %v", m, domain.Metrics)
		}
	}
	return nil
}

// bucket sums daily rows into weeks (starting Monday) or calendar months.
// Rows without a date are summed into one undated row, listed first.
func bucket(rows []domain.Statistics, granularity string) []domain.Statistics {
	index := map[time.Time]int{}
	var out []domain.Statistics
	for _, row := range rows {
		var key time.Time
		if row.Date != nil {
			key = bucketStart(*row.Date, granularity)
		}
		i, ok := index[key]
		if !ok {
			b := domain.Statistics{EntityType: row.EntityType, EntityID: row.EntityID}
			if !key.IsZero() {
				k := key
				b.Date = &k
			}
			out = append(out, b)
			i = len(out) - 1
			index[key] = i
		}
		out[i].Add(row)
	}

	for i := range out {
		out[i].Recompute()
	}
	slices.SortStableFunc(out, func(a, b domain.Statistics) int {
		switch {
		case a.Date == nil && b.Date == nil:
			return 0
		case a.Date == nil:
			return -1
		case b.Date == nil:
			return 1
		}
		return a.Date.Compare(*b.Date)
	})
	if out == nil {
		out = []domain.Statistics{}
	}
	return out
}

func bucketStart(t time.Time, granularity string) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	switch granularity {
	case "week":
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case "month":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
	return day
}
