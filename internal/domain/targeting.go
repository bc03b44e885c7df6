package domain

// TargetingRules is a set of optional delivery filters attached to a
// campaign or banner. The ad server interprets them; this module only
// carries them.
type TargetingRules struct {
	Country         []string          `json:"country,omitempty"`
	Region          []string          `json:"region,omitempty"`
	City            []string          `json:"city,omitempty"`
	Language        []string          `json:"language,omitempty"`
	Browser         []string          `json:"browser,omitempty"`
	OS              []string          `json:"os,omitempty"`
	Device          []string          `json:"device,omitempty"`
	DayOfWeek       []int             `json:"dayOfWeek,omitempty"`
	HourOfDay       []int             `json:"hourOfDay,omitempty"`
	Keywords        []string          `json:"keywords,omitempty"`
	CustomVariables map[string]string `json:"customVariables,omitempty"`
}

// IsEmpty reports whether no dimension is set.
func (t TargetingRules) IsEmpty() bool {
	return len(t.Country) == 0 && len(t.Region) == 0 && len(t.City) == 0 &&
		len(t.Language) == 0 && len(t.Browser) == 0 && len(t.OS) == 0 &&
		len(t.Device) == 0 && len(t.DayOfWeek) == 0 && len(t.HourOfDay) == 0 &&
		len(t.Keywords) == 0 && len(t.CustomVariables) == 0
}

// Validate checks the bounded dimensions.
func (t TargetingRules) Validate() error {
	for _, d := range t.Device {
		if !OneOf(d, DeviceTypes) {
			return Invalid("targeting.device", "unknown device %q", d)
		}
	}
	for _, d := range t.DayOfWeek {
		if d < 0 || d > 6 {
			return Invalid("targeting.dayOfWeek", "day %d out of range 0-6", d)
		}
	}
	for _, h := range t.HourOfDay {
		if h < 0 || h > 23 {
			return Invalid("targeting.hourOfDay", "hour %d out of range 0-23", h)
		}
	}
	return nil
}

// FrequencyCap limits how often a zone delivers within a period.
type FrequencyCap struct {
	Impressions *int   `json:"impressions,omitempty"`
	Clicks      *int   `json:"clicks,omitempty"`
	Period      string `json:"period"`
}

// Validate checks the period enumeration.
func (f FrequencyCap) Validate() error {
	if !OneOf(f.Period, TimePeriods) {
		return Invalid("frequencyCap.period", "must be one of %v", TimePeriods)
	}
	return nil
}
