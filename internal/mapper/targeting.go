package mapper

import "github.com/felixgeelhaar/revive-mcp/internal/domain"

// TargetingToWire renders targeting rules as an XML-RPC struct. Only set
// dimensions are emitted; values pass through unchanged.
func TargetingToWire(t domain.TargetingRules) Record {
	r := Record{}
	putStrings(r, "country", t.Country)
	putStrings(r, "region", t.Region)
	putStrings(r, "city", t.City)
	putStrings(r, "language", t.Language)
	putStrings(r, "browser", t.Browser)
	putStrings(r, "os", t.OS)
	putStrings(r, "device", t.Device)
	if len(t.DayOfWeek) > 0 {
		r["dayOfWeek"] = append([]int(nil), t.DayOfWeek...)
	}
	if len(t.HourOfDay) > 0 {
		r["hourOfDay"] = append([]int(nil), t.HourOfDay...)
	}
	putStrings(r, "keywords", t.Keywords)
	if len(t.CustomVariables) > 0 {
		vars := make(map[string]any, len(t.CustomVariables))
		for k, v := range t.CustomVariables {
			vars[k] = v
		}
		r["customVariables"] = vars
	}
	return r
}

// ToTargeting reads targeting rules from a wire value. Non-struct input
// yields nil.
func ToTargeting(v any) *domain.TargetingRules {
	r, ok := AsRecord(v)
	if !ok {
		return nil
	}
	t := &domain.TargetingRules{
		Country:   stringList(r["country"]),
		Region:    stringList(r["region"]),
		City:      stringList(r["city"]),
		Language:  stringList(r["language"]),
		Browser:   stringList(r["browser"]),
		OS:        stringList(r["os"]),
		Device:    stringList(r["device"]),
		DayOfWeek: ints(r["dayOfWeek"]),
		HourOfDay: ints(r["hourOfDay"]),
		Keywords:  stringList(r["keywords"]),
	}
	if vars, ok := AsRecord(r["customVariables"]); ok && len(vars) > 0 {
		t.CustomVariables = make(map[string]string, len(vars))
		for k, v := range vars {
			t.CustomVariables[k] = String(v)
		}
	}
	return t
}

// FrequencyCapToWire renders a frequency cap as an XML-RPC struct.
func FrequencyCapToWire(f domain.FrequencyCap) Record {
	r := Record{"period": f.Period}
	if f.Impressions != nil {
		r["impressions"] = *f.Impressions
	}
	if f.Clicks != nil {
		r["clicks"] = *f.Clicks
	}
	return r
}

// ToFrequencyCap reads a frequency cap from a wire value.
func ToFrequencyCap(v any) *domain.FrequencyCap {
	r, ok := AsRecord(v)
	if !ok {
		return nil
	}
	return &domain.FrequencyCap{
		Impressions: IntPtr(r["impressions"]),
		Clicks:      IntPtr(r["clicks"]),
		Period:      String(r["period"]),
	}
}

func putStrings(r Record, key string, values []string) {
	if len(values) > 0 {
		r[key] = append([]string(nil), values...)
	}
}
