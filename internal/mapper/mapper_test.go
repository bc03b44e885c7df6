package mapper

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

func intp(i int) *int           { return &i }
func floatp(f float64) *float64 { return &f }
func timep(t time.Time) *time.Time {
	return &t
}

func TestToCampaign_AliasFallback(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		wantID   int
		wantName string
	}{
		{"canonical keys", Record{"campaignId": 3, "campaignName": "Spring"}, 3, "Spring"},
		{"legacy alias only", Record{"id": 4, "name": "Summer"}, 4, "Summer"},
		{"canonical wins over alias", Record{"campaignId": 5, "id": 9, "campaignName": "A", "name": "B"}, 5, "A"},
		{"nil canonical falls back", Record{"campaignId": nil, "id": "11"}, 11, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCampaign(tt.record)
			if got.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", got.ID, tt.wantID)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestAliasFallback_AllEntities(t *testing.T) {
	zone := ToZone(Record{"id": 7, "name": "Top", "websiteId": 2, "zoneType": "popup", "invocationCode": "<script/>"})
	if zone.ID != 7 || zone.Name != "Top" || zone.WebsiteID != 2 || zone.Type != "popup" || zone.Code != "<script/>" {
		t.Errorf("ToZone with aliases = %+v", zone)
	}

	banner := ToBanner(Record{"id": 8, "name": "Leaderboard", "filename": "a.png", "htmlcode": "<b/>", "clickUrl": "https://x"})
	if banner.ID != 8 || banner.Name != "Leaderboard" || banner.ImageURL != "a.png" || banner.HTMLTemplate != "<b/>" || banner.ClickURL != "https://x" {
		t.Errorf("ToBanner with aliases = %+v", banner)
	}

	stats := ToStatistics(Record{"day": "2024-05-01", "ctr": 0.5})
	if stats.Date == nil || stats.ClickRate != 0.5 {
		t.Errorf("ToStatistics with aliases = %+v", stats)
	}

	pub := ToPublisher(Record{"affiliateid": "12", "websitename": "themusiccalendar.com"})
	if pub.ID != 12 || pub.Website != "themusiccalendar.com" {
		t.Errorf("ToPublisher with aliases = %+v", pub)
	}

	adv := ToAdvertiser(Record{"clientid": 6, "clientname": "Acme"})
	if adv.ID != 6 || adv.Name != "Acme" {
		t.Errorf("ToAdvertiser with aliases = %+v", adv)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  int
		want int
	}{
		{"int", 42, 0, 42},
		{"int64", int64(42), 0, 42},
		{"float truncates", 4.9, 0, 4},
		{"negative float truncates toward zero", -1.5, 0, -1},
		{"negative fractional string truncates toward zero", "-1.5", 0, -1},
		{"numeric string", "17", 0, 17},
		{"padded string", " 17 ", 0, 17},
		{"fractional string truncates", "12.7", 0, 12},
		{"non-numeric string", "abc", -1, -1},
		{"empty string", "", 5, 5},
		{"NaN string", "NaN", 3, 3},
		{"overflow string", "1e400", 3, 3},
		{"nil", nil, 9, 9},
		{"bool", true, 9, 9},
		{"NaN float", math.NaN(), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int(tt.in, tt.def); got != tt.want {
				t.Errorf("Int(%v, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestFloat_NeverNaN(t *testing.T) {
	inputs := []any{"abc", "", "NaN", "nan", "Inf", "-Inf", "1e400", "12abc", nil, struct{}{}, math.NaN(), math.Inf(1)}

	for _, in := range inputs {
		got := Float(in, 1.25)
		if math.IsNaN(got) {
			t.Errorf("Float(%v) = NaN", in)
		}
		if got != 1.25 {
			t.Errorf("Float(%v) = %v, want default 1.25", in, got)
		}
	}

	if got := Float("3.5", 0); got != 3.5 {
		t.Errorf("Float(\"3.5\") = %v, want 3.5", got)
	}
}

func TestOptionalNumbers(t *testing.T) {
	if IntPtr("x") != nil {
		t.Error("IntPtr of non-numeric should be nil")
	}
	if p := IntPtr("5"); p == nil || *p != 5 {
		t.Errorf("IntPtr(\"5\") = %v", p)
	}
	if FloatPtr(nil) != nil {
		t.Error("FloatPtr(nil) should be nil")
	}
	if p := FloatPtr("2.5"); p == nil || *p != 2.5 {
		t.Errorf("FloatPtr(\"2.5\") = %v", p)
	}
}

func TestDate(t *testing.T) {
	ref := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want *time.Time
	}{
		{"date only", "2024-03-01", &ref},
		{"rfc3339", "2024-03-01T00:00:00Z", &ref},
		{"xmlrpc basic", "20240301T00:00:00", &ref},
		{"sql datetime", "2024-03-01 00:00:00", &ref},
		{"time value", ref, &ref},
		{"garbage", "not a date", nil},
		{"empty", "", nil},
		{"zero time", time.Time{}, nil},
		{"number", 12, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.in)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Date(%v) = %v, want nil", tt.in, got)
			case tt.want != nil && (got == nil || !got.Equal(*tt.want)):
				t.Errorf("Date(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"active", "active"},
		{"Paused", "paused"},
		{0, "active"},
		{int64(1), "paused"},
		{"3", "expired"},
		{99, ""},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := Status(tt.in); got != tt.want {
			t.Errorf("Status(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLists_NonSequenceIsEmpty(t *testing.T) {
	inputs := []any{nil, "oops", 42, Record{"campaignId": 1}, map[string]any{}}

	for _, in := range inputs {
		if got := ToCampaigns(in); got == nil || len(got) != 0 {
			t.Errorf("ToCampaigns(%v) = %v, want empty", in, got)
		}
		if got := ToZones(in); len(got) != 0 {
			t.Errorf("ToZones(%v) = %v, want empty", in, got)
		}
		if got := ToBanners(in); len(got) != 0 {
			t.Errorf("ToBanners(%v) = %v, want empty", in, got)
		}
		if got := ToStatisticsList(in); len(got) != 0 {
			t.Errorf("ToStatisticsList(%v) = %v, want empty", in, got)
		}
	}
}

func TestLists_SkipNonStructElements(t *testing.T) {
	got := ToCampaigns([]any{map[string]any{"campaignId": int64(1)}, "junk", nil, map[string]any{"id": int64(2)}})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("ToCampaigns = %+v", got)
	}
}

func TestCampaign_RoundTrip(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	c := domain.Campaign{
		ID:                10,
		Name:              "Launch",
		AdvertiserID:      3,
		Status:            "paused",
		Budget:            floatp(1500.5),
		BudgetType:        "monthly",
		Priority:          intp(5),
		Weight:            intp(2),
		StartDate:         &start,
		EndDate:           &end,
		TargetImpressions: intp(100000),
		TargetClicks:      intp(500),
		Impressions:       1200,
		Clicks:            30,
		Conversions:       2,
		Revenue:           99.9,
		Targeting:         &domain.TargetingRules{Country: []string{"US", "CA"}, HourOfDay: []int{9, 10}},
		UpdatedAt:         timep(end),
	}

	got := ToCampaign(CampaignToWire(c))
	if !reflect.DeepEqual(got, c) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, c)
	}
}

func TestZone_RoundTrip(t *testing.T) {
	z := domain.Zone{
		ID:           7,
		Name:         "Header",
		WebsiteID:    2,
		Type:         "interstitial",
		Width:        intp(728),
		Height:       intp(90),
		Description:  "Top of page",
		Delivery:     "iframe",
		FrequencyCap: &domain.FrequencyCap{Impressions: intp(3), Period: "day"},
		Targeting:    &domain.TargetingRules{Device: []string{"mobile"}, CustomVariables: map[string]string{"section": "news"}},
		Code:         "<ins/>",
		Impressions:  10,
		Clicks:       1,
		Revenue:      0.5,
	}

	got := ToZone(ZoneToWire(z))
	if !reflect.DeepEqual(got, z) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, z)
	}
}

func TestBanner_RoundTrip(t *testing.T) {
	b := domain.Banner{
		ID:             4,
		Name:           "Skyscraper",
		CampaignID:     10,
		StorageType:    "web",
		ImageURL:       "https://cdn/a.png",
		HTMLTemplate:   "<div/>",
		Width:          160,
		Height:         600,
		Weight:         3,
		Status:         "active",
		ClickURL:       "https://example.com",
		Targeting:      &domain.TargetingRules{Keywords: []string{"music"}, DayOfWeek: []int{0, 6}},
		Impressions:    50,
		Clicks:         5,
		Conversions:    1,
		ConversionRate: 0.2,
		Revenue:        12,
	}

	got := ToBanner(BannerToWire(b))
	if !reflect.DeepEqual(got, b) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, b)
	}

	// A zero weight is a real value, not an absent one
	zero := domain.Banner{ID: 3, Name: "x", Weight: 0}
	wire := BannerToWire(zero)
	if w, ok := wire["weight"]; !ok || w != 0 {
		t.Errorf("wire weight = %v (present %v), want 0", w, ok)
	}
	if got := ToBanner(wire); !reflect.DeepEqual(got, zero) {
		t.Errorf("zero weight round trip mismatch:\n got  %+v\n want %+v", got, zero)
	}
}

func TestBanner_DefaultWeight(t *testing.T) {
	if got := ToBanner(Record{"bannerId": 1}).Weight; got != domain.DefaultBannerWeight {
		t.Errorf("Weight = %d, want %d", got, domain.DefaultBannerWeight)
	}
	if got := ToBanner(Record{"weight": "heavy"}).Weight; got != domain.DefaultBannerWeight {
		t.Errorf("Weight for garbage = %d, want %d", got, domain.DefaultBannerWeight)
	}
}

func TestZoneToWire_TypeCode(t *testing.T) {
	r := ZoneToWire(domain.Zone{Name: "x", Type: "text"})
	if r["type"] != 3 {
		t.Errorf("type = %v, want 3", r["type"])
	}
	if got := ZoneType(int64(4)); got != "email" {
		t.Errorf("ZoneType(4) = %q, want email", got)
	}
}

func TestMerge_KeepsExistingKeys(t *testing.T) {
	existing := Record{"zoneId": 7, "name": "Old", "width": 300}
	name := "New Name"
	patch := ZonePatch(domain.ZoneUpdate{ID: 7, Name: &name})

	got := Merge(existing, patch, ZoneAliases)
	want := Record{"zoneId": 7, "name": "New Name", "width": 300}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
	if existing["name"] != "Old" {
		t.Error("Merge must not modify the existing record")
	}
}

func TestMerge_UsesPreferredKeyWhenAbsent(t *testing.T) {
	existing := Record{"campaignId": 1, "campaignName": "A"}
	budget := 50.0
	got := Merge(existing, CampaignPatch(domain.CampaignUpdate{ID: 1, Budget: &budget}), CampaignAliases)

	want := Record{"campaignId": 1, "campaignName": "A", "budget": 50.0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestToStatistics_DerivesRates(t *testing.T) {
	s := ToStatistics(Record{"impressions": "200", "clicks": int64(10), "conversions": 2, "revenue": "4.5"})
	if s.ClickRate != 0.05 {
		t.Errorf("ClickRate = %v, want 0.05", s.ClickRate)
	}
	if s.ConversionRate != 0.2 {
		t.Errorf("ConversionRate = %v, want 0.2", s.ConversionRate)
	}
	if s.EntityType != "unknown" {
		t.Errorf("EntityType = %q, want unknown", s.EntityType)
	}
	if s.Date != nil {
		t.Errorf("Date = %v, want nil", s.Date)
	}
}

func TestToStatistics_Hourly(t *testing.T) {
	s := ToStatistics(Record{"day": "2024-05-01", "hour": 13})
	want := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	if s.Date == nil || !s.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", s.Date, want)
	}
}

func TestTargeting_PassThrough(t *testing.T) {
	wire := Record{
		"country":   []any{"US", "DE"},
		"dayOfWeek": []any{int64(1), int64(5)},
		"keywords":  []any{"jazz"},
	}
	got := ToTargeting(wire)
	want := &domain.TargetingRules{Country: []string{"US", "DE"}, DayOfWeek: []int{1, 5}, Keywords: []string{"jazz"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToTargeting = %+v, want %+v", got, want)
	}
	if ToTargeting("nope") != nil {
		t.Error("ToTargeting of a non-struct should be nil")
	}
}
