package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"
)

func TestResult(t *testing.T) {
	ok := OK(42)
	if !ok.Success || ok.Data != 42 || ok.Error != "" || ok.Err() != nil {
		t.Errorf("OK(42) = %+v", ok)
	}

	cause := fmt.Errorf("get campaign: %w", ErrNotFound)
	failed := Fail[int](cause)
	if failed.Success {
		t.Error("Fail should not be successful")
	}
	if failed.Error != "get campaign: not found" {
		t.Errorf("Error = %q", failed.Error)
	}
	if !errors.Is(failed.Err(), ErrNotFound) {
		t.Errorf("Err() = %v, want wrapping ErrNotFound", failed.Err())
	}

	if r := From(7, nil); !r.Success || r.Data != 7 {
		t.Errorf("From(7, nil) = %+v", r)
	}
	if r := From(0, ErrTransport); r.Success {
		t.Errorf("From(0, err) = %+v, want failure", r)
	}
}

func TestResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		result any
		want   string
	}{
		{"empty list keeps data", OK([]Campaign{}), `{"success":true,"data":[]}`},
		{"zero value keeps data", OK(0), `{"success":true,"data":0}`},
		{"failure has no data", Fail[[]Campaign](ErrNotFound), `{"success":false,"error":"not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.result)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", Required("name"), "validation"},
		{"authentication", fmt.Errorf("%w: logon: bad password", ErrAuthentication), "authentication"},
		{"transport", fmt.Errorf("post: %w", ErrTransport), "transport"},
		{"protocol", ErrProtocol, "protocol"},
		{"fault", fmt.Errorf("call: %w", ErrRemoteFault), "fault"},
		{"not found", ErrNotFound, "not_found"},
		{"other", errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := Invalid("budget", "must be non-negative, got %v", -5)
	if err.Error() != "validation error: budget: must be non-negative, got -5" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("Invalid should wrap ErrValidation")
	}

	var ve *ValidationError
	if !errors.As(Required("name"), &ve) || ve.Field != "name" {
		t.Errorf("Required(name) field = %+v", ve)
	}

	noField := &ValidationError{Message: "limit out of range"}
	if noField.Error() != "validation error: limit out of range" {
		t.Errorf("Error() = %q", noField.Error())
	}
}

func TestTargetingRules(t *testing.T) {
	if !(TargetingRules{}).IsEmpty() {
		t.Error("zero rules should be empty")
	}
	if (TargetingRules{Keywords: []string{"sport"}}).IsEmpty() {
		t.Error("rules with keywords should not be empty")
	}

	tests := []struct {
		name    string
		rules   TargetingRules
		wantErr bool
	}{
		{"empty", TargetingRules{}, false},
		{"valid", TargetingRules{Device: []string{"mobile"}, DayOfWeek: []int{0, 6}, HourOfDay: []int{0, 23}}, false},
		{"unknown device", TargetingRules{Device: []string{"watch"}}, true},
		{"day out of range", TargetingRules{DayOfWeek: []int{7}}, true},
		{"hour out of range", TargetingRules{HourOfDay: []int{24}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFrequencyCap_Validate(t *testing.T) {
	if err := (FrequencyCap{Period: "day"}).Validate(); err != nil {
		t.Errorf("day: %v", err)
	}
	if err := (FrequencyCap{Period: "year"}).Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("year: %v, want validation error", err)
	}
}

func TestStatistics_AddRecompute(t *testing.T) {
	var s Statistics
	s.Add(Statistics{Impressions: 1000, Clicks: 10, Conversions: 2, Revenue: 5, ClickRate: 0.5})
	s.Add(Statistics{Impressions: 1000, Clicks: 30, Conversions: 2, Revenue: 15})
	s.Recompute()

	if s.Impressions != 2000 || s.Clicks != 40 || s.Conversions != 4 {
		t.Errorf("counters = %d/%d/%d", s.Impressions, s.Clicks, s.Conversions)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"clickRate", s.ClickRate, 0.02},
		{"conversionRate", s.ConversionRate, 0.1},
		{"ecpm", s.ECPM, 10},
		{"ecpc", s.ECPC, 0.5},
		{"ecpa", s.ECPA, 5},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	var zero Statistics
	zero.Recompute()
	if zero.ClickRate != 0 || zero.ECPM != 0 || zero.ECPA != 0 {
		t.Errorf("zero rows should have zero rates: %+v", zero)
	}
}

func TestCampaign_Field(t *testing.T) {
	budget := 250.0
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := Campaign{ID: 3, Name: "Spring", Budget: &budget, StartDate: &start}

	if v, ok := c.Field("budget"); !ok || v != 250.0 {
		t.Errorf("budget = %v, %v", v, ok)
	}
	if v, ok := c.Field("id"); !ok || v != 3.0 {
		t.Errorf("id = %v, %v", v, ok)
	}
	if v, ok := c.Field("startDate"); !ok || !v.(time.Time).Equal(start) {
		t.Errorf("startDate = %v, %v", v, ok)
	}
	if _, ok := c.Field("priority"); ok {
		t.Error("unset priority should be absent")
	}
	if _, ok := c.Field("status"); ok {
		t.Error("empty status should be absent")
	}
	if _, ok := c.Field("unknown"); ok {
		t.Error("unknown field should be absent")
	}
}

func TestStatusFromCode(t *testing.T) {
	if got := StatusFromCode(0); got != StatusActive {
		t.Errorf("StatusFromCode(0) = %q", got)
	}
	if got := StatusFromCode(4); got != StatusInactive {
		t.Errorf("StatusFromCode(4) = %q", got)
	}
	if got := StatusFromCode(99); got != "" {
		t.Errorf("StatusFromCode(99) = %q, want empty", got)
	}
}
